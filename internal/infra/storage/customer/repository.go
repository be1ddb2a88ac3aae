package customer

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/pkg/dbmetrics"
	"github.com/mesaviva/MV-ReservationService/pkg/psqlbuilder"
)

var customerColumns = []string{
	"id",
	"full_name",
	"phone",
	"email",
	"notes",
	"created_at",
}

// Repository репозиторий карточек клиентов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория клиентов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает карточку клиента
func (r *Repository) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("customers").
		Columns("full_name", "phone", "email", "notes").
		Values(c.FullName, c.Phone, c.Email, c.Notes).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&c.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	c.CreatedAt = createdAt.Time
	return c, nil
}

// GetByID получает клиента по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// FindByEmail ищет клиента по email. Пустой email никогда не матчится.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	if email == "" {
		return nil, ErrCustomerNotFound
	}
	return r.getOne(ctx, squirrel.Eq{"email": email}, "FindByEmail")
}

// FindByPhone ищет клиента по телефону. Пустой телефон никогда не матчится.
func (r *Repository) FindByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	if phone == "" {
		return nil, ErrCustomerNotFound
	}
	return r.getOne(ctx, squirrel.Eq{"phone": phone}, "FindByPhone")
}

// List получает всех клиентов по имени
func (r *Repository) List(ctx context.Context) ([]*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		OrderBy("full_name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	customers := make([]*domain.Customer, 0)
	for rows.Next() {
		var c domain.Customer
		var createdAt sql.NullTime
		if err := rows.Scan(&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Notes, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		c.CreatedAt = createdAt.Time
		customers = append(customers, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return customers, nil
}

// Update обновляет карточку клиента
func (r *Repository) Update(ctx context.Context, c *domain.Customer) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("customers").
		Set("full_name", c.FullName).
		Set("phone", c.Phone).
		Set("email", c.Email).
		Set("notes", c.Notes).
		Where(squirrel.Eq{"id": c.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrCustomerNotFound
	}
	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Customer, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(customerColumns...).
		From("customers").
		Where(where).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var c domain.Customer
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.FullName, &c.Phone, &c.Email, &c.Notes, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan customer: %v", ErrScanRow, op, err)
	}

	c.CreatedAt = createdAt.Time
	return &c, nil
}
