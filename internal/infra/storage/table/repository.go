package table

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/pkg/dbmetrics"
	"github.com/mesaviva/MV-ReservationService/pkg/psqlbuilder"
)

var tableColumns = []string{
	"id",
	"name",
	"capacity",
	"zone",
	"status",
	"created_at",
}

// Repository репозиторий реестра столов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый стол
func (r *Repository) Create(ctx context.Context, t *domain.Table) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("tables").
		Columns("name", "capacity", "zone", "status").
		Values(t.Name, t.Capacity, t.Zone, t.Status).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&t.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	t.CreatedAt = createdAt.Time
	return t, nil
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var t domain.Table
	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.Name, &t.Capacity, &t.Zone, &t.Status, &createdAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTableNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan table: %v", ErrScanRow, err)
	}

	t.CreatedAt = createdAt.Time
	return &t, nil
}

// List получает все столы, по умолчанию отсортированные по зоне и имени
func (r *Repository) List(ctx context.Context) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		OrderBy("zone ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTables(rows)
}

// FindCandidates получает активные столы с достаточной вместимостью.
// Порядок: сначала самые тесные (capacity ASC), затем по имени — так
// большие столы остаются свободными для больших компаний.
func (r *Repository) FindCandidates(ctx context.Context, partySize int) ([]*domain.Table, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(tableColumns...).
		From("tables").
		Where(squirrel.Eq{"status": domain.TableActive}).
		Where(squirrel.GtOrEq{"capacity": partySize}).
		OrderBy("capacity ASC, name ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindCandidates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindCandidates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanTables(rows)
}

// TotalActiveCapacity возвращает суммарную вместимость активных столов.
// 0 означает, что проверку совокупной вместимости выполнить нельзя.
func (r *Repository) TotalActiveCapacity(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(capacity), 0)").
		From("tables").
		Where(squirrel.Eq{"status": domain.TableActive}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: TotalActiveCapacity - build select query: %v", ErrBuildQuery, err)
	}

	var total int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: TotalActiveCapacity - scan sum: %v", ErrScanRow, err)
	}

	return total, nil
}

// Update обновляет стол
func (r *Repository) Update(ctx context.Context, t *domain.Table) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tables").
		Set("name", t.Name).
		Set("capacity", t.Capacity).
		Set("zone", t.Zone).
		Set("status", t.Status).
		Where(squirrel.Eq{"id": t.ID}).
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
		return ErrTableNotFound
	}
	return nil
}

func scanTables(rows *sql.Rows) ([]*domain.Table, error) {
	tables := make([]*domain.Table, 0)

	for rows.Next() {
		var t domain.Table
		var createdAt sql.NullTime
		if err := rows.Scan(&t.ID, &t.Name, &t.Capacity, &t.Zone, &t.Status, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: scanTables - scan row: %v", ErrScanRow, err)
		}
		t.CreatedAt = createdAt.Time
		tables = append(tables, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanTables - rows error: %v", ErrScanRow, err)
	}

	return tables, nil
}
