package reservation

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/pkg/dbmetrics"
	"github.com/mesaviva/MV-ReservationService/pkg/psqlbuilder"
)

// Колонки таблицы reservations в порядке сканирования
var reservationColumns = []string{
	"id",
	"customer_id",
	"table_id",
	"reservation_date",
	"start_time",
	"end_time",
	"party_size",
	"status",
	"channel",
	"notes",
	"guest_name",
	"guest_phone",
	"guest_email",
	"created_by",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий журнала броней
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новую бронь.
// Если в контексте передана активная транзакция, использует её —
// создание всегда должно выполняться в одной транзакции с проверками
// пересечений и вместимости.
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("reservations").
		Columns(
			"customer_id",
			"table_id",
			"reservation_date",
			"start_time",
			"end_time",
			"party_size",
			"status",
			"channel",
			"notes",
			"guest_name",
			"guest_phone",
			"guest_email",
			"created_by",
		).
		Values(
			res.CustomerID,
			res.TableID,
			res.Date,
			res.StartTime,
			res.EndTime,
			res.PartySize,
			res.Status,
			res.Channel,
			res.Notes,
			res.GuestName,
			res.GuestPhone,
			res.GuestEmail,
			res.CreatedBy,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(reservationColumns...).
		From("reservations").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	res, err := scanReservation(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	return res, nil
}

// GetWithFilter получает брони с гибкой фильтрацией.
//
// Когда вызов происходит внутри транзакции и фильтр указывает конкретную
// дату, к выборке добавляется FOR UPDATE: строки дня блокируются на время
// проверок пересечений и вместимости (см. usecase создания брони).
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(reservationColumns...).
		From("reservations")

	if filter.Date != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"reservation_date": *filter.Date})
	}
	if filter.TableID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_id": *filter.TableID})
	}
	if filter.CustomerID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"customer_id": *filter.CustomerID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeInactive {
		// Без явного статуса исключаем брони, освободившие слот
		inactive := make([]string, len(domain.InactiveStatuses))
		for i, s := range domain.InactiveStatuses {
			inactive[i] = string(s)
		}
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": inactive})
	}

	if filter.Date != nil {
		selectBuilder = selectBuilder.OrderBy("start_time ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("reservation_date DESC, start_time DESC")
	}

	// Внутри транзакции блокируем строки дня до конца проверки
	if dbmetrics.IsInTransaction(ctx) && filter.Date != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanReservations(rows)
}

// Update обновляет редактируемые поля брони.
// EndTime пересчитывается вызывающей стороной до записи.
func (r *Repository) Update(ctx context.Context, res *domain.Reservation) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("customer_id", res.CustomerID).
		Set("table_id", res.TableID).
		Set("reservation_date", res.Date).
		Set("start_time", res.StartTime).
		Set("end_time", res.EndTime).
		Set("party_size", res.PartySize).
		Set("notes", res.Notes).
		Set("guest_name", res.GuestName).
		Set("guest_phone", res.GuestPhone).
		Set("guest_email", res.GuestEmail).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": res.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Update")
}

// UpdateStatus обновляет статус брони
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "UpdateStatus")
}

// Cancel переводит бронь в cancelled с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusCancelled).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "Cancel")
}

// MarkNoShow переводит бронь в no_show
func (r *Repository) MarkNoShow(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("reservations").
		Set("status", domain.StatusNoShow).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkNoShow - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkNoShow - execute update: %v", ErrExecQuery, err)
	}

	return checkAffected(result, "MarkNoShow")
}

// DayStats собирает статистику броней за день одним запросом
func (r *Repository) DayStats(ctx context.Context, date time.Time) (*domain.DayStats, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COUNT(*)",
		"COUNT(*) FILTER (WHERE status = 'pending')",
		"COUNT(*) FILTER (WHERE status = 'confirmed')",
		"COUNT(*) FILTER (WHERE status = 'in_progress')",
		"COUNT(*) FILTER (WHERE status = 'completed')",
		"COUNT(*) FILTER (WHERE status = 'cancelled')",
		"COUNT(*) FILTER (WHERE status = 'no_show')",
		"COALESCE(SUM(party_size) FILTER (WHERE status NOT IN ('cancelled', 'no_show')), 0)",
		"COALESCE(SUM(party_size), 0)",
	).
		From("reservations").
		Where(squirrel.Eq{"reservation_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: DayStats - build select query: %v", ErrBuildQuery, err)
	}

	var stats domain.DayStats
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&stats.Total,
		&stats.Pending,
		&stats.Confirmed,
		&stats.InProgress,
		&stats.Completed,
		&stats.Cancelled,
		&stats.NoShows,
		&stats.ActiveGuests,
		&stats.TotalGuests,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: DayStats - scan stats: %v", ErrScanRow, err)
	}

	stats.Date = date
	stats.Active = stats.Pending + stats.Confirmed + stats.InProgress
	return &stats, nil
}

// checkAffected возвращает ErrReservationNotFound при нулевом числе строк
func checkAffected(result sql.Result, op string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}
	if rowsAffected == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&res.ID,
		&res.CustomerID,
		&res.TableID,
		&res.Date,
		&res.StartTime,
		&res.EndTime,
		&res.PartySize,
		&res.Status,
		&res.Channel,
		&res.Notes,
		&res.GuestName,
		&res.GuestPhone,
		&res.GuestEmail,
		&res.CreatedBy,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time
	return &res, nil
}

func scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}
