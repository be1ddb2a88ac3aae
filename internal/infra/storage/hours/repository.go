package hours

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/pkg/dbmetrics"
	"github.com/mesaviva/MV-ReservationService/pkg/psqlbuilder"
)

var intervalColumns = []string{
	"id",
	"day_of_week",
	"open_time",
	"close_time",
	"active",
}

// Repository репозиторий расписания работы ресторана.
// Путь чтения не кэшируется: проверки при создании брони всегда видят
// актуальное расписание.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает интервал работы
func (r *Repository) Create(ctx context.Context, h *domain.BusinessHourInterval) (*domain.BusinessHourInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("business_hours").
		Columns("day_of_week", "open_time", "close_time", "active").
		Values(h.DayOfWeek, h.OpenTime, h.CloseTime, h.Active).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.ID); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return h, nil
}

// ListAll получает все интервалы, отсортированные по дню недели и открытию
func (r *Repository) ListAll(ctx context.Context) ([]*domain.BusinessHourInterval, error) {
	builder := psqlbuilder.Select(intervalColumns...).
		From("business_hours").
		OrderBy("day_of_week ASC, open_time ASC")
	return r.queryIntervals(ctx, builder, "ListAll")
}

// ListActiveByDay получает активные интервалы для дня недели,
// отсортированные по времени открытия
func (r *Repository) ListActiveByDay(ctx context.Context, dayOfWeek int) ([]*domain.BusinessHourInterval, error) {
	builder := psqlbuilder.Select(intervalColumns...).
		From("business_hours").
		Where(squirrel.Eq{"day_of_week": dayOfWeek, "active": true}).
		OrderBy("open_time ASC")
	return r.queryIntervals(ctx, builder, "ListActiveByDay")
}

// Update обновляет интервал
func (r *Repository) Update(ctx context.Context, h *domain.BusinessHourInterval) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("business_hours").
		Set("day_of_week", h.DayOfWeek).
		Set("open_time", h.OpenTime).
		Set("close_time", h.CloseTime).
		Set("active", h.Active).
		Where(squirrel.Eq{"id": h.ID}).
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
		return ErrIntervalNotFound
	}
	return nil
}

// Delete удаляет интервал
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("business_hours").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrIntervalNotFound
	}
	return nil
}

func (r *Repository) queryIntervals(ctx context.Context, builder squirrel.SelectBuilder, op string) ([]*domain.BusinessHourInterval, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	return scanIntervals(rows, op)
}

func scanIntervals(rows *sql.Rows, op string) ([]*domain.BusinessHourInterval, error) {
	intervals := make([]*domain.BusinessHourInterval, 0)

	for rows.Next() {
		var h domain.BusinessHourInterval
		if err := rows.Scan(&h.ID, &h.DayOfWeek, &h.OpenTime, &h.CloseTime, &h.Active); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		intervals = append(intervals, &h)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return intervals, nil
}
