package policy

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/pkg/dbmetrics"
	"github.com/mesaviva/MV-ReservationService/pkg/psqlbuilder"
)

var policyColumns = []string{
	"id",
	"restaurant_name",
	"address",
	"phone",
	"notify_email",
	"standard_duration_minutes",
	"slot_interval_minutes",
	"max_reservations_per_slot",
	"min_cancel_lead_minutes",
	"max_lateness_minutes",
	"allow_unassigned_overflow",
	"created_at",
	"updated_at",
}

// Repository репозиторий конфигурации ресторана.
// Конфигурация — синглтон: Get лениво создает строку с дефолтами,
// удаление не поддерживается.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория конфигурации
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает конфигурацию ресторана, создавая дефолтную при отсутствии
func (r *Repository) Get(ctx context.Context) (*domain.RestaurantPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(policyColumns...).
		From("restaurant_policy").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPolicy(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return r.createDefault(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan policy: %v", ErrScanRow, err)
	}

	return p, nil
}

// Update обновляет конфигурацию ресторана
func (r *Repository) Update(ctx context.Context, p *domain.RestaurantPolicy) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("restaurant_policy").
		Set("restaurant_name", p.RestaurantName).
		Set("address", p.Address).
		Set("phone", p.Phone).
		Set("notify_email", p.NotifyEmail).
		Set("standard_duration_minutes", p.StandardDurationMinutes).
		Set("slot_interval_minutes", p.SlotIntervalMinutes).
		Set("max_reservations_per_slot", p.MaxReservationsPerSlot).
		Set("min_cancel_lead_minutes", p.MinCancelLeadMinutes).
		Set("max_lateness_minutes", p.MaxLatenessMinutes).
		Set("allow_unassigned_overflow", p.AllowUnassignedOverflow).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// createDefault вставляет строку с дефолтными значениями.
// ON CONFLICT защищает от гонки двух первых обращений.
func (r *Repository) createDefault(ctx context.Context) (*domain.RestaurantPolicy, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)
	def := domain.DefaultPolicy()

	query, args, err := psqlbuilder.Insert("restaurant_policy").
		Columns(
			"restaurant_name",
			"address",
			"phone",
			"notify_email",
			"standard_duration_minutes",
			"slot_interval_minutes",
			"max_reservations_per_slot",
			"min_cancel_lead_minutes",
			"max_lateness_minutes",
			"allow_unassigned_overflow",
		).
		Values(
			def.RestaurantName,
			def.Address,
			def.Phone,
			def.NotifyEmail,
			def.StandardDurationMinutes,
			def.SlotIntervalMinutes,
			def.MaxReservationsPerSlot,
			def.MinCancelLeadMinutes,
			def.MaxLatenessMinutes,
			def.AllowUnassignedOverflow,
		).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: createDefault - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: createDefault - execute insert: %v", ErrExecQuery, err)
	}

	// Перечитываем: либо нашу строку, либо созданную конкурентом
	selectQuery, selectArgs, err := psqlbuilder.Select(policyColumns...).
		From("restaurant_policy").
		OrderBy("id ASC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: createDefault - build select query: %v", ErrBuildQuery, err)
	}

	p, err := scanPolicy(executor.QueryRowContext(ctx, selectQuery, selectArgs...))
	if err != nil {
		return nil, fmt.Errorf("%w: createDefault - scan policy: %v", ErrScanRow, err)
	}

	return p, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPolicy(row rowScanner) (*domain.RestaurantPolicy, error) {
	var p domain.RestaurantPolicy
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&p.ID,
		&p.RestaurantName,
		&p.Address,
		&p.Phone,
		&p.NotifyEmail,
		&p.StandardDurationMinutes,
		&p.SlotIntervalMinutes,
		&p.MaxReservationsPerSlot,
		&p.MinCancelLeadMinutes,
		&p.MaxLatenessMinutes,
		&p.AllowUnassignedOverflow,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.CreatedAt = createdAt.Time
	p.UpdatedAt = updatedAt.Time
	return &p, nil
}
