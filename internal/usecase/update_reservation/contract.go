package update_reservation

import (
	"context"
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, reservation *domain.Reservation) error
}

// PolicyRepository интерфейс репозитория конфигурации ресторана
type PolicyRepository interface {
	Get(ctx context.Context) (*domain.RestaurantPolicy, error)
}

// AdmissionController интерфейс контроллера допуска броней
type AdmissionController interface {
	ValidateAndPlan(ctx context.Context, policy domain.RestaurantPolicy, req admission.Request) (*admission.Plan, error)
	AutoAssign(ctx context.Context, req admission.Request, start, end types.TimeString) (*domain.Table, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
