package create_reservation

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	customermodels "github.com/mesaviva/MV-ReservationService/internal/service/customers/models"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// ReservationRepository интерфейс репозитория броней
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
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

// CustomerResolver интерфейс поиска или создания карточки клиента
type CustomerResolver interface {
	Resolve(ctx context.Context, req *customermodels.ResolveCustomerRequest) (*domain.Customer, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
