package suggest_slots

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// PolicyRepository интерфейс репозитория конфигурации ресторана
type PolicyRepository interface {
	Get(ctx context.Context) (*domain.RestaurantPolicy, error)
}

// AdmissionController интерфейс контроллера допуска броней
type AdmissionController interface {
	SuggestAlternateSlots(ctx context.Context, policy domain.RestaurantPolicy, req admission.Request) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
