package find_tables

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
	FindAvailableTables(ctx context.Context, req admission.Request, start, end types.TimeString) ([]*domain.Table, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
