package policy

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

// PolicyRepository интерфейс репозитория конфигурации ресторана
type PolicyRepository interface {
	Get(ctx context.Context) (*domain.RestaurantPolicy, error)
	Update(ctx context.Context, p *domain.RestaurantPolicy) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
