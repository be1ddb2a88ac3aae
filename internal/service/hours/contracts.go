package hours

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

// HoursRepository интерфейс репозитория расписания работы
type HoursRepository interface {
	Create(ctx context.Context, h *domain.BusinessHourInterval) (*domain.BusinessHourInterval, error)
	ListAll(ctx context.Context) ([]*domain.BusinessHourInterval, error)
	ListActiveByDay(ctx context.Context, dayOfWeek int) ([]*domain.BusinessHourInterval, error)
	Update(ctx context.Context, h *domain.BusinessHourInterval) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
