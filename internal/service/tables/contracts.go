package tables

import (
	"context"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

// TableRepository интерфейс репозитория столов
type TableRepository interface {
	Create(ctx context.Context, t *domain.Table) (*domain.Table, error)
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	List(ctx context.Context) ([]*domain.Table, error)
	Update(ctx context.Context, t *domain.Table) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
