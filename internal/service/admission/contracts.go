package admission

import (
	"context"
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// ReservationLedger интерфейс журнала броней
type ReservationLedger interface {
	GetWithFilter(ctx context.Context, filter domain.ReservationsFilter) ([]*domain.Reservation, error)
}

// TableRegistry интерфейс реестра столов
type TableRegistry interface {
	GetByID(ctx context.Context, id int64) (*domain.Table, error)
	FindCandidates(ctx context.Context, partySize int) ([]*domain.Table, error)
	TotalActiveCapacity(ctx context.Context) (int, error)
}

// HoursRegistry интерфейс расписания работы ресторана
type HoursRegistry interface {
	ListActiveByDay(ctx context.Context, dayOfWeek int) ([]*domain.BusinessHourInterval, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Request запрос на допуск брони. Используется и при создании,
// и при редактировании (с ExcludeReservationID).
type Request struct {
	Date            time.Time
	StartTime       string // сырое время запроса, нормализуется контроллером
	PartySize       int
	DurationMinutes *int   // явная длительность, иначе стандартная из политики
	TableID         *int64 // закрепленный стол (опционально)
	CustomerID      *int64 // для проверки дубликатов (опционально)

	// ID редактируемой брони: исключается из проверок пересечений
	// и дубликатов при update-in-place
	ExcludeReservationID *int64
}

// Plan результат успешной валидации: нормализованные время начала и конца
// и длительность, с которыми бронь может быть записана в журнал
type Plan struct {
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
}
