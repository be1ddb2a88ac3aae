package update_reservation

import (
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

// Request модель запроса на редактирование брони.
// Nil-поля не меняются.
type Request struct {
	ReservationID int64

	Date            *time.Time
	StartTime       *string // Время начала в любом поддерживаемом формате
	PartySize       *int
	DurationMinutes *int
	TableID         *int64 // Перезакрепить на другой стол
	ClearTable      bool   // Снять закрепление стола
	Notes           *string

	Role domain.Role // Роль сотрудника, редактирование прошлого только для admin
}

// Response модель ответа с обновленной бронью
type Response struct {
	ID         int64
	CustomerID *int64
	TableID    *int64
	Date       time.Time
	StartTime  string
	EndTime    string
	PartySize  int
	Status     string
	Channel    string
	Notes      *string

	GuestName  *string
	GuestPhone *string
	GuestEmail *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
