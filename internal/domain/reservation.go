package domain

import (
	"time"

	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending    ReservationStatus = "pending"
	StatusConfirmed  ReservationStatus = "confirmed"
	StatusInProgress ReservationStatus = "in_progress"
	StatusCompleted  ReservationStatus = "completed"
	StatusCancelled  ReservationStatus = "cancelled"
	StatusNoShow     ReservationStatus = "no_show"
)

// Channel represents how the reservation was placed
type Channel string

const (
	ChannelWeb      Channel = "web"
	ChannelPhone    Channel = "phone"
	ChannelInPerson Channel = "in_person"
)

// Reservation represents a table reservation in the system
type Reservation struct {
	ID         int64
	CustomerID *int64 // nil для гостевых броней без карточки клиента
	TableID    *int64 // nil = стол не назначен
	Date       time.Time
	StartTime  types.TimeString
	EndTime    types.TimeString // всегда StartTime + длительность
	PartySize  int
	Status     ReservationStatus
	Channel    Channel
	Notes      *string

	// Контактные данные гостя, хранимые прямо в брони
	// (для публичных броней без записи клиента)
	GuestName  *string
	GuestPhone *string
	GuestEmail *string

	CreatedBy *int64 // ID сотрудника, nil для публичных броней

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation still occupies its slot.
// Cancelled, no-show and completed reservations release capacity.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled &&
		r.Status != StatusNoShow &&
		r.Status != StatusCompleted
}

// IsTerminal returns true if no further transitions are possible
func (r *Reservation) IsTerminal() bool {
	return r.Status == StatusCompleted ||
		r.Status == StatusCancelled ||
		r.Status == StatusNoShow
}

// CanBeCancelled returns true if the reservation can still be cancelled
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusPending ||
		r.Status == StatusConfirmed ||
		r.Status == StatusInProgress
}

// CanBeMarkedNoShow returns true if the reservation can be marked no-show
func (r *Reservation) CanBeMarkedNoShow() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// CanBeEdited returns true if date/time/party/table edits are still allowed
func (r *Reservation) CanBeEdited() bool {
	return !r.IsTerminal()
}

// EffectiveEnd returns the reservation's end time, falling back to
// StartTime + standardDuration when EndTime was never computed.
func (r *Reservation) EffectiveEnd(standardDurationMinutes int) types.TimeString {
	if !r.EndTime.IsZero() {
		return r.EndTime
	}
	end, err := r.StartTime.AddMinutes(standardDurationMinutes)
	if err != nil {
		return r.StartTime
	}
	return end
}

// ReservationsFilter фильтр для выборки броней
type ReservationsFilter struct {
	Date            *time.Time         // Конкретная дата (опционально)
	TableID         *int64             // Фильтр по столу (опционально)
	CustomerID      *int64             // Фильтр по клиенту (опционально)
	Status          *ReservationStatus // Фильтр по статусу (опционально)
	IncludeInactive bool               // Включать ли отмененные/no-show/завершенные
}

// DayStats агрегированная статистика броней за день
type DayStats struct {
	Date       time.Time
	Total      int
	Active     int // pending + confirmed + in_progress
	Pending    int
	Confirmed  int
	InProgress int
	Completed  int
	Cancelled  int
	NoShows    int

	// Гости активных броней (не отмененных и не no-show)
	ActiveGuests int
	// Гости всех броней за день, для справки
	TotalGuests int
}
