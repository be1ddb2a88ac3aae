package models

import (
	"errors"
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену брони
type CancelReservationRequest struct {
	Reason string `json:"reason"`

	// Отмена сотрудником не ограничена окном отмены,
	// гостевая отмена через веб проверяется против политики
	ByStaff bool `json:"-"`
}

// UpdateStatusRequest запрос на смену статуса брони
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListReservationsRequest запрос на выборку броней за день
type ListReservationsRequest struct {
	Date            time.Time
	TableID         *int64
	CustomerID      *int64
	Status          *string
	IncludeInactive bool
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		Date:            &r.Date,
		TableID:         r.TableID,
		CustomerID:      r.CustomerID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными брони
type ReservationResponse struct {
	ID         int64   `json:"id"`
	CustomerID *int64  `json:"customerId,omitempty"`
	TableID    *int64  `json:"tableId,omitempty"`
	Date       string  `json:"date"`      // "2025-12-19"
	StartTime  string  `json:"startTime"` // "19:00"
	EndTime    string  `json:"endTime"`   // "20:30"
	PartySize  int     `json:"partySize"`
	Status     string  `json:"status"`
	Channel    string  `json:"channel"`
	Notes      *string `json:"notes,omitempty"`

	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// DayStatsResponse агрегированная статистика за день
type DayStatsResponse struct {
	Date         string `json:"date"`
	Total        int    `json:"total"`
	Active       int    `json:"active"`
	Pending      int    `json:"pending"`
	Confirmed    int    `json:"confirmed"`
	InProgress   int    `json:"inProgress"`
	Completed    int    `json:"completed"`
	Cancelled    int    `json:"cancelled"`
	NoShows      int    `json:"noShows"`
	ActiveGuests int    `json:"activeGuests"`
	TotalGuests  int    `json:"totalGuests"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                 r.ID,
		CustomerID:         r.CustomerID,
		TableID:            r.TableID,
		Date:               r.Date.Format(domain.DateFormat),
		StartTime:          r.StartTime.String(),
		EndTime:            r.EndTime.String(),
		PartySize:          r.PartySize,
		Status:             string(r.Status),
		Channel:            string(r.Channel),
		Notes:              r.Notes,
		GuestName:          r.GuestName,
		GuestPhone:         r.GuestPhone,
		GuestEmail:         r.GuestEmail,
		CancellationReason: r.CancellationReason,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledStr := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	if reservations == nil {
		return &ReservationListResponse{
			Reservations: []ReservationResponse{},
		}
	}

	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, len(reservations)),
	}

	for i, r := range reservations {
		if rr := FromDomainReservation(r); rr != nil {
			resp.Reservations[i] = *rr
		}
	}

	return resp
}

// FromDomainDayStats конвертирует статистику дня в DTO
func FromDomainDayStats(s *domain.DayStats) *DayStatsResponse {
	if s == nil {
		return nil
	}

	return &DayStatsResponse{
		Date:         s.Date.Format(domain.DateFormat),
		Total:        s.Total,
		Active:       s.Active,
		Pending:      s.Pending,
		Confirmed:    s.Confirmed,
		InProgress:   s.InProgress,
		Completed:    s.Completed,
		Cancelled:    s.Cancelled,
		NoShows:      s.NoShows,
		ActiveGuests: s.ActiveGuests,
		TotalGuests:  s.TotalGuests,
	}
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !domain.IsValidStatus(s) {
		return "", ErrInvalidStatus
	}
	return s, nil
}
