package create_reservation

import (
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	createReservation "github.com/mesaviva/MV-ReservationService/internal/usecase/create_reservation"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date            string  `json:"date"`      // "2025-12-19"
	StartTime       string  `json:"startTime"` // "19:00", "7:00 pm"
	PartySize       int     `json:"partySize"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	TableID         *int64  `json:"tableId,omitempty"`
	Channel         string  `json:"channel,omitempty"` // по умолчанию web
	Notes           *string `json:"notes,omitempty"`

	CustomerID *int64  `json:"customerId,omitempty"`
	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID         int64   `json:"id"`
	CustomerID *int64  `json:"customerId,omitempty"`
	TableID    *int64  `json:"tableId,omitempty"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	PartySize  int     `json:"partySize"`
	Status     string  `json:"status"`
	Channel    string  `json:"channel"`
	Notes      *string `json:"notes,omitempty"`
	GuestName  *string `json:"guestName,omitempty"`
	GuestPhone *string `json:"guestPhone,omitempty"`
	GuestEmail *string `json:"guestEmail,omitempty"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// RejectionResponse ответ на отказ по занятости, с альтернативами
type RejectionResponse struct {
	Error          string   `json:"error"`
	SuggestedSlots []string `json:"suggestedSlots,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(createdBy *int64) (*createReservation.Request, error) {
	date, err := calendar.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}

	channel := r.Channel
	if channel == "" {
		channel = string(domain.ChannelWeb)
	}

	return &createReservation.Request{
		Date:            date,
		StartTime:       r.StartTime,
		PartySize:       r.PartySize,
		DurationMinutes: r.DurationMinutes,
		TableID:         r.TableID,
		Channel:         channel,
		Notes:           r.Notes,
		CustomerID:      r.CustomerID,
		GuestName:       r.GuestName,
		GuestPhone:      r.GuestPhone,
		GuestEmail:      r.GuestEmail,
		CreatedBy:       createdBy,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:         resp.ID,
		CustomerID: resp.CustomerID,
		TableID:    resp.TableID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime,
		EndTime:    resp.EndTime,
		PartySize:  resp.PartySize,
		Status:     resp.Status,
		Channel:    resp.Channel,
		Notes:      resp.Notes,
		GuestName:  resp.GuestName,
		GuestPhone: resp.GuestPhone,
		GuestEmail: resp.GuestEmail,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
