package update_reservation

import (
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	updateReservation "github.com/mesaviva/MV-ReservationService/internal/usecase/update_reservation"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
)

// UpdateReservationRequest HTTP request model.
// Отсутствующие поля не меняются.
type UpdateReservationRequest struct {
	Date            *string `json:"date,omitempty"`
	StartTime       *string `json:"startTime,omitempty"`
	PartySize       *int    `json:"partySize,omitempty"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	TableID         *int64  `json:"tableId,omitempty"`
	ClearTable      bool    `json:"clearTable,omitempty"`
	Notes           *string `json:"notes,omitempty"`
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
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(reservationID int64, role domain.Role) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ReservationID:   reservationID,
		StartTime:       r.StartTime,
		PartySize:       r.PartySize,
		DurationMinutes: r.DurationMinutes,
		TableID:         r.TableID,
		ClearTable:      r.ClearTable,
		Notes:           r.Notes,
		Role:            role,
	}

	if r.Date != nil {
		date, err := calendar.ParseDate(*r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
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
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
