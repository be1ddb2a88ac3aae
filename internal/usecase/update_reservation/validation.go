package update_reservation

import (
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.Date != nil && req.Date.IsZero() {
		return fmt.Errorf("%w: date cannot be zero", ErrInvalidInput)
	}

	if req.StartTime != nil && *req.StartTime == "" {
		return fmt.Errorf("%w: startTime cannot be empty", ErrInvalidInput)
	}

	if req.PartySize != nil && *req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.TableID != nil && *req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.TableID != nil && req.ClearTable {
		return fmt.Errorf("%w: cannot assign and clear table at once", ErrInvalidInput)
	}

	return nil
}
