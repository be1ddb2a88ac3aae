package create_reservation

import (
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime == "" {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.PartySize < domain.MinPartySize {
		return fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	if !domain.IsValidChannel(domain.Channel(req.Channel)) {
		return fmt.Errorf("%w: unknown channel %q", ErrInvalidInput, req.Channel)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.GuestName != nil && len(*req.GuestName) > domain.MaxGuestNameLength {
		return fmt.Errorf("%w: guest name longer than %d characters", ErrInvalidInput, domain.MaxGuestNameLength)
	}

	if req.TableID != nil && *req.TableID <= 0 {
		return fmt.Errorf("%w: tableID must be positive", ErrInvalidInput)
	}

	if req.CustomerID != nil && *req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	return nil
}

// hasGuestContacts проверяет, что переданы контакты для карточки клиента
func hasGuestContacts(req *Request) bool {
	return derefStr(req.GuestEmail) != "" || derefStr(req.GuestPhone) != ""
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
