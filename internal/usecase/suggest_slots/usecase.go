package suggest_slots

import (
	"context"
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
)

// UseCase use case подбора альтернативных времен того же дня
type UseCase struct {
	policyRepo PolicyRepository
	admission  AdmissionController
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(policyRepo PolicyRepository, admissionController AdmissionController, logger Logger) *UseCase {
	return &UseCase{
		policyRepo: policyRepo,
		admission:  admissionController,
		logger:     logger,
	}
}

// Execute подбирает до пяти ближайших времен дня, проходящих по часам
// работы и совокупной вместимости. Выборка консультативная и не
// резервирует места, поэтому идет без транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SuggestSlots: date=%s, time=%s, party=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.StartTime == "" {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize {
		return nil, fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	policy, err := uc.policyRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("SuggestSlots: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	slots, err := uc.admission.SuggestAlternateSlots(ctx, *policy, admission.Request{
		Date:            req.Date,
		StartTime:       req.StartTime,
		PartySize:       req.PartySize,
		DurationMinutes: req.DurationMinutes,
	})
	if err != nil {
		uc.logger.Warn("SuggestSlots: failed: %v", err)
		return nil, err
	}

	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}

	uc.logger.Info("SuggestSlots: found %d alternate slots", len(out))

	return &Response{
		Date:      req.Date.Format(domain.DateFormat),
		Slots:     out,
		PartySize: req.PartySize,
	}, nil
}
