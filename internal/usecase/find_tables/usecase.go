package find_tables

import (
	"context"
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// UseCase use case подбора свободных столов на окно времени
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

// Execute возвращает активные столы, вмещающие гостей и свободные
// в запрошенном окне. Выборка консультативная, без транзакции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindTables: date=%s, time=%s, party=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.PartySize < domain.MinPartySize {
		return nil, fmt.Errorf("%w: partySize must be positive", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.StartTime)
	}

	policy, err := uc.policyRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("FindTables: failed to get policy: %v", err)
		return nil, fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
	}

	duration := policy.StandardDurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	end, err := start.AddMinutes(duration)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTime, req.StartTime)
	}
	if !start.IsBefore(end) {
		return nil, admission.ErrCrossesMidnight
	}

	tables, err := uc.admission.FindAvailableTables(ctx, admission.Request{
		Date:      req.Date,
		StartTime: req.StartTime,
		PartySize: req.PartySize,
	}, start, end)
	if err != nil {
		uc.logger.Warn("FindTables: failed: %v", err)
		return nil, err
	}

	options := make([]TableOption, 0, len(tables))
	for _, t := range tables {
		options = append(options, TableOption{
			ID:       t.ID,
			Name:     t.Name,
			Capacity: t.Capacity,
			Zone:     t.Zone,
		})
	}

	uc.logger.Info("FindTables: found %d free tables", len(options))

	return &Response{
		Date:      req.Date.Format(domain.DateFormat),
		StartTime: start.String(),
		EndTime:   end.String(),
		Tables:    options,
	}, nil
}
