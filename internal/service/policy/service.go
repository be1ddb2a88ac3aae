package policy

import (
	"context"
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/policy/models"
)

// Service сервис конфигурации ресторана
type Service struct {
	policyRepo PolicyRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(policyRepo PolicyRepository, logger Logger) *Service {
	return &Service{
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Get возвращает конфигурацию ресторана.
// При первом обращении репозиторий создает строку с дефолтами.
func (s *Service) Get(ctx context.Context) (*models.PolicyResponse, error) {
	p, err := s.policyRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainPolicy(p), nil
}

// Update частично обновляет конфигурацию ресторана
func (s *Service) Update(ctx context.Context, req *models.UpdatePolicyRequest) (*models.PolicyResponse, error) {
	p, err := s.policyRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to load policy: %v", err)
		return nil, fmt.Errorf("%w: Update - load policy: %v", ErrInternal, err)
	}

	if req.RestaurantName != nil {
		if *req.RestaurantName == "" {
			return nil, fmt.Errorf("%w: restaurant name cannot be empty", ErrInvalidInput)
		}
		p.RestaurantName = *req.RestaurantName
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.NotifyEmail != nil {
		p.NotifyEmail = *req.NotifyEmail
	}

	if req.StandardDurationMinutes != nil {
		d := *req.StandardDurationMinutes
		if d < domain.MinDurationMinutes || d > domain.MaxDurationMinutes {
			return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, d)
		}
		p.StandardDurationMinutes = d
	}
	if req.SlotIntervalMinutes != nil {
		i := *req.SlotIntervalMinutes
		if i < domain.MinSlotIntervalMinutes || i > domain.MaxSlotIntervalMinutes {
			return nil, fmt.Errorf("%w: %d minutes", ErrInvalidSlotInterval, i)
		}
		p.SlotIntervalMinutes = i
	}
	if req.MaxReservationsPerSlot != nil {
		// Ноль снимает лимит
		if *req.MaxReservationsPerSlot <= 0 {
			p.MaxReservationsPerSlot = nil
		} else {
			p.MaxReservationsPerSlot = req.MaxReservationsPerSlot
		}
	}
	if req.MinCancelLeadMinutes != nil {
		if *req.MinCancelLeadMinutes < 0 {
			return nil, fmt.Errorf("%w: cancel lead cannot be negative", ErrInvalidInput)
		}
		p.MinCancelLeadMinutes = *req.MinCancelLeadMinutes
	}
	if req.MaxLatenessMinutes != nil {
		if *req.MaxLatenessMinutes < 0 {
			return nil, fmt.Errorf("%w: lateness cannot be negative", ErrInvalidInput)
		}
		p.MaxLatenessMinutes = *req.MaxLatenessMinutes
	}
	if req.AllowUnassignedOverflow != nil {
		p.AllowUnassignedOverflow = *req.AllowUnassignedOverflow
	}

	if err := s.policyRepo.Update(ctx, p); err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated restaurant policy")
	return models.FromDomainPolicy(p), nil
}
