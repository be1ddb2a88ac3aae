package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	hoursRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/hours"
	"github.com/mesaviva/MV-ReservationService/internal/service/hours/models"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
	"github.com/mesaviva/MV-ReservationService/pkg/types"
)

// Service сервис расписания работы ресторана.
// Каждый день недели держит ноль и более интервалов; день без
// интервалов считается выходным.
type Service struct {
	hoursRepo HoursRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(hoursRepo HoursRepository, logger Logger) *Service {
	return &Service{
		hoursRepo: hoursRepo,
		logger:    logger,
	}
}

// Create добавляет интервал работы на день недели
func (s *Service) Create(ctx context.Context, req *models.CreateIntervalRequest) (*models.IntervalResponse, error) {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return nil, ErrInvalidDay
	}

	open, close, err := parseRange(req.OpenTime, req.CloseTime)
	if err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, req.DayOfWeek, open, close, 0); err != nil {
		return nil, err
	}

	h, err := s.hoursRepo.Create(ctx, &domain.BusinessHourInterval{
		DayOfWeek: req.DayOfWeek,
		OpenTime:  open,
		CloseTime: close,
		Active:    true,
	})
	if err != nil {
		s.logger.Error("Create: repository error for day=%d: %v", req.DayOfWeek, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: added interval id=%d %s on day=%d", h.ID, h.FormatRange(), h.DayOfWeek)
	return models.FromDomainInterval(h, calendar.DayName(h.DayOfWeek)), nil
}

// List возвращает все интервалы недели по дням
func (s *Service) List(ctx context.Context) (*models.IntervalListResponse, error) {
	intervals, err := s.hoursRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.IntervalListResponse{
		Intervals: make([]models.IntervalResponse, 0, len(intervals)),
	}
	for _, h := range intervals {
		resp.Intervals = append(resp.Intervals, *models.FromDomainInterval(h, calendar.DayName(h.DayOfWeek)))
	}
	return resp, nil
}

// Update изменяет границы или активность интервала
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateIntervalRequest) (*models.IntervalResponse, error) {
	existing, err := s.findByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OpenTime != nil {
		open, err := types.NewTimeStringFromString(*req.OpenTime)
		if err != nil {
			return nil, fmt.Errorf("%w: open time %q", ErrInvalidInput, *req.OpenTime)
		}
		existing.OpenTime = open
	}
	if req.CloseTime != nil {
		close, err := types.NewTimeStringFromString(*req.CloseTime)
		if err != nil {
			return nil, fmt.Errorf("%w: close time %q", ErrInvalidInput, *req.CloseTime)
		}
		existing.CloseTime = close
	}
	if !existing.OpenTime.IsBefore(existing.CloseTime) {
		return nil, ErrInvalidRange
	}
	if req.Active != nil {
		existing.Active = *req.Active
	}

	if existing.Active {
		if err := s.checkOverlap(ctx, existing.DayOfWeek, existing.OpenTime, existing.CloseTime, existing.ID); err != nil {
			return nil, err
		}
	}

	if err := s.hoursRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, hoursRepo.ErrIntervalNotFound) {
			return nil, ErrIntervalNotFound
		}
		s.logger.Error("Update: repository error for interval id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated interval id=%d", id)
	return models.FromDomainInterval(existing, calendar.DayName(existing.DayOfWeek)), nil
}

// Delete удаляет интервал из расписания
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.hoursRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, hoursRepo.ErrIntervalNotFound) {
			s.logger.Warn("Delete: interval id=%d not found", id)
			return ErrIntervalNotFound
		}
		s.logger.Error("Delete: repository error for interval id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted interval id=%d", id)
	return nil
}

// Вспомогательные методы

func (s *Service) findByID(ctx context.Context, id int64) (*domain.BusinessHourInterval, error) {
	intervals, err := s.hoursRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("findByID: repository error: %v", err)
		return nil, fmt.Errorf("%w: findByID - repository error: %v", ErrInternal, err)
	}
	for _, h := range intervals {
		if h.ID == id {
			return h, nil
		}
	}
	s.logger.Warn("findByID: interval id=%d not found", id)
	return nil, ErrIntervalNotFound
}

// checkOverlap отклоняет интервал, пересекающийся с активным интервалом
// того же дня. excludeID исключает сам интервал при редактировании.
func (s *Service) checkOverlap(ctx context.Context, dayOfWeek int, open, close types.TimeString, excludeID int64) error {
	existing, err := s.hoursRepo.ListActiveByDay(ctx, dayOfWeek)
	if err != nil {
		s.logger.Error("checkOverlap: repository error for day=%d: %v", dayOfWeek, err)
		return fmt.Errorf("%w: checkOverlap - repository error: %v", ErrInternal, err)
	}

	for _, h := range existing {
		if h.ID == excludeID {
			continue
		}
		if types.Overlaps(open, close, h.OpenTime, h.CloseTime) {
			return fmt.Errorf("%w: %s", ErrIntervalOverlap, h.FormatRange())
		}
	}
	return nil
}

func parseRange(openStr, closeStr string) (types.TimeString, types.TimeString, error) {
	open, err := types.NewTimeStringFromString(openStr)
	if err != nil {
		return "", "", fmt.Errorf("%w: open time %q", ErrInvalidInput, openStr)
	}
	close, err := types.NewTimeStringFromString(closeStr)
	if err != nil {
		return "", "", fmt.Errorf("%w: close time %q", ErrInvalidInput, closeStr)
	}
	if !open.IsBefore(close) {
		return "", "", ErrInvalidRange
	}
	return open, close, nil
}
