package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	reservationRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/reservation"
	"github.com/mesaviva/MV-ReservationService/internal/service/reservations/models"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
)

// Service сервис жизненного цикла броней: выборки, статистика дня,
// смена статусов, отмена и отметка неявки. Создание и редактирование
// броней живут в своих usecase, здесь только операции над существующими.
type Service struct {
	reservationRepo ReservationRepository
	policyProvider  PolicyProvider
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(
	reservationRepo ReservationRepository,
	policyProvider PolicyProvider,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		policyProvider:  policyProvider,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.loadReservation(ctx, id, "GetByID")
	if err != nil {
		return nil, err
	}
	return models.FromDomainReservation(reservation), nil
}

// List получает брони за день с фильтрацией по столу, клиенту и статусу.
// По умолчанию отмененные, неявки и завершенные не включаются.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations for date=%s", req.Date.Format(domain.DateFormat))

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for date=%s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// DayStats возвращает агрегированную статистику броней за день
func (s *Service) DayStats(ctx context.Context, date time.Time) (*models.DayStatsResponse, error) {
	stats, err := s.reservationRepo.DayStats(ctx, calendar.Normalize(date))
	if err != nil {
		s.logger.Error("DayStats: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: DayStats - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainDayStats(stats), nil
}

// Cancel отменяет бронь.
// Гостевая отмена проверяется против минимального окна отмены из политики,
// отмена сотрудником не ограничена.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d, byStaff=%v", id, req.ByStaff)

	reservation, err := s.loadReservation(ctx, id, "Cancel")
	if err != nil {
		return err
	}

	if !reservation.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, reservation.Status)
		return ErrCannotCancel
	}

	if !req.ByStaff {
		policy, err := s.policyProvider.Get(ctx)
		if err != nil {
			s.logger.Error("Cancel: failed to load policy: %v", err)
			return fmt.Errorf("%w: Cancel - load policy: %v", ErrInternal, err)
		}

		starts := startsAt(reservation)
		lead := time.Duration(policy.MinCancelLeadMinutes) * time.Minute
		if s.timeProvider.Now().Add(lead).After(starts) {
			s.logger.Warn("Cancel: reservation id=%d starts at %s, cancel window of %d minutes missed",
				id, starts.Format(time.RFC3339), policy.MinCancelLeadMinutes)
			return ErrCancelTooLate
		}
	}

	if err := s.reservationRepo.Cancel(ctx, id, req.Reason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)
	return nil
}

// MarkNoShow отмечает неявку по брони.
// Доступно только после истечения допустимого опоздания из политики.
func (s *Service) MarkNoShow(ctx context.Context, id int64) error {
	s.logger.Info("MarkNoShow: marking reservation id=%d as no-show", id)

	reservation, err := s.loadReservation(ctx, id, "MarkNoShow")
	if err != nil {
		return err
	}

	if !reservation.CanBeMarkedNoShow() {
		s.logger.Warn("MarkNoShow: reservation id=%d cannot be marked, status=%s", id, reservation.Status)
		return ErrCannotMarkNoShow
	}

	policy, err := s.policyProvider.Get(ctx)
	if err != nil {
		s.logger.Error("MarkNoShow: failed to load policy: %v", err)
		return fmt.Errorf("%w: MarkNoShow - load policy: %v", ErrInternal, err)
	}

	threshold := startsAt(reservation).Add(time.Duration(policy.MaxLatenessMinutes) * time.Minute)
	if s.timeProvider.Now().Before(threshold) {
		s.logger.Warn("MarkNoShow: reservation id=%d lateness threshold at %s not reached",
			id, threshold.Format(time.RFC3339))
		return ErrTooEarlyForNoShow
	}

	if err := s.reservationRepo.MarkNoShow(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("MarkNoShow: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: MarkNoShow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("MarkNoShow: successfully marked reservation id=%d as no-show", id)
	return nil
}

// UpdateStatus переводит бронь в новый статус по таблице переходов
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, req.Status)

	reservation, err := s.loadReservation(ctx, id, "UpdateStatus")
	if err != nil {
		return err
	}

	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if !domain.CanTransition(reservation.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s not allowed for reservation id=%d",
			reservation.Status, newStatus, id)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, newStatus)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)
	return nil
}

// Вспомогательные методы

func (s *Service) loadReservation(ctx context.Context, id int64, op string) (*domain.Reservation, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("%s: reservation id=%d not found", op, id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("%s: repository error for reservation id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return reservation, nil
}

// startsAt собирает момент начала брони из даты и времени начала (UTC)
func startsAt(r *domain.Reservation) time.Time {
	day := calendar.Normalize(r.Date)
	return day.Add(time.Duration(r.StartTime.Minutes()) * time.Minute)
}
