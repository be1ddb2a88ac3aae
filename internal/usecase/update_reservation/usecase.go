package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	reservationRepo "github.com/mesaviva/MV-ReservationService/internal/infra/storage/reservation"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
)

// UseCase use case для редактирования брони
type UseCase struct {
	reservationRepo ReservationRepository
	policyRepo      PolicyRepository
	admission       AdmissionController
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	policyRepo PolicyRepository,
	admissionController AdmissionController,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		policyRepo:      policyRepo,
		admission:       admissionController,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case редактирования брони.
// Измененная бронь проходит конвейер допуска заново, исключая саму себя
// из проверок пересечений, в той же сериализуемой транзакции, что и запись.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d", req.ReservationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	var result *domain.Reservation

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2. Загружаем бронь
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3. Терминальные статусы не редактируются
		if !reservation.CanBeEdited() {
			uc.logger.Warn("UpdateReservation: reservation id=%d not editable, status=%s",
				req.ReservationID, reservation.Status)
			return ErrNotEditable
		}

		// 4. Брони на прошедшие даты меняет только администратор
		if calendar.IsPast(reservation.Date, uc.timeProvider.Now()) && req.Role != domain.RoleAdmin {
			uc.logger.Warn("UpdateReservation: reservation id=%d is in the past, role=%s",
				req.ReservationID, req.Role)
			return ErrPastDateEdit
		}

		// 5. Собираем предполагаемое состояние брони
		policy, err := uc.policyRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to get policy: %v", err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		proposed := mergeRequest(reservation, req, policy.StandardDurationMinutes)

		// 6. Конвейер допуска заново, исключая саму бронь
		plan, err := uc.admission.ValidateAndPlan(txCtx, *policy, proposed)
		if err != nil {
			uc.logger.Warn("UpdateReservation: admission rejected: %v", err)
			return err
		}

		// 7. Назначение стола: явное, снятое или прежнее
		tableID := proposed.TableID
		if tableID == nil {
			table, err := uc.admission.AutoAssign(txCtx, proposed, plan.StartTime, plan.EndTime)
			if err != nil {
				uc.logger.Error("UpdateReservation: auto-assign failed: %v", err)
				return err
			}
			if table != nil {
				tableID = &table.ID
				uc.logger.Info("UpdateReservation: auto-assigned table id=%d", table.ID)
			} else if !policy.AllowUnassignedOverflow {
				uc.logger.Warn("UpdateReservation: no free table and overflow disabled")
				return admission.ErrNoTableAvailable
			}
		}

		// 8. Применяем изменения и сохраняем
		reservation.Date = proposed.Date
		reservation.StartTime = plan.StartTime
		reservation.EndTime = plan.EndTime
		reservation.PartySize = proposed.PartySize
		reservation.TableID = tableID
		if req.Notes != nil {
			reservation.Notes = req.Notes
		}

		if err := uc.reservationRepo.Update(txCtx, reservation); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = reservation
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

	return &Response{
		ID:         result.ID,
		CustomerID: result.CustomerID,
		TableID:    result.TableID,
		Date:       result.Date,
		StartTime:  result.StartTime.String(),
		EndTime:    result.EndTime.String(),
		PartySize:  result.PartySize,
		Status:     string(result.Status),
		Channel:    string(result.Channel),
		Notes:      result.Notes,
		GuestName:  result.GuestName,
		GuestPhone: result.GuestPhone,
		GuestEmail: result.GuestEmail,
		CreatedAt:  result.CreatedAt,
		UpdatedAt:  result.UpdatedAt,
	}, nil
}

// mergeRequest накладывает изменения запроса на текущую бронь и строит
// запрос допуска для проверки итогового состояния
func mergeRequest(current *domain.Reservation, req *Request, standardDuration int) admission.Request {
	out := admission.Request{
		Date:                 current.Date,
		StartTime:            current.StartTime.String(),
		PartySize:            current.PartySize,
		TableID:              current.TableID,
		CustomerID:           current.CustomerID,
		ExcludeReservationID: &current.ID,
	}

	if req.Date != nil {
		out.Date = *req.Date
	}
	if req.StartTime != nil {
		out.StartTime = *req.StartTime
	}
	if req.PartySize != nil {
		out.PartySize = *req.PartySize
	}

	// Длительность: явная из запроса, иначе прежняя длительность брони
	if req.DurationMinutes != nil {
		out.DurationMinutes = req.DurationMinutes
	} else if !current.EndTime.IsZero() {
		existing := current.EndTime.Minutes() - current.StartTime.Minutes()
		if existing > 0 && existing != standardDuration {
			out.DurationMinutes = &existing
		}
	}

	if req.TableID != nil {
		out.TableID = req.TableID
	}
	if req.ClearTable {
		out.TableID = nil
	}

	return out
}
