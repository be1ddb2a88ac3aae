package create_reservation

import (
	"context"
	"fmt"

	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	customermodels "github.com/mesaviva/MV-ReservationService/internal/service/customers/models"
)

// UseCase use case для создания брони
type UseCase struct {
	reservationRepo ReservationRepository
	policyRepo      PolicyRepository
	admission       AdmissionController
	customers       CustomerResolver
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	policyRepo PolicyRepository,
	admissionController AdmissionController,
	customers CustomerResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		policyRepo:      policyRepo,
		admission:       admissionController,
		customers:       customers,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания брони.
// Проверки допуска и запись идут в сериализуемой транзакции,
// чтобы две конкурентные брони не прошли проверки по одному
// и тому же свободному месту.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s, time=%s, party=%d, channel=%s",
		req.Date.Format(domain.DateFormat), req.StartTime, req.PartySize, req.Channel)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем карточку клиента вне транзакции: поиск по контактам
	// не участвует в гонке за места
	customerID := req.CustomerID
	if customerID == nil && hasGuestContacts(req) {
		customer, err := uc.customers.Resolve(ctx, &customermodels.ResolveCustomerRequest{
			FullName: derefStr(req.GuestName),
			Phone:    req.GuestPhone,
			Email:    req.GuestEmail,
		})
		if err != nil {
			uc.logger.Error("CreateReservation: failed to resolve customer: %v", err)
			return nil, fmt.Errorf("%w: failed to resolve customer: %v", ErrInternal, err)
		}
		customerID = &customer.ID
		uc.logger.Info("CreateReservation: resolved customer id=%d", customer.ID)
	}

	var result *domain.Reservation

	// 3. Проверки допуска и запись в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Конфигурация ресторана
		policy, err := uc.policyRepo.Get(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get policy: %v", err)
			return fmt.Errorf("%w: failed to get policy: %v", ErrInternal, err)
		}

		admissionReq := admission.Request{
			Date:            req.Date,
			StartTime:       req.StartTime,
			PartySize:       req.PartySize,
			DurationMinutes: req.DurationMinutes,
			TableID:         req.TableID,
			CustomerID:      customerID,
		}

		// 3.2. Конвейер проверок допуска
		plan, err := uc.admission.ValidateAndPlan(txCtx, *policy, admissionReq)
		if err != nil {
			uc.logger.Warn("CreateReservation: admission rejected: %v", err)
			return err
		}

		// 3.3. Назначение стола
		tableID := req.TableID
		if tableID == nil {
			table, err := uc.admission.AutoAssign(txCtx, admissionReq, plan.StartTime, plan.EndTime)
			if err != nil {
				uc.logger.Error("CreateReservation: auto-assign failed: %v", err)
				return err
			}
			if table != nil {
				tableID = &table.ID
				uc.logger.Info("CreateReservation: auto-assigned table id=%d (%s, seats %d)",
					table.ID, table.Name, table.Capacity)
			} else if !policy.AllowUnassignedOverflow {
				uc.logger.Warn("CreateReservation: no free table and overflow disabled")
				return admission.ErrNoTableAvailable
			} else {
				uc.logger.Info("CreateReservation: no free table, admitting without assignment")
			}
		}

		// 3.4. Создаем бронь
		reservation := &domain.Reservation{
			CustomerID: customerID,
			TableID:    tableID,
			Date:       req.Date,
			StartTime:  plan.StartTime,
			EndTime:    plan.EndTime,
			PartySize:  req.PartySize,
			Status:     domain.StatusPending,
			Channel:    domain.Channel(req.Channel),
			Notes:      req.Notes,
			GuestName:  req.GuestName,
			GuestPhone: req.GuestPhone,
			GuestEmail: req.GuestEmail,
			CreatedBy:  req.CreatedBy,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d", result.ID)

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
