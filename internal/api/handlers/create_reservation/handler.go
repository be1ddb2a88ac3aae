package create_reservation

import (
	"context"
	"errors"
	"net/http"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/api/middleware"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	createReservation "github.com/mesaviva/MV-ReservationService/internal/usecase/create_reservation"
	suggestSlots "github.com/mesaviva/MV-ReservationService/internal/usecase/suggest_slots"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректный формат времени начала"
	msgPastDate           = "дата брони уже прошла"
	msgTableNotFound      = "стол не найден"
	msgTableInactive      = "стол недоступен для броней"
	msgTableTooSmall      = "выбранный стол не вмещает столько гостей"
	msgDuplicate          = "у клиента уже есть бронь на это время"
	msgTableTaken         = "стол уже занят на это время"
	msgNoCapacity         = "нет мест на это время"
	msgNoTableAvailable   = "нет свободного стола на это время"
	msgSlotLimit          = "лимит броней на это время исчерпан"
)

type Handler struct {
	useCase  CreateReservationUseCase
	suggests SuggestSlotsUseCase
	logger   Logger
}

func NewHandler(useCase CreateReservationUseCase, suggests SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		suggests: suggests,
		logger:   logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сотрудник из контекста, nil для публичных броней
	var createdBy *int64
	if id, ok := middleware.GetUserID(r.Context()); ok {
		createdBy = &id
	}

	useCaseReq, err := req.ToUseCaseRequest(createdBy)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondUseCaseError(w, r.Context(), &req, err)
		return
	}

	h.logger.Info("POST /reservations - Reservation created successfully: reservation_id=%d, date=%s, time=%s",
		result.ID, req.Date, result.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// respondUseCaseError транслирует ошибки допуска в HTTP статусы.
// Отказы по занятости дополняются альтернативными временами.
func (h *Handler) respondUseCaseError(w http.ResponseWriter, ctx context.Context, req *CreateReservationRequest, err error) {
	switch {
	case errors.Is(err, createReservation.ErrInvalidInput):
		h.logger.Warn("POST /reservations - Invalid input: %v", err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, admission.ErrInvalidTime):
		h.logger.Warn("POST /reservations - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, admission.ErrPastDate):
		h.logger.Warn("POST /reservations - Past date: date=%s", req.Date)
		handlers.RespondBadRequest(w, msgPastDate)

	case errors.Is(err, admission.ErrInvalidPartySize),
		errors.Is(err, admission.ErrInvalidDuration):
		h.logger.Warn("POST /reservations - Invalid input: %v", err)
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, admission.ErrOutsideBusinessHours):
		h.logger.Warn("POST /reservations - Outside business hours: date=%s, time=%s", req.Date, req.StartTime)
		// Сообщение ошибки несет интервалы работы дня
		handlers.RespondBadRequest(w, err.Error())

	case errors.Is(err, admission.ErrTableNotFound):
		h.logger.Warn("POST /reservations - Table not found: table_id=%v", req.TableID)
		handlers.RespondNotFound(w, msgTableNotFound)

	case errors.Is(err, admission.ErrTableInactive):
		h.logger.Warn("POST /reservations - Table inactive: table_id=%v", req.TableID)
		handlers.RespondBadRequest(w, msgTableInactive)

	case errors.Is(err, admission.ErrPartyExceedsTableCapacity):
		h.logger.Warn("POST /reservations - Party exceeds table capacity: table_id=%v, party=%d",
			req.TableID, req.PartySize)
		handlers.RespondBadRequest(w, msgTableTooSmall)

	case errors.Is(err, admission.ErrDuplicateReservation):
		h.logger.Warn("POST /reservations - Duplicate reservation: date=%s, time=%s", req.Date, req.StartTime)
		handlers.RespondConflict(w, msgDuplicate)

	case errors.Is(err, admission.ErrTableOverlap):
		h.logger.Warn("POST /reservations - Table overlap: table_id=%v, date=%s, time=%s",
			req.TableID, req.Date, req.StartTime)
		h.respondWithSuggestions(w, ctx, req, msgTableTaken)

	case errors.Is(err, admission.ErrInsufficientCapacity):
		h.logger.Warn("POST /reservations - Insufficient capacity: date=%s, time=%s, party=%d",
			req.Date, req.StartTime, req.PartySize)
		h.respondWithSuggestions(w, ctx, req, msgNoCapacity)

	case errors.Is(err, admission.ErrSlotLimitReached):
		h.logger.Warn("POST /reservations - Slot limit reached: date=%s, time=%s", req.Date, req.StartTime)
		h.respondWithSuggestions(w, ctx, req, msgSlotLimit)

	case errors.Is(err, admission.ErrNoTableAvailable):
		h.logger.Warn("POST /reservations - No table available: date=%s, time=%s", req.Date, req.StartTime)
		h.respondWithSuggestions(w, ctx, req, msgNoTableAvailable)

	default:
		h.logger.Error("POST /reservations - Failed to create reservation: %v", err)
		handlers.RespondInternalError(w)
	}
}

func (h *Handler) respondWithSuggestions(w http.ResponseWriter, ctx context.Context, req *CreateReservationRequest, message string) {
	resp := RejectionResponse{Error: message}

	date, err := calendar.ParseDate(req.Date)
	if err == nil {
		suggested, err := h.suggests.Execute(ctx, &suggestSlots.Request{
			Date:            date,
			StartTime:       req.StartTime,
			PartySize:       req.PartySize,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			h.logger.Warn("POST /reservations - Failed to suggest slots: %v", err)
		} else {
			resp.SuggestedSlots = suggested.Slots
		}
	}

	handlers.RespondJSON(w, http.StatusConflict, resp)
}
