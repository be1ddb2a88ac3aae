package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/api/middleware"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	updateReservation "github.com/mesaviva/MV-ReservationService/internal/usecase/update_reservation"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound             = "бронь не найдена"
	msgNotEditable          = "бронь больше нельзя редактировать"
	msgPastDateEdit         = "редактировать прошедшие брони может только администратор"
	msgConflict             = "измененная бронь не проходит по занятости"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	role, _ := middleware.GetRole(r.Context())

	useCaseReq, err := req.ToUseCaseRequest(reservationID, role)
	if err != nil {
		h.logger.Warn("PATCH /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateReservation.ErrNotEditable):
			h.logger.Warn("PATCH /reservations/{id} - Not editable: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgNotEditable)

		case errors.Is(err, updateReservation.ErrPastDateEdit):
			h.logger.Warn("PATCH /reservations/{id} - Past date edit denied: reservation_id=%d", reservationID)
			handlers.RespondForbidden(w, msgPastDateEdit)

		case errors.Is(err, updateReservation.ErrInvalidInput),
			errors.Is(err, admission.ErrInvalidTime),
			errors.Is(err, admission.ErrInvalidPartySize),
			errors.Is(err, admission.ErrInvalidDuration),
			errors.Is(err, admission.ErrPastDate),
			errors.Is(err, admission.ErrOutsideBusinessHours),
			errors.Is(err, admission.ErrTableInactive),
			errors.Is(err, admission.ErrPartyExceedsTableCapacity):
			h.logger.Warn("PATCH /reservations/{id} - Rejected: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, admission.ErrTableNotFound):
			h.logger.Warn("PATCH /reservations/{id} - Table not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, err.Error())

		case errors.Is(err, admission.ErrTableOverlap),
			errors.Is(err, admission.ErrDuplicateReservation),
			errors.Is(err, admission.ErrInsufficientCapacity),
			errors.Is(err, admission.ErrSlotLimitReached),
			errors.Is(err, admission.ErrNoTableAvailable):
			h.logger.Warn("PATCH /reservations/{id} - Conflict: reservation_id=%d, error=%v", reservationID, err)
			handlers.RespondConflict(w, msgConflict)

		default:
			h.logger.Error("PATCH /reservations/{id} - Failed to update reservation: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /reservations/{id} - Reservation updated successfully: reservation_id=%d", reservationID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
