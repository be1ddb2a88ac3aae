package cancel_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/api/middleware"
	"github.com/mesaviva/MV-ReservationService/internal/domain"
	"github.com/mesaviva/MV-ReservationService/internal/service/reservations"
	"github.com/mesaviva/MV-ReservationService/internal/service/reservations/models"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgNotFound             = "бронь не найдена"
	msgCannotCancel         = "бронь нельзя отменить из текущего статуса"
	msgTooLate              = "слишком поздно для отмены брони"
	msgReasonTooLong        = "слишком длинная причина отмены"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations/{reservationId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/cancel - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	// Тело опционально: отмена без причины допустима
	var req CancelReservationRequest
	if r.ContentLength > 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /reservations/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	if len(req.Reason) > domain.MaxCancelReasonLength {
		handlers.RespondBadRequest(w, msgReasonTooLong)
		return
	}

	err = h.service.Cancel(r.Context(), reservationID, &models.CancelReservationRequest{
		Reason:  req.Reason,
		ByStaff: middleware.IsStaff(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/cancel - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("POST /reservations/{id}/cancel - Cannot cancel: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, reservations.ErrCancelTooLate):
			h.logger.Warn("POST /reservations/{id}/cancel - Too late: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgTooLate)

		default:
			h.logger.Error("POST /reservations/{id}/cancel - Failed to cancel: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/cancel - Reservation cancelled successfully: reservation_id=%d", reservationID)
	handlers.RespondNoContent(w)
}
