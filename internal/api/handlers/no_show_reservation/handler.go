package no_show_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/reservations"
)

const (
	msgInvalidReservationID = "некорректный ID брони"
	msgNotFound             = "бронь не найдена"
	msgCannotMark           = "бронь нельзя отметить как неявку"
	msgTooEarly             = "допустимое опоздание еще не истекло"
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

// Handle POST /api/v1/reservations/{reservationId}/no-show
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	reservationID, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /reservations/{id}/no-show - Invalid reservation ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	if err := h.service.MarkNoShow(r.Context(), reservationID); err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("POST /reservations/{id}/no-show - Reservation not found: reservation_id=%d", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotMarkNoShow):
			h.logger.Warn("POST /reservations/{id}/no-show - Cannot mark: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgCannotMark)

		case errors.Is(err, reservations.ErrTooEarlyForNoShow):
			h.logger.Warn("POST /reservations/{id}/no-show - Too early: reservation_id=%d", reservationID)
			handlers.RespondConflict(w, msgTooEarly)

		default:
			h.logger.Error("POST /reservations/{id}/no-show - Failed to mark: reservation_id=%d, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/{id}/no-show - Marked successfully: reservation_id=%d", reservationID)
	handlers.RespondNoContent(w)
}
