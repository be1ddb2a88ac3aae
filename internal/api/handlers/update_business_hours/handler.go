package update_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/hours"
	"github.com/mesaviva/MV-ReservationService/internal/service/hours/models"
)

const (
	msgInvalidIntervalID  = "некорректный ID интервала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "интервал не найден"
	msgInvalidRange       = "время открытия должно быть раньше закрытия"
	msgOverlap            = "интервал пересекается с существующим"
)

type Handler struct {
	service HoursService
	logger  Logger
}

func NewHandler(service HoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/business-hours/{intervalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	intervalID, err := strconv.ParseInt(vars["intervalId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /business-hours/{id} - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	var req models.UpdateIntervalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /business-hours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), intervalID, &req)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrIntervalNotFound):
			h.logger.Warn("PATCH /business-hours/{id} - Interval not found: interval_id=%d", intervalID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, hours.ErrInvalidRange):
			h.logger.Warn("PATCH /business-hours/{id} - Invalid range: interval_id=%d", intervalID)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, hours.ErrIntervalOverlap):
			h.logger.Warn("PATCH /business-hours/{id} - Overlap: interval_id=%d", intervalID)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("PATCH /business-hours/{id} - Invalid input: interval_id=%d, error=%v", intervalID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /business-hours/{id} - Failed to update interval: interval_id=%d, error=%v",
				intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /business-hours/{id} - Interval updated successfully: interval_id=%d", intervalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
