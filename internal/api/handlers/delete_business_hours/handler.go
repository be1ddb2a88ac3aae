package delete_business_hours

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/hours"
)

const (
	msgInvalidIntervalID = "некорректный ID интервала"
	msgNotFound          = "интервал не найден"
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

// Handle DELETE /api/v1/business-hours/{intervalId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	intervalID, err := strconv.ParseInt(vars["intervalId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /business-hours/{id} - Invalid interval ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidIntervalID)
		return
	}

	if err := h.service.Delete(r.Context(), intervalID); err != nil {
		switch {
		case errors.Is(err, hours.ErrIntervalNotFound):
			h.logger.Warn("DELETE /business-hours/{id} - Interval not found: interval_id=%d", intervalID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /business-hours/{id} - Failed to delete interval: interval_id=%d, error=%v",
				intervalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /business-hours/{id} - Interval deleted successfully: interval_id=%d", intervalID)
	handlers.RespondNoContent(w)
}
