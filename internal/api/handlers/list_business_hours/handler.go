package list_business_hours

import (
	"net/http"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
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

// Handle GET /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /business-hours - Failed to list intervals: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /business-hours - Retrieved %d intervals", len(result.Intervals))
	handlers.RespondJSON(w, http.StatusOK, result)
}
