package day_stats

import (
	"net/http"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
)

const (
	msgMissingDate = "параметр date обязателен"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
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

// Handle GET /api/v1/reservations/stats?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /reservations/stats - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /reservations/stats - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	stats, err := h.service.DayStats(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /reservations/stats - Failed to get stats: date=%s, error=%v", dateStr, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /reservations/stats - Stats retrieved successfully: date=%s", dateStr)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
