package create_business_hours

import (
	"errors"
	"net/http"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/hours"
	"github.com/mesaviva/MV-ReservationService/internal/service/hours/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDay         = "день недели должен быть от 0 до 6"
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

// Handle POST /api/v1/business-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateIntervalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /business-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, hours.ErrInvalidDay):
			h.logger.Warn("POST /business-hours - Invalid day: %d", req.DayOfWeek)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, hours.ErrInvalidRange):
			h.logger.Warn("POST /business-hours - Invalid range: %s-%s", req.OpenTime, req.CloseTime)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, hours.ErrIntervalOverlap):
			h.logger.Warn("POST /business-hours - Overlap: day=%d, %s-%s", req.DayOfWeek, req.OpenTime, req.CloseTime)
			handlers.RespondConflict(w, msgOverlap)

		case errors.Is(err, hours.ErrInvalidInput):
			h.logger.Warn("POST /business-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /business-hours - Failed to create interval: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /business-hours - Interval created successfully: interval_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
