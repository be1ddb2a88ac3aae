package list_reservations

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/reservations"
	"github.com/mesaviva/MV-ReservationService/internal/service/reservations/models"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
)

const (
	msgMissingDate    = "параметр date обязателен"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTableID = "некорректный tableId"
	msgInvalidFilter  = "некорректные параметры фильтрации"
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

// Handle GET /api/v1/reservations?date=YYYY-MM-DD&tableId=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /reservations - Missing date parameter")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /reservations - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	req := &models.ListReservationsRequest{Date: date}

	if raw := query.Get("tableId"); raw != "" {
		tableID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /reservations - Invalid tableId: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTableID)
			return
		}
		req.TableID = &tableID
	}

	if raw := query.Get("status"); raw != "" {
		req.Status = &raw
	}

	if query.Get("includeInactive") == "true" {
		req.IncludeInactive = true
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidInput):
			h.logger.Warn("GET /reservations - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Retrieved %d reservations for date=%s", len(result.Reservations), dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
