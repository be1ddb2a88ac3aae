package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/admission"
	suggestSlots "github.com/mesaviva/MV-ReservationService/internal/usecase/suggest_slots"
	"github.com/mesaviva/MV-ReservationService/pkg/calendar"
)

const (
	msgMissingParams = "параметры date, time и partySize обязательны"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime   = "некорректный формат времени"
	msgInvalidParty  = "некорректный partySize"
)

type Handler struct {
	useCase SuggestSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

/// Handle GET /api/v1/availability/slots?date=YYYY-MM-DD&time=HH:MM&partySize=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	timeStr := query.Get("time")
	partyStr := query.Get("partySize")
	if dateStr == "" || timeStr == "" || partyStr == "" {
		h.logger.Warn("GET /availability/slots - Missing parameters")
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	partySize, err := strconv.Atoi(partyStr)
	if err != nil {
		h.logger.Warn("GET /availability/slots - Invalid partySize: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParty)
		return
	}

	req := &suggestSlots.Request{
		Date:      date,
		StartTime: timeStr,
		PartySize: partySize,
	}

	if raw := query.Get("duration"); raw != "" {
		if duration, err := strconv.Atoi(raw); err == nil {
			req.DurationMinutes = &duration
		}
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, suggestSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability/slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, admission.ErrInvalidTime):
			h.logger.Warn("GET /availability/slots - Invalid time: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /availability/slots - Failed to suggest slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability/slots - Suggested %d slots for date=%s", len(result.Slots), dateStr)
	handlers.RespondJSON(w, http.StatusOK, result)
}
