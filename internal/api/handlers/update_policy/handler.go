package update_policy

import (
	"errors"
	"net/http"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/policy"
	"github.com/mesaviva/MV-ReservationService/internal/service/policy/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrInvalidDuration),
			errors.Is(err, policy.ErrInvalidSlotInterval),
			errors.Is(err, policy.ErrInvalidInput):
			h.logger.Warn("PATCH /policy - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /policy - Failed to update policy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /policy - Policy updated successfully")
	handlers.RespondJSON(w, http.StatusOK, result)
}
