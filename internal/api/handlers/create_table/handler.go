package create_table

import (
	"errors"
	"net/http"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/tables"
	"github.com/mesaviva/MV-ReservationService/internal/service/tables/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service TableService
	logger  Logger
}

func NewHandler(service TableService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/tables
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /tables - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("POST /tables - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /tables - Failed to create table: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /tables - Table created successfully: table_id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
