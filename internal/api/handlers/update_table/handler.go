package update_table

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/mesaviva/MV-ReservationService/internal/api/handlers"
	"github.com/mesaviva/MV-ReservationService/internal/service/tables"
	"github.com/mesaviva/MV-ReservationService/internal/service/tables/models"
)

const (
	msgInvalidTableID     = "некорректный ID стола"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "стол не найден"
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

// Handle PATCH /api/v1/tables/{tableId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	tableID, err := strconv.ParseInt(vars["tableId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid table ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTableID)
		return
	}

	var req models.UpdateTableRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /tables/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), tableID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tables.ErrTableNotFound):
			h.logger.Warn("PATCH /tables/{id} - Table not found: table_id=%d", tableID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tables.ErrInvalidInput):
			h.logger.Warn("PATCH /tables/{id} - Invalid input: table_id=%d, error=%v", tableID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PATCH /tables/{id} - Failed to update table: table_id=%d, error=%v", tableID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /tables/{id} - Table updated successfully: table_id=%d", tableID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
