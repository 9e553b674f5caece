package list_table_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/service/bookings"
)

const msgInvalidTableNumber = "некорректный номер стола"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/table-booking?table={tableNumber}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var tableNumber *int

	if tableStr := r.URL.Query().Get("table"); tableStr != "" {
		table, err := strconv.Atoi(tableStr)
		if err != nil || table <= 0 || table > domain.MaxTableNumber {
			h.logger.Warn("GET /table-booking - Invalid table number: %q", tableStr)
			handlers.RespondBadRequest(w, msgInvalidTableNumber)
			return
		}
		tableNumber = &table
	}

	result, err := h.service.List(r.Context(), tableNumber)
	if err != nil {
		if errors.Is(err, bookings.ErrInvalidInput) {
			handlers.RespondBadRequest(w, msgInvalidTableNumber)
			return
		}
		h.logger.Error("GET /table-booking - Failed to list bookings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /table-booking - Bookings retrieved successfully: count=%d", len(result))
	handlers.RespondJSON(w, http.StatusOK, result)
}
