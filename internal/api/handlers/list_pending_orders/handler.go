package list_pending_orders

import (
	"net/http"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
)

type Handler struct {
	service OrderService
	logger  Logger
}

func NewHandler(service OrderService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/orders/pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orders, err := h.service.ListPending(r.Context())
	if err != nil {
		h.logger.Error("GET /orders/pending - Failed to list pending orders: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /orders/pending - Pending orders retrieved successfully: count=%d", len(orders))
	handlers.RespondJSON(w, http.StatusOK, orders)
}
