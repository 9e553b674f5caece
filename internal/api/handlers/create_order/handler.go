package create_order

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	createOrder "github.com/m04kA/SMC-POSService/internal/usecase/create_order"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidOrder       = "некорректные данные заказа"
)

type Handler struct {
	useCase CreateOrderUseCase
	logger  Logger
}

func NewHandler(useCase CreateOrderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/orders
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /orders - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.Validate(&req); err != nil {
		h.logger.Warn("POST /orders - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrder)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createOrder.ErrInvalidInput):
			h.logger.Warn("POST /orders - Invalid order: order_number=%s, error=%v", req.OrderNumber, err)
			handlers.RespondBadRequest(w, msgInvalidOrder)

		default:
			h.logger.Error("POST /orders - Failed to create order: order_number=%s, error=%v", req.OrderNumber, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /orders - Order created successfully: order_id=%d, items=%d",
		result.Order.ID, len(result.Order.Items))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
