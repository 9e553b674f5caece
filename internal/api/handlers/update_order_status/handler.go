package update_order_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	"github.com/m04kA/SMC-POSService/internal/domain"
	ordersModels "github.com/m04kA/SMC-POSService/internal/service/orders/models"
	updateOrderStatus "github.com/m04kA/SMC-POSService/internal/usecase/update_order_status"
)

const (
	msgInvalidOrderID    = "некорректный ID заказа"
	msgInvalidAction     = "неизвестное действие, ожидается prepare, approve или reject"
	msgNotFound          = "заказ не найден"
	msgInvalidTransition = "заказ уже находится в другом конечном статусе"
)

type Handler struct {
	useCase UpdateOrderStatusUseCase
	logger  Logger
}

func NewHandler(useCase UpdateOrderStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/orders/{id}/{action}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	orderID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil || orderID <= 0 {
		h.logger.Warn("PATCH /orders/{id}/{action} - Invalid order ID: %s", vars["id"])
		handlers.RespondBadRequest(w, msgInvalidOrderID)
		return
	}

	action := domain.OrderAction(vars["action"])
	if _, ok := action.TargetStatus(); !ok {
		h.logger.Warn("PATCH /orders/{id}/{action} - Unknown action: %s", vars["action"])
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &updateOrderStatus.Request{
		OrderID: orderID,
		Action:  action,
	})
	if err != nil {
		switch {
		case errors.Is(err, updateOrderStatus.ErrInvalidInput):
			h.logger.Warn("PATCH /orders/{id}/{action} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, updateOrderStatus.ErrOrderNotFound):
			h.logger.Warn("PATCH /orders/{id}/{action} - Order not found: order_id=%d", orderID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, updateOrderStatus.ErrInvalidTransition):
			h.logger.Warn("PATCH /orders/{id}/{action} - Transition rejected: order_id=%d, action=%s", orderID, action)
			handlers.RespondConflict(w, msgInvalidTransition)

		default:
			h.logger.Error("PATCH /orders/{id}/{action} - Failed to update status: order_id=%d, error=%v", orderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /orders/{id}/{action} - Order status updated: order_id=%d, status=%s", orderID, resp.Order.Status)
	handlers.RespondJSON(w, http.StatusOK, ordersModels.FromDomainOrder(resp.Order))
}
