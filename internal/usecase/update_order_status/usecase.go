package update_order_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-POSService/internal/domain"
	orderRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/order"
)

// UseCase use case смены статуса заказа
type UseCase struct {
	orderRepo OrderRepository
	txManager TransactionManager
	kitchen   KitchenPublisher
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	txManager TransactionManager,
	kitchen KitchenPublisher,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		txManager: txManager,
		kitchen:   kitchen,
		logger:    logger,
	}
}

// Execute переводит заказ в статус действия.
// Переход разрешён только из pending, повтор того же статуса идемпотентен.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateOrderStatus: order_id=%d, action=%s", req.OrderID, req.Action)

	if req.OrderID <= 0 {
		return nil, fmt.Errorf("%w: order id must be positive", ErrInvalidInput)
	}

	target, ok := req.Action.TargetStatus()
	if !ok {
		uc.logger.Warn("UpdateOrderStatus: unknown action %q", req.Action)
		return nil, fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
	}

	var updated *domain.Order

	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 1. Условный UPDATE: строка меняется, только если переход допустим
		order, err := uc.orderRepo.UpdateStatus(txCtx, req.OrderID, target,
			[]domain.OrderStatus{domain.OrderStatusPending, target})
		if errors.Is(err, orderRepo.ErrStatusNotUpdated) {
			return uc.explainNotUpdated(txCtx, req.OrderID, target)
		}
		if err != nil {
			uc.logger.Error("UpdateOrderStatus: failed to update order id=%d: %v", req.OrderID, err)
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}

		// 2. Позиции для ответа и события кухне
		items, err := uc.orderRepo.GetItems(txCtx, []int64{order.ID})
		if err != nil {
			uc.logger.Error("UpdateOrderStatus: failed to get items for order id=%d: %v", order.ID, err)
			return fmt.Errorf("%w: failed to get order items: %v", ErrInternal, err)
		}
		order.Items = items[order.ID]
		if order.Items == nil {
			order.Items = []domain.OrderItem{}
		}

		updated = order
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrOrderNotFound), errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrInternal):
			return nil, err
		}
		uc.logger.Error("UpdateOrderStatus: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	if err := uc.kitchen.OrderStatusChanged(ctx, updated); err != nil {
		uc.logger.Warn("UpdateOrderStatus: failed to notify kitchen about order id=%d: %v", updated.ID, err)
	}

	uc.logger.Info("UpdateOrderStatus: order id=%d is %s", updated.ID, updated.Status)

	return &Response{Order: updated}, nil
}

// explainNotUpdated перечитывает заказ, чтобы отличить отсутствие заказа от недопустимого перехода
func (uc *UseCase) explainNotUpdated(ctx context.Context, id int64, target domain.OrderStatus) error {
	current, err := uc.orderRepo.GetByID(ctx, id)
	if errors.Is(err, orderRepo.ErrOrderNotFound) {
		uc.logger.Warn("UpdateOrderStatus: order id=%d not found", id)
		return ErrOrderNotFound
	}
	if err != nil {
		uc.logger.Error("UpdateOrderStatus: failed to get order id=%d: %v", id, err)
		return fmt.Errorf("%w: failed to get order: %v", ErrInternal, err)
	}

	uc.logger.Warn("UpdateOrderStatus: order id=%d cannot move from %s to %s", id, current.Status, target)
	return fmt.Errorf("%w: order is %s", ErrInvalidTransition, current.Status)
}
