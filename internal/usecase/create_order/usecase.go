package create_order

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/infra/cache"
)

// UseCase use case создания заказа вместе с позициями
type UseCase struct {
	orderRepo OrderRepository
	txManager TransactionManager
	kitchen   KitchenPublisher
	cache     Cache
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	orderRepo OrderRepository,
	txManager TransactionManager,
	kitchen KitchenPublisher,
	cache Cache,
	logger Logger,
) *UseCase {
	return &UseCase{
		orderRepo: orderRepo,
		txManager: txManager,
		kitchen:   kitchen,
		cache:     cache,
		logger:    logger,
	}
}

// Execute создаёт шапку заказа и все позиции в одной транзакции.
// Либо сохраняется заказ целиком, либо ничего.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateOrder: order_number=%s, items=%d", req.OrderNumber, len(req.Items))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateOrder: validation failed: %v", err)
		return nil, err
	}

	order := buildOrder(req)
	var result *domain.Order

	// 2. Шапка и позиции в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		created, err := uc.orderRepo.Create(txCtx, order)
		if err != nil {
			uc.logger.Error("CreateOrder: failed to create order header: %v", err)
			return fmt.Errorf("%w: failed to create order: %v", ErrInternal, err)
		}

		result = created

		if len(order.Items) == 0 {
			return nil
		}

		if err := uc.orderRepo.CreateItems(txCtx, created.ID, order.Items); err != nil {
			uc.logger.Error("CreateOrder: failed to create items for order id=%d: %v", created.ID, err)
			return fmt.Errorf("%w: failed to create order items: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("CreateOrder: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	result.Items = order.Items
	for i := range result.Items {
		result.Items[i].OrderID = result.ID
	}

	// 3. Заказ сохранён, отчёты по продажам устарели
	uc.cache.Delete(ctx, cache.SalesReportKeys()...)

	// 4. Уведомляем кухню. Ошибка публикации не отменяет заказ
	if err := uc.kitchen.OrderCreated(ctx, result); err != nil {
		uc.logger.Warn("CreateOrder: failed to notify kitchen about order id=%d: %v", result.ID, err)
	}

	uc.logger.Info("CreateOrder: successfully created order id=%d with %d items", result.ID, len(result.Items))

	return &Response{Order: result}, nil
}

func buildOrder(req *Request) *domain.Order {
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = domain.DefaultOrderSource
	}

	order := &domain.Order{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		PhoneNumber:   req.PhoneNumber,
		OrderNumber:   strings.TrimSpace(req.OrderNumber),
		PaymentMethod: strings.TrimSpace(req.PaymentMethod),
		TotalAmount:   req.TotalAmount,
		Status:        req.Status,
		Source:        source,
		Note:          req.Note,
		Items:         make([]domain.OrderItem, 0, len(req.Items)),
	}
	if req.OrderDate != nil {
		order.OrderDate = req.OrderDate.UTC()
	}

	for _, item := range req.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ItemName: strings.TrimSpace(item.ItemName),
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return order
}
