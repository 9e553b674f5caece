package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/infra/cache"
	orderRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/order"
	"github.com/m04kA/SMC-POSService/internal/service/orders/models"
)

// Service сервис чтения и удаления заказов
type Service struct {
	orderRepo OrderRepository
	txManager TransactionManager
	cache     Cache
	logger    Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(orderRepo OrderRepository, txManager TransactionManager, cache Cache, logger Logger) *Service {
	return &Service{
		orderRepo: orderRepo,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// Get возвращает заказ с позициями
func (s *Service) Get(ctx context.Context, id int64) (*models.OrderResponse, error) {
	var order *domain.Order

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		found, err := s.orderRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		items, err := s.orderRepo.GetItems(txCtx, []int64{found.ID})
		if err != nil {
			return err
		}
		found.Items = items[found.ID]

		order = found
		return nil
	})
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Get: order id=%d not found", id)
			return nil, ErrOrderNotFound
		}
		s.logger.Error("Get: repository error for order id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOrder(order), nil
}

// List возвращает все заказы с позициями, новые первыми
func (s *Service) List(ctx context.Context) ([]*models.OrderResponse, error) {
	orders, err := s.listWithItems(ctx, s.orderRepo.List)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d orders", len(orders))
	return models.FromDomainOrderList(orders), nil
}

// ListPending возвращает заказы в статусе pending по порядку поступления.
// Шапки и позиции читаются из одного снимка данных.
func (s *Service) ListPending(ctx context.Context) ([]*models.OrderResponse, error) {
	orders, err := s.listWithItems(ctx, func(ctx context.Context) ([]*domain.Order, error) {
		return s.orderRepo.ListByStatus(ctx, domain.OrderStatusPending)
	})
	if err != nil {
		s.logger.Error("ListPending: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListPending - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListPending: fetched %d pending orders", len(orders))
	return models.FromDomainOrderList(orders), nil
}

// Delete удаляет заказ вместе с позициями
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting order id=%d", id)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.orderRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, orderRepo.ErrOrderNotFound) {
			s.logger.Warn("Delete: order id=%d not found", id)
			return ErrOrderNotFound
		}
		s.logger.Error("Delete: repository error for order id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.cache.Delete(ctx, cache.SalesReportKeys()...)

	s.logger.Info("Delete: order id=%d deleted", id)
	return nil
}

// listWithItems читает шапки и позиции одним снимком: позиции всех заказов одним запросом
func (s *Service) listWithItems(ctx context.Context, listHeaders func(ctx context.Context) ([]*domain.Order, error)) ([]*domain.Order, error) {
	var orders []*domain.Order

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		headers, err := listHeaders(txCtx)
		if err != nil {
			return err
		}

		ids := make([]int64, 0, len(headers))
		for _, o := range headers {
			ids = append(ids, o.ID)
		}

		items, err := s.orderRepo.GetItems(txCtx, ids)
		if err != nil {
			return err
		}
		for _, o := range headers {
			o.Items = items[o.ID]
		}

		orders = headers
		return nil
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
