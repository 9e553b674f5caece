package create_order

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	CreateItems(ctx context.Context, orderID int64, items []domain.OrderItem) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// KitchenPublisher интерфейс публикации событий на кухню
type KitchenPublisher interface {
	OrderCreated(ctx context.Context, order *domain.Order) error
}

// Cache интерфейс кеша отчётов
type Cache interface {
	Delete(ctx context.Context, keys ...string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
