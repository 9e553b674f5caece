package update_order_status

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// OrderRepository интерфейс репозитория заказов
type OrderRepository interface {
	UpdateStatus(ctx context.Context, id int64, target domain.OrderStatus, from []domain.OrderStatus) (*domain.Order, error)
	GetByID(ctx context.Context, id int64) (*domain.Order, error)
	GetItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// KitchenPublisher интерфейс публикации событий на кухню
type KitchenPublisher interface {
	OrderStatusChanged(ctx context.Context, order *domain.Order) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
