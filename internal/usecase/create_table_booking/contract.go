package create_table_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// BookingRepository интерфейс репозитория броней
type BookingRepository interface {
	LockTable(ctx context.Context, tableNumber int) error
	FindOverlapping(ctx context.Context, tableNumber int, start, end time.Time) ([]*domain.Booking, error)
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
