package sales

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// SalesRepository интерфейс репозитория отчётов
type SalesRepository interface {
	Report(ctx context.Context, reportType domain.SalesReportType) ([]domain.SalesRow, error)
}

// TransactionManager интерфейс для read-only транзакций
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache интерфейс JSON кеша
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Version(ctx context.Context, key string) string
	SetIfVersion(ctx context.Context, key, version string, value interface{})
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
