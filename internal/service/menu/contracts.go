package menu

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// MenuRepository интерфейс репозитория меню
type MenuRepository interface {
	List(ctx context.Context) ([]*domain.MenuItem, error)
	Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	GetImage(ctx context.Context, id int64) ([]byte, error)
	Delete(ctx context.Context, id int64) (*domain.MenuItem, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Cache интерфейс JSON кеша
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Version(ctx context.Context, key string) string
	SetIfVersion(ctx context.Context, key, version string, value interface{})
	Delete(ctx context.Context, keys ...string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
