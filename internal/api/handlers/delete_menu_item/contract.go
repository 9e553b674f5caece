package delete_menu_item

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/service/menu/models"
)

type MenuService interface {
	Delete(ctx context.Context, id int64) (*models.MenuItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
