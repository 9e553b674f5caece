package create_menu_item

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/service/menu/models"
)

type MenuService interface {
	Create(ctx context.Context, input *models.CreateMenuItemInput) (*models.MenuItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
