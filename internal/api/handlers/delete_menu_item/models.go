package delete_menu_item

import "github.com/m04kA/SMC-POSService/internal/service/menu/models"

// DeleteMenuItemResponse ответ на удаление позиции меню
type DeleteMenuItemResponse struct {
	Message     string                   `json:"message"`
	DeletedItem *models.MenuItemResponse `json:"deleted_item"`
}
