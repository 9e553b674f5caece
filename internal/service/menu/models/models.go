package models

import "github.com/m04kA/SMC-POSService/internal/domain"

// CreateMenuItemInput данные новой позиции меню
type CreateMenuItemInput struct {
	Name     string
	Category string
	Price    float64
	Image    []byte // Может отсутствовать
}

// MenuItemResponse позиция меню без изображения
type MenuItemResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// FromDomainMenuItem конвертирует доменную позицию в ответ
func FromDomainMenuItem(item *domain.MenuItem) *MenuItemResponse {
	return &MenuItemResponse{
		ID:       item.ID,
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
	}
}

// FromDomainMenuItemList конвертирует список позиций
func FromDomainMenuItemList(items []*domain.MenuItem) []*MenuItemResponse {
	result := make([]*MenuItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, FromDomainMenuItem(item))
	}
	return result
}
