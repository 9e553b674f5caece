package models

import (
	"time"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// OrderResponse ответ с заказом и его позициями
type OrderResponse struct {
	ID            int64               `json:"id"`
	CustomerName  string              `json:"customer_name"`
	PhoneNumber   *string             `json:"phone_number"`
	OrderNumber   string              `json:"order_number"`
	PaymentMethod string              `json:"payment_method"`
	TotalAmount   float64             `json:"total_amount"`
	Status        string              `json:"status"`
	OrderDate     string              `json:"order_date"` // RFC3339
	Source        string              `json:"source"`
	Note          *string             `json:"note"`
	Items         []OrderItemResponse `json:"items"`
}

// OrderItemResponse позиция заказа
type OrderItemResponse struct {
	ID       int64   `json:"id"`
	OrderID  int64   `json:"order_id"`
	ItemName string  `json:"item_name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// FromDomainOrder конвертирует доменный заказ в ответ
func FromDomainOrder(o *domain.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:            o.ID,
		CustomerName:  o.CustomerName,
		PhoneNumber:   o.PhoneNumber,
		OrderNumber:   o.OrderNumber,
		PaymentMethod: o.PaymentMethod,
		TotalAmount:   o.TotalAmount,
		Status:        string(o.Status),
		OrderDate:     o.OrderDate.UTC().Format(time.RFC3339),
		Source:        o.Source,
		Note:          o.Note,
		Items:         make([]OrderItemResponse, 0, len(o.Items)),
	}

	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:       item.ID,
			OrderID:  item.OrderID,
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return resp
}

// FromDomainOrderList конвертирует список заказов
func FromDomainOrderList(orders []*domain.Order) []*OrderResponse {
	result := make([]*OrderResponse, 0, len(orders))
	for _, o := range orders {
		result = append(result, FromDomainOrder(o))
	}
	return result
}
