package create_order

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/service/orders/models"
	createOrder "github.com/m04kA/SMC-POSService/internal/usecase/create_order"
)

// OrderNumber номер заказа. Клиенты присылают его строкой или числом.
type OrderNumber string

// UnmarshalJSON принимает "17" и 17
func (n *OrderNumber) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = OrderNumber(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("order_number must be a string or a number: %w", err)
	}
	*n = OrderNumber(num.String())
	return nil
}

// CreateOrderRequest HTTP request model
type CreateOrderRequest struct {
	CustomerName  string             `json:"customer_name" validate:"required,max=255"`
	PhoneNumber   *string            `json:"phone_number,omitempty" validate:"omitempty,max=50"`
	OrderNumber   OrderNumber        `json:"order_number" validate:"required,max=100"`
	PaymentMethod string             `json:"payment_method" validate:"required,max=50"`
	TotalAmount   *float64           `json:"total_amount" validate:"required,gte=0,lte=99999999.99"`
	Status        string             `json:"status" validate:"required,oneof=pending prepared approved rejected"`
	OrderDate     *time.Time         `json:"order_date,omitempty"`
	Source        string             `json:"source,omitempty" validate:"max=50"`
	Note          *string            `json:"note,omitempty" validate:"omitempty,max=500"`
	Items         []OrderItemRequest `json:"items" validate:"dive"`
}

// OrderItemRequest позиция заказа
type OrderItemRequest struct {
	ItemName string  `json:"item_name" validate:"required,max=255"`
	Quantity int     `json:"quantity" validate:"gt=0,lte=2147483647"`
	Price    float64 `json:"price" validate:"gte=0,lte=99999999.99"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateOrderRequest) ToUseCaseRequest() *createOrder.Request {
	var total float64
	if r.TotalAmount != nil {
		total = *r.TotalAmount
	}

	req := &createOrder.Request{
		CustomerName:  r.CustomerName,
		PhoneNumber:   r.PhoneNumber,
		OrderNumber:   string(r.OrderNumber),
		PaymentMethod: r.PaymentMethod,
		TotalAmount:   total,
		Status:        domain.OrderStatus(r.Status),
		OrderDate:     r.OrderDate,
		Source:        r.Source,
		Note:          r.Note,
		Items:         make([]createOrder.ItemRequest, 0, len(r.Items)),
	}

	for _, item := range r.Items {
		req.Items = append(req.Items, createOrder.ItemRequest{
			ItemName: item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createOrder.Response) *models.OrderResponse {
	return models.FromDomainOrder(resp.Order)
}
