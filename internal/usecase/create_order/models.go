package create_order

import (
	"time"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// Request модель запроса на создание заказа
type Request struct {
	CustomerName  string
	PhoneNumber   *string
	OrderNumber   string
	PaymentMethod string
	TotalAmount   float64
	Status        domain.OrderStatus
	OrderDate     *time.Time // Если не задана, берётся время создания
	Source        string     // По умолчанию "pos"
	Note          *string
	Items         []ItemRequest
}

// ItemRequest позиция заказа в запросе
type ItemRequest struct {
	ItemName string
	Quantity int
	Price    float64
}

// Response модель ответа с созданным заказом и его позициями
type Response struct {
	Order *domain.Order
}
