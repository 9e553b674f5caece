package kitchen

import (
	"time"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// События заказа
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
)

// OrderMessage сообщение для кухни
type OrderMessage struct {
	Event        string        `json:"event"`
	OrderID      int64         `json:"order_id"`
	OrderNumber  string        `json:"order_number"`
	CustomerName string        `json:"customer_name"`
	Status       string        `json:"status"`
	TotalAmount  float64       `json:"total_amount"`
	Source       string        `json:"source"`
	Note         *string       `json:"note,omitempty"`
	Items        []MessageItem `json:"items,omitempty"`
	OccurredAt   time.Time     `json:"occurred_at"`
}

// MessageItem позиция заказа в сообщении
type MessageItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

func newOrderMessage(event string, order *domain.Order, now time.Time) OrderMessage {
	msg := OrderMessage{
		Event:        event,
		OrderID:      order.ID,
		OrderNumber:  order.OrderNumber,
		CustomerName: order.CustomerName,
		Status:       string(order.Status),
		TotalAmount:  order.TotalAmount,
		Source:       order.Source,
		Note:         order.Note,
		OccurredAt:   now,
	}
	for _, item := range order.Items {
		msg.Items = append(msg.Items, MessageItem{
			Name:     item.ItemName,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	return msg
}
