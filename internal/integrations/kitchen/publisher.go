// Package kitchen публикует события заказов в topic exchange RabbitMQ.
// Ключи маршрутизации: kitchen.order.created и kitchen.order.<status>.
package kitchen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

const (
	routingKeyPrefix = "kitchen.order."
	publishTimeout   = 5 * time.Second
)

// Channel часть *amqp.Channel, нужная для публикации
type Channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикатор событий заказов
type Publisher struct {
	ch       Channel
	exchange string
	logger   Logger
	now      func() time.Time
}

// NewPublisher создает публикатор поверх открытого канала
func NewPublisher(ch Channel, exchange string, logger Logger) *Publisher {
	return &Publisher{
		ch:       ch,
		exchange: exchange,
		logger:   logger,
		now:      time.Now,
	}
}

// OrderCreated публикует событие создания заказа вместе с позициями
func (p *Publisher) OrderCreated(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, routingKeyPrefix+"created", newOrderMessage(EventOrderCreated, order, p.now()))
}

// OrderStatusChanged публикует смену статуса заказа
func (p *Publisher) OrderStatusChanged(ctx context.Context, order *domain.Order) error {
	return p.publish(ctx, routingKeyPrefix+string(order.Status), newOrderMessage(EventOrderStatusChanged, order, p.now()))
}

func (p *Publisher) publish(ctx context.Context, routingKey string, msg OrderMessage) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: encode message: %v", ErrPublish, err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.ch.PublishWithContext(ctx,
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    msg.OccurredAt,
		})
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPublish, routingKey, err)
	}

	p.logger.Info("Kitchen: published %s for order id=%d", routingKey, msg.OrderID)
	return nil
}

// NopPublisher используется, когда RabbitMQ выключен
type NopPublisher struct{}

// OrderCreated ничего не делает
func (NopPublisher) OrderCreated(context.Context, *domain.Order) error { return nil }

// OrderStatusChanged ничего не делает
func (NopPublisher) OrderStatusChanged(context.Context, *domain.Order) error { return nil }
