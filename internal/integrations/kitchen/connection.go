package kitchen

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection соединение и канал RabbitMQ с объявленным exchange
type Connection struct {
	conn    *amqp.Connection
	Channel *amqp.Channel
}

// Connect подключается к брокеру и объявляет durable topic exchange
func Connect(url, exchange string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("%w: declare exchange %s: %v", ErrConnect, exchange, err)
	}

	return &Connection{conn: conn, Channel: ch}, nil
}

// Close закрывает канал и соединение
func (c *Connection) Close() error {
	if err := c.Channel.Close(); err != nil {
		_ = c.conn.Close()
		return err
	}
	return c.conn.Close()
}
