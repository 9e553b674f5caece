package kitchen

import "errors"

var (
	// ErrConnect не удалось подключиться к брокеру
	ErrConnect = errors.New("kitchen: failed to connect to broker")

	// ErrPublish не удалось опубликовать событие
	ErrPublish = errors.New("kitchen: failed to publish event")
)
