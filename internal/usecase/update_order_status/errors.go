package update_order_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном id или действии
	ErrInvalidInput = errors.New("update_order_status: invalid input data")

	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("update_order_status: order not found")

	// ErrInvalidTransition возвращается, когда заказ уже в другом конечном статусе
	ErrInvalidTransition = errors.New("update_order_status: transition is not allowed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_order_status: internal error")
)
