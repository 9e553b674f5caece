package sales

import "errors"

var (
	// ErrInvalidInput возвращается при неизвестном типе отчёта
	ErrInvalidInput = errors.New("invalid report type")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
