package create_table_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_table_booking: invalid input data")

	// ErrTableAlreadyBooked возвращается, когда интервал пересекается с существующей бронью стола
	ErrTableAlreadyBooked = errors.New("create_table_booking: table is already booked for the selected time")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_table_booking: internal error")
)
