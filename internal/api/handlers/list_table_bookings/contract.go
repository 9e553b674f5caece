package list_table_bookings

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, tableNumber *int) ([]*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
