package cancel_table_booking

import "github.com/m04kA/SMC-POSService/internal/service/bookings/models"

// CancelBookingResponse HTTP response model
type CancelBookingResponse struct {
	Message        string                  `json:"message"`
	DeletedBooking *models.BookingResponse `json:"deleted_booking"`
}
