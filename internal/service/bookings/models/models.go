package models

import (
	"time"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// BookingResponse ответ с данными брони
type BookingResponse struct {
	ID           int64   `json:"id"`
	TableNumber  int     `json:"table_number"`
	CustomerName string  `json:"customer_name"`
	PhoneNumber  string  `json:"phone_number"`
	BookingDate  string  `json:"booking_date"` // "2024-03-10"
	BookingTime  string  `json:"booking_time"` // "18:00"
	StartTime    string  `json:"start_time"`   // RFC3339
	EndTime      string  `json:"end_time"`
	Note         *string `json:"note,omitempty"`
	People       *int    `json:"people,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// FromDomainBooking конвертирует доменную бронь в ответ
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:           b.ID,
		TableNumber:  b.TableNumber,
		CustomerName: b.CustomerName,
		PhoneNumber:  b.PhoneNumber,
		BookingDate:  b.BookingDate.Format(domain.DateFormat),
		BookingTime:  b.BookingTime.String(),
		StartTime:    b.StartTime.UTC().Format(time.RFC3339),
		EndTime:      b.EndTime.UTC().Format(time.RFC3339),
		Note:         b.Note,
		People:       b.People,
		CreatedAt:    b.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список броней
func FromDomainBookingList(bookings []*domain.Booking) []*BookingResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return result
}
