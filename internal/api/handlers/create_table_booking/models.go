package create_table_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-POSService/internal/domain"
	createTableBooking "github.com/m04kA/SMC-POSService/internal/usecase/create_table_booking"
)

// CreateTableBookingRequest HTTP request model
type CreateTableBookingRequest struct {
	TableNumber  int     `json:"table_number" validate:"gt=0,lte=2147483647"`
	CustomerName string  `json:"customer_name" validate:"required,max=255"`
	PhoneNumber  string  `json:"phone_number" validate:"required,max=50"`
	StartTime    string  `json:"start_time" validate:"required"` // "2024-03-10T18:00:00Z"
	EndTime      string  `json:"end_time" validate:"required"`
	Note         *string `json:"note,omitempty" validate:"omitempty,max=500"`
	People       *int    `json:"people,omitempty" validate:"omitempty,gt=0"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	TableNumber  int     `json:"table_number"`
	CustomerName string  `json:"customer_name"`
	PhoneNumber  string  `json:"phone_number"`
	BookingDate  string  `json:"booking_date"`
	BookingTime  string  `json:"booking_time"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	Note         *string `json:"note,omitempty"`
	People       *int    `json:"people,omitempty"`
	CreatedAt    string  `json:"created_at"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateTableBookingRequest) ToUseCaseRequest() (*createTableBooking.Request, error) {
	start, err := parseBookingTime(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start_time: %w", err)
	}

	end, err := parseBookingTime(r.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end_time: %w", err)
	}

	// Пустой комментарий равен его отсутствию
	note := r.Note
	if note != nil && strings.TrimSpace(*note) == "" {
		note = nil
	}

	return &createTableBooking.Request{
		TableNumber:  r.TableNumber,
		CustomerName: r.CustomerName,
		PhoneNumber:  r.PhoneNumber,
		StartTime:    start,
		EndTime:      end,
		Note:         note,
		People:       r.People,
	}, nil
}

// parseBookingTime разбирает время брони. Время без зоны считается UTC.
func parseBookingTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range domain.BookingTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported time format %q", value)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createTableBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		TableNumber:  resp.TableNumber,
		CustomerName: resp.CustomerName,
		PhoneNumber:  resp.PhoneNumber,
		BookingDate:  resp.BookingDate.Format(domain.DateFormat),
		BookingTime:  resp.BookingTime.String(),
		StartTime:    resp.StartTime.UTC().Format(time.RFC3339),
		EndTime:      resp.EndTime.UTC().Format(time.RFC3339),
		Note:         resp.Note,
		People:       resp.People,
		CreatedAt:    resp.CreatedAt.UTC().Format(time.RFC3339),
	}
}
