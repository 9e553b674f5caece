package create_table_booking

import (
	"time"

	"github.com/m04kA/SMC-POSService/pkg/types"
)

// Request модель запроса на бронирование стола
type Request struct {
	TableNumber  int       // Номер стола
	CustomerName string    // Имя гостя
	PhoneNumber  string    // Телефон гостя
	StartTime    time.Time // Начало (включительно)
	EndTime      time.Time // Конец (не включительно)
	Note         *string   // Комментарий (опционально)
	People       *int      // Количество гостей (опционально)
}

// Response модель ответа с созданной бронью
type Response struct {
	ID           int64
	TableNumber  int
	CustomerName string
	PhoneNumber  string
	StartTime    time.Time
	EndTime      time.Time
	Note         *string
	People       *int
	BookingDate  time.Time
	BookingTime  types.TimeString
	CreatedAt    time.Time
}
