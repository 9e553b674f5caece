package create_table_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.TableNumber <= 0 || req.TableNumber > domain.MaxTableNumber {
		return fmt.Errorf("%w: table number must be in 1..%d", ErrInvalidInput, domain.MaxTableNumber)
	}

	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PhoneNumber) == "" {
		return fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.PhoneNumber) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phone number is too long", ErrInvalidInput)
	}

	if req.StartTime.IsZero() || req.EndTime.IsZero() {
		return fmt.Errorf("%w: start and end time are required", ErrInvalidInput)
	}

	// Пустой или обратный интервал не бронируется
	if !req.StartTime.Before(req.EndTime) {
		return fmt.Errorf("%w: start time must be before end time", ErrInvalidInput)
	}

	if req.People != nil && (*req.People <= 0 || *req.People > domain.MaxPartySize) {
		return fmt.Errorf("%w: people must be in 1..%d", ErrInvalidInput, domain.MaxPartySize)
	}

	if req.Note != nil && utf8.RuneCountInString(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}
