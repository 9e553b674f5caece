package create_order

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-POSService/internal/domain"
)

// validateRequest валидирует шапку и позиции заказа
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.CustomerName) > domain.MaxCustomerNameLength {
		return fmt.Errorf("%w: customer name is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.OrderNumber) == "" {
		return fmt.Errorf("%w: order number is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.OrderNumber) > domain.MaxOrderNumberLength {
		return fmt.Errorf("%w: order number is too long", ErrInvalidInput)
	}

	if strings.TrimSpace(req.PaymentMethod) == "" {
		return fmt.Errorf("%w: payment method is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.PaymentMethod) > domain.MaxPaymentMethodLength {
		return fmt.Errorf("%w: payment method is too long", ErrInvalidInput)
	}

	if req.TotalAmount < 0 || req.TotalAmount > domain.MaxAmount {
		return fmt.Errorf("%w: total amount must be in 0..%.2f", ErrInvalidInput, domain.MaxAmount)
	}

	if utf8.RuneCountInString(req.Source) > domain.MaxSourceLength {
		return fmt.Errorf("%w: source is too long", ErrInvalidInput)
	}

	if !req.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	if req.PhoneNumber != nil && utf8.RuneCountInString(*req.PhoneNumber) > domain.MaxPhoneNumberLength {
		return fmt.Errorf("%w: phone number is too long", ErrInvalidInput)
	}

	if req.Note != nil && utf8.RuneCountInString(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	for i, item := range req.Items {
		if strings.TrimSpace(item.ItemName) == "" {
			return fmt.Errorf("%w: item %d: name is required", ErrInvalidInput, i)
		}
		if utf8.RuneCountInString(item.ItemName) > domain.MaxItemNameLength {
			return fmt.Errorf("%w: item %d: name is too long", ErrInvalidInput, i)
		}
		if item.Quantity <= 0 || item.Quantity > domain.MaxQuantity {
			return fmt.Errorf("%w: item %d: quantity must be in 1..%d", ErrInvalidInput, i, domain.MaxQuantity)
		}
		if item.Price < 0 || item.Price > domain.MaxAmount {
			return fmt.Errorf("%w: item %d: price must be in 0..%.2f", ErrInvalidInput, i, domain.MaxAmount)
		}
	}

	return nil
}
