package create_table_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-POSService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/booking"
)

// UseCase use case бронирования стола с проверкой пересечений
type UseCase struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute проверяет отсутствие пересечений и создаёт бронь.
// Проверка и вставка выполняются в одной транзакции под advisory блокировкой стола,
// ограничение исключения в БД страхует от пересечений при любом порядке записей.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateTableBooking: table=%d, start=%s, end=%s",
		req.TableNumber, req.StartTime.UTC().Format("2006-01-02T15:04"), req.EndTime.UTC().Format("2006-01-02T15:04"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateTableBooking: validation failed: %v", err)
		return nil, err
	}

	booking := &domain.Booking{
		TableNumber:  req.TableNumber,
		CustomerName: strings.TrimSpace(req.CustomerName),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		StartTime:    req.StartTime.UTC(),
		EndTime:      req.EndTime.UTC(),
		Note:         req.Note,
		People:       req.People,
	}
	booking.DeriveDateTime()

	var result *domain.Booking

	// 2. Проверка и вставка в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Сериализуем запись броней одного стола
		if err := uc.bookingRepo.LockTable(txCtx, req.TableNumber); err != nil {
			uc.logger.Error("CreateTableBooking: failed to lock table %d: %v", req.TableNumber, err)
			return fmt.Errorf("%w: failed to lock table: %v", ErrInternal, err)
		}

		// 2.2. Ищем пересечения [start, end)
		overlapping, err := uc.bookingRepo.FindOverlapping(txCtx, booking.TableNumber, booking.StartTime, booking.EndTime)
		if err != nil {
			uc.logger.Error("CreateTableBooking: failed to find overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to find overlapping bookings: %v", ErrInternal, err)
		}
		if len(overlapping) > 0 {
			uc.logger.Warn("CreateTableBooking: table %d already booked (booking id=%d)",
				req.TableNumber, overlapping[0].ID)
			return ErrTableAlreadyBooked
		}

		// 2.3. Сохраняем бронь
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			switch {
			case errors.Is(err, bookingRepo.ErrBookingOverlap):
				uc.logger.Warn("CreateTableBooking: table %d already booked (constraint)", req.TableNumber)
				return ErrTableAlreadyBooked
			case errors.Is(err, bookingRepo.ErrInvalidTimeRange):
				return fmt.Errorf("%w: %v", ErrInvalidInput, err)
			}
			uc.logger.Error("CreateTableBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrTableAlreadyBooked), errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInternal):
			return nil, err
		}
		uc.logger.Error("CreateTableBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: transaction failed: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateTableBooking: successfully created booking id=%d for table %d", result.ID, result.TableNumber)

	return &Response{
		ID:           result.ID,
		TableNumber:  result.TableNumber,
		CustomerName: result.CustomerName,
		PhoneNumber:  result.PhoneNumber,
		StartTime:    result.StartTime,
		EndTime:      result.EndTime,
		Note:         result.Note,
		People:       result.People,
		BookingDate:  result.BookingDate,
		BookingTime:  result.BookingTime,
		CreatedAt:    result.CreatedAt,
	}, nil
}
