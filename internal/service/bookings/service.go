package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-POSService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-POSService/internal/service/bookings/models"
)

// Service сервис для чтения и снятия броней столов
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса броней
func NewService(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронь по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	var booking *domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		booking, err = s.bookingRepo.GetByID(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List возвращает брони, опционально только одного стола
func (s *Service) List(ctx context.Context, tableNumber *int) ([]*models.BookingResponse, error) {
	if tableNumber != nil && (*tableNumber <= 0 || *tableNumber > domain.MaxTableNumber) {
		return nil, fmt.Errorf("%w: table number must be in 1..%d", ErrInvalidInput, domain.MaxTableNumber)
	}

	var bookings []*domain.Booking
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		bookings, err = s.bookingRepo.List(txCtx, domain.BookingsFilter{TableNumber: tableNumber})
		return err
	})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// Cancel снимает бронь (удаляет запись) и возвращает удалённую бронь
func (s *Service) Cancel(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: unbooking id=%d", id)

	var deleted *domain.Booking
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		var err error
		deleted, err = s.bookingRepo.Delete(txCtx, id)
		return err
	})
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: booking id=%d removed, table=%d", id, deleted.TableNumber)
	return models.FromDomainBooking(deleted), nil
}
