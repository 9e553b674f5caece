package create_table_booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-POSService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-POSService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-POSService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockBookingRepository struct {
	mock.Mock
}

func newMockBookingRepository(t *testing.T) *mockBookingRepository {
	m := &mockBookingRepository{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockBookingRepository) LockTable(ctx context.Context, tableNumber int) error {
	args := m.Called(ctx, tableNumber)
	return args.Error(0)
}

func (m *mockBookingRepository) FindOverlapping(ctx context.Context, tableNumber int, start, end time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, tableNumber, start, end)
	if v := args.Get(0); v != nil {
		return v.([]*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	args := m.Called(ctx, booking)
	if fn, ok := args.Get(0).(func(context.Context, *domain.Booking) *domain.Booking); ok {
		return fn(ctx, booking), args.Error(1)
	}
	if v := args.Get(0); v != nil {
		return v.(*domain.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

// inlineTx выполняет функцию без транзакции
type inlineTx struct {
	calls int
}

func (tx *inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

var (
	start = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	end   = time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
)

func validRequest() *Request {
	return &Request{
		TableNumber:  5,
		CustomerName: "Anna",
		PhoneNumber:  "+79001234567",
		StartTime:    start,
		EndTime:      end,
		People:       ptr.Ptr(4),
	}
}

func TestExecute_Success(t *testing.T) {
	repo := newMockBookingRepository(t)
	tx := &inlineTx{}
	uc := NewUseCase(repo, tx, nopLogger{})

	repo.On("LockTable", mock.Anything, 5).Return(nil)
	repo.On("FindOverlapping", mock.Anything, 5, start, end).Return([]*domain.Booking{}, nil)
	repo.On("Create", mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.TableNumber == 5 &&
			b.BookingTime == "18:00" &&
			b.BookingDate.Equal(time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	})).Return(func(_ context.Context, b *domain.Booking) *domain.Booking {
		b.ID = 42
		return b
	}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "18:00", resp.BookingTime.String())
	assert.Equal(t, 4, *resp.People)
	assert.Equal(t, 1, tx.calls)
}

func TestExecute_OverlapRejected(t *testing.T) {
	repo := newMockBookingRepository(t)
	uc := NewUseCase(repo, &inlineTx{}, nopLogger{})

	repo.On("LockTable", mock.Anything, 5).Return(nil)
	repo.On("FindOverlapping", mock.Anything, 5, start, end).Return([]*domain.Booking{
		{ID: 3, TableNumber: 5, StartTime: start.Add(time.Hour), EndTime: end.Add(time.Hour)},
	}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTableAlreadyBooked)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestExecute_ConstraintViolationIsConflict(t *testing.T) {
	repo := newMockBookingRepository(t)
	uc := NewUseCase(repo, &inlineTx{}, nopLogger{})

	repo.On("LockTable", mock.Anything, 5).Return(nil)
	repo.On("FindOverlapping", mock.Anything, 5, start, end).Return([]*domain.Booking{}, nil)
	repo.On("Create", mock.Anything, mock.Anything).
		Return(nil, errors.Join(bookingRepo.ErrBookingOverlap, errors.New("23P01")))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrTableAlreadyBooked)
}

func TestExecute_StorageErrorIsInternal(t *testing.T) {
	repo := newMockBookingRepository(t)
	uc := NewUseCase(repo, &inlineTx{}, nopLogger{})

	repo.On("LockTable", mock.Anything, 5).Return(errors.New("connection refused"))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_TransactionErrorIsInternal(t *testing.T) {
	repo := newMockBookingRepository(t)
	uc := NewUseCase(repo, failingTx{err: errors.New("begin failed")}, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}

type failingTx struct {
	err error
}

func (tx failingTx) Do(context.Context, func(ctx context.Context) error) error {
	return tx.err
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"zero table", func(r *Request) { r.TableNumber = 0 }},
		{"negative table", func(r *Request) { r.TableNumber = -1 }},
		{"table above integer column", func(r *Request) { r.TableNumber = domain.MaxTableNumber + 1 }},
		{"empty name", func(r *Request) { r.CustomerName = "  " }},
		{"empty phone", func(r *Request) { r.PhoneNumber = "" }},
		{"zero start", func(r *Request) { r.StartTime = time.Time{} }},
		{"empty interval", func(r *Request) { r.EndTime = r.StartTime }},
		{"reversed interval", func(r *Request) { r.StartTime, r.EndTime = r.EndTime, r.StartTime }},
		{"zero people", func(r *Request) { r.People = ptr.Ptr(0) }},
		{"too many people", func(r *Request) { r.People = ptr.Ptr(domain.MaxPartySize + 1) }},
		{"long note", func(r *Request) { r.Note = ptr.Ptr(strings.Repeat("я", domain.MaxNoteLength+1)) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockBookingRepository(t)
			tx := &inlineTx{}
			uc := NewUseCase(repo, tx, nopLogger{})

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, tx.calls)
		})
	}
}

func TestExecute_NoteAtLimitAccepted(t *testing.T) {
	repo := newMockBookingRepository(t)
	uc := NewUseCase(repo, &inlineTx{}, nopLogger{})

	repo.On("LockTable", mock.Anything, 5).Return(nil)
	repo.On("FindOverlapping", mock.Anything, 5, start, end).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(&domain.Booking{ID: 1, TableNumber: 5}, nil)

	req := validRequest()
	req.Note = ptr.Ptr(strings.Repeat("я", domain.MaxNoteLength))

	_, err := uc.Execute(context.Background(), req)
	assert.NoError(t, err)
}
