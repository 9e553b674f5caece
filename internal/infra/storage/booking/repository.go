package booking

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/pgerrors"
	"github.com/m04kA/SMC-POSService/pkg/psqlbuilder"
)

const tableName = "table_booking"

// LockNamespace первый ключ pg_advisory_xact_lock для блокировок по номеру стола
const LockNamespace int32 = 7462

var columns = []string{
	"id",
	"table_number",
	"customer_name",
	"phone_number",
	"start_time",
	"end_time",
	"note",
	"people",
	"booking_date",
	"booking_time",
	"created_at",
}

// Repository репозиторий броней столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория броней
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// LockTable берёт транзакционную advisory блокировку на номер стола.
// Блокировка снимается при commit/rollback, поэтому вызов вне транзакции запрещён.
func (r *Repository) LockTable(ctx context.Context, tableNumber int) error {
	if !dbmetrics.IsInTransaction(ctx) {
		return fmt.Errorf("%w: LockTable", ErrTransaction)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("pg_advisory_xact_lock(?, ?)", LockNamespace, tableNumber)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: LockTable - build query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: LockTable - table=%d: %v", ErrExecQuery, tableNumber, err)
	}

	return nil
}

// FindOverlapping возвращает брони стола, пересекающиеся с [start, end).
// Пересечение: NOT (end_time <= start OR start_time >= end), смежные интервалы допустимы.
func (r *Repository) FindOverlapping(ctx context.Context, tableNumber int, start, end time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"table_number": tableNumber}).
		Where(squirrel.Lt{"start_time": end}).
		Where(squirrel.Gt{"end_time": start}).
		OrderBy("start_time ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOverlapping - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Create сохраняет бронь. Ограничение исключения в БД является последней
// проверкой непересечения: его нарушение возвращается как ErrBookingOverlap.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns(
			"table_number",
			"customer_name",
			"phone_number",
			"start_time",
			"end_time",
			"note",
			"people",
			"booking_date",
			"booking_time",
		).
		Values(
			booking.TableNumber,
			booking.CustomerName,
			booking.PhoneNumber,
			booking.StartTime,
			booking.EndTime,
			booking.Note,
			booking.People,
			booking.BookingDate,
			booking.BookingTime,
		).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.ID, &createdAt)
	if err != nil {
		switch {
		case pgerrors.IsExclusionViolation(err):
			return nil, fmt.Errorf("%w: Create - table=%d", ErrBookingOverlap, booking.TableNumber)
		case pgerrors.IsCheckViolation(err):
			return nil, fmt.Errorf("%w: Create - %s", ErrInvalidTimeRange, pgerrors.Constraint(err))
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time

	return booking, nil
}

// GetByID получает бронь по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(tableName).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// List возвращает брони, отсортированные по номеру стола и времени начала
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(tableName).
		OrderBy("table_number ASC", "start_time ASC")

	if filter.TableNumber != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"table_number": *filter.TableNumber})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// Delete удаляет бронь и возвращает удалённую запись
func (r *Repository) Delete(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(tableName).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(columns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Delete - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking     domain.Booking
		bookingDate sql.NullTime
		createdAt   sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.TableNumber,
		&booking.CustomerName,
		&booking.PhoneNumber,
		&booking.StartTime,
		&booking.EndTime,
		&booking.Note,
		&booking.People,
		&bookingDate,
		&booking.BookingTime,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = bookingDate.Time
	booking.CreatedAt = createdAt.Time

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows iteration: %v", ErrScanRow, err)
	}

	return bookings, nil
}
