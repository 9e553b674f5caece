package booking

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/ptr"
	"github.com/m04kA/SMC-POSService/pkg/types"
)

var (
	start = time.Date(2024, 3, 10, 18, 0, 0, 0, time.UTC)
	end   = time.Date(2024, 3, 10, 20, 0, 0, 0, time.UTC)
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil, "test")
	return NewRepository(db), db, mock
}

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)

	createdAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO table_booking (table_number,customer_name,phone_number,start_time,end_time,note,people,booking_date,booking_time) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9) RETURNING id, created_at")).
		WithArgs(5, "Anna", "+7900", start, end, "window", 4, sqlmock.AnyArg(), "18:00").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), createdAt))

	b := &domain.Booking{
		TableNumber:  5,
		CustomerName: "Anna",
		PhoneNumber:  "+7900",
		StartTime:    start,
		EndTime:      end,
		Note:         ptr.Ptr("window"),
		People:       ptr.Ptr(4),
	}
	b.DeriveDateTime()

	created, err := repo.Create(context.Background(), b)
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, createdAt, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExclusionViolationIsOverlap(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO table_booking").
		WillReturnError(&pq.Error{Code: "23P01", Constraint: "table_booking_no_overlap"})

	b := &domain.Booking{TableNumber: 5, CustomerName: "Anna", PhoneNumber: "+7900", StartTime: start, EndTime: end}
	b.DeriveDateTime()

	_, err := repo.Create(context.Background(), b)
	assert.ErrorIs(t, err, ErrBookingOverlap)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_CheckViolation(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("INSERT INTO table_booking").
		WillReturnError(&pq.Error{Code: "23514", Constraint: "table_booking_time_range_check"})

	_, err := repo.Create(context.Background(), &domain.Booking{TableNumber: 5, StartTime: end, EndTime: start})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestRepository_LockTable(t *testing.T) {
	repo, db, mock := newRepo(t)

	err := repo.LockTable(context.Background(), 5)
	assert.ErrorIs(t, err, ErrTransaction)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock($1, $2)")).
		WithArgs(LockNamespace, 5).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	require.NoError(t, repo.LockTable(ctx, 5))
	require.NoError(t, tx.Rollback())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_FindOverlapping_InTransactionLocksRows(t *testing.T) {
	repo, db, mock := newRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM table_booking WHERE table_number = $1 AND start_time < $2 AND end_time > $3 ORDER BY start_time ASC FOR UPDATE")).
		WithArgs(5, end, start).
		WillReturnRows(bookingRows().AddRow(
			int64(3), 5, "Boris", "+7911",
			start.Add(time.Hour), end.Add(time.Hour),
			nil, nil,
			time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "19:00:00",
			start,
		))
	mock.ExpectCommit()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	found, err := repo.FindOverlapping(ctx, 5, start, end)
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, int64(3), found[0].ID)
	assert.Nil(t, found[0].Note)
	assert.Nil(t, found[0].People)
	assert.Equal(t, types.TimeString("19:00"), found[0].BookingTime)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_List_FilterByTable(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM table_booking WHERE table_number = $1 ORDER BY table_number ASC, start_time ASC")).
		WithArgs(2).
		WillReturnRows(bookingRows().AddRow(
			int64(1), 2, "Anna", "+7900", start, end, "birthday", int64(6),
			time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "18:00:00", start,
		))

	list, err := repo.List(context.Background(), domain.BookingsFilter{TableNumber: ptr.Ptr(2)})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "birthday", *list[0].Note)
	assert.Equal(t, 6, *list[0].People)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("DELETE FROM table_booking WHERE id = $1 RETURNING id, table_number")).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Delete(context.Background(), 9)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	mock.ExpectQuery("DELETE FROM table_booking").
		WithArgs(int64(1)).
		WillReturnRows(bookingRows().AddRow(
			int64(1), 2, "Anna", "+7900", start, end, nil, nil,
			time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), "18:00:00", start,
		))

	deleted, err := repo.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Anna", deleted.CustomerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_StorageError(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM table_booking WHERE id = \\$1").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.GetByID(context.Background(), 1)
	assert.ErrorIs(t, err, ErrScanRow)
}
