package order

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/ptr"
)

var orderDate = time.Date(2024, 1, 5, 12, 30, 0, 0, time.UTC)

func newRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return NewRepository(dbmetrics.Wrap(sqlDB, nil, "test")), mock
}

func orderRow(rows *sqlmock.Rows, id int64, status string) *sqlmock.Rows {
	return rows.AddRow(id, "Anna", nil, "A-17", "cash", "25.50", status, orderDate, "pos", nil)
}

func TestRepository_Create_DefaultOrderDate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO orders (customer_name,phone_number,order_number,payment_method,total_amount,status,source,note) VALUES ($1,$2,$3,$4,$5,$6,$7,$8) RETURNING id, order_date")).
		WithArgs("Anna", "+7900", "A-17", "cash", 25.5, "pending", "pos", nil).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_date"}).AddRow(int64(7), orderDate))

	order, err := repo.Create(context.Background(), &domain.Order{
		CustomerName:  "Anna",
		PhoneNumber:   ptr.Ptr("+7900"),
		OrderNumber:   "A-17",
		PaymentMethod: "cash",
		TotalAmount:   25.5,
		Status:        domain.OrderStatusPending,
		Source:        "pos",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), order.ID)
	assert.Equal(t, orderDate, order.OrderDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExplicitOrderDate(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("status,source,note,order_date) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)")).
		WithArgs("Anna", nil, "A-17", "card", 10.0, "pending", "web", nil, orderDate).
		WillReturnRows(sqlmock.NewRows([]string{"id", "order_date"}).AddRow(int64(8), orderDate))

	_, err := repo.Create(context.Background(), &domain.Order{
		CustomerName:  "Anna",
		OrderNumber:   "A-17",
		PaymentMethod: "card",
		TotalAmount:   10,
		Status:        domain.OrderStatusPending,
		Source:        "web",
		OrderDate:     orderDate,
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateItems_SingleMultiRowInsert(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO order_items (order_id,item_name,quantity,price) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)")).
		WithArgs(int64(7), "Pizza", 2, 10.0, int64(7), "Tea", 1, 5.5).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err := repo.CreateItems(context.Background(), 7, []domain.OrderItem{
		{ItemName: "Pizza", Quantity: 2, Price: 10},
		{ItemName: "Tea", Quantity: 1, Price: 5.5},
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_CreateItems_Empty(t *testing.T) {
	repo, _ := newRepo(t)

	err := repo.CreateItems(context.Background(), 7, nil)
	assert.ErrorIs(t, err, ErrNoItems)
}

func TestRepository_ListByStatus(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM orders WHERE status = $1 ORDER BY order_date ASC, id ASC")).
		WithArgs("pending").
		WillReturnRows(orderRow(orderRow(sqlmock.NewRows(orderColumns), 1, "pending"), 2, "pending"))

	orders, err := repo.ListByStatus(context.Background(), domain.OrderStatusPending)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, 25.5, orders[0].TotalAmount)
	assert.Equal(t, domain.OrderStatusPending, orders[1].Status)
	assert.Nil(t, orders[0].PhoneNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetItems_GroupsByOrder(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM order_items WHERE order_id IN ($1,$2) ORDER BY order_id ASC, id ASC")).
		WithArgs(int64(1), int64(2)).
		WillReturnRows(sqlmock.NewRows(itemColumns).
			AddRow(int64(10), int64(1), "Pizza", 2, "10.00").
			AddRow(int64(11), int64(1), "Tea", 1, "5.50").
			AddRow(int64(12), int64(2), "Soup", 1, "7.00"))

	items, err := repo.GetItems(context.Background(), []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, items[1], 2)
	assert.Len(t, items[2], 1)
	assert.Equal(t, 5.5, items[1][1].Price)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetItems_NoIDs(t *testing.T) {
	repo, mock := newRepo(t)

	items, err := repo.GetItems(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("UPDATE orders SET status = $1 WHERE id = $2 AND status IN ($3,$4) RETURNING id, customer_name")).
		WithArgs("approved", int64(1), "pending", "approved").
		WillReturnRows(orderRow(sqlmock.NewRows(orderColumns), 1, "approved"))

	order, err := repo.UpdateStatus(context.Background(), 1, domain.OrderStatusApproved,
		[]domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusApproved})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusApproved, order.Status)

	mock.ExpectQuery("UPDATE orders").WillReturnError(sql.ErrNoRows)

	_, err = repo.UpdateStatus(context.Background(), 1, domain.OrderStatusRejected,
		[]domain.OrderStatus{domain.OrderStatusPending, domain.OrderStatusRejected})
	assert.ErrorIs(t, err, ErrStatusNotUpdated)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM orders WHERE id = $1")).
		WithArgs(int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), 2), ErrOrderNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
