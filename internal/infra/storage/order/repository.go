package order

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/psqlbuilder"
)

const (
	ordersTable = "orders"
	itemsTable  = "order_items"
)

var orderColumns = []string{
	"id",
	"customer_name",
	"phone_number",
	"order_number",
	"payment_method",
	"total_amount",
	"status",
	"order_date",
	"source",
	"note",
}

var itemColumns = []string{
	"id",
	"order_id",
	"item_name",
	"quantity",
	"price",
}

// Repository репозиторий заказов и их позиций
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет шапку заказа. Если OrderDate не задана, берётся DEFAULT NOW().
// Позиции вставляются отдельно через CreateItems в той же транзакции.
func (r *Repository) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertColumns := []string{
		"customer_name",
		"phone_number",
		"order_number",
		"payment_method",
		"total_amount",
		"status",
		"source",
		"note",
	}
	values := []interface{}{
		order.CustomerName,
		order.PhoneNumber,
		order.OrderNumber,
		order.PaymentMethod,
		order.TotalAmount,
		order.Status,
		order.Source,
		order.Note,
	}
	if !order.OrderDate.IsZero() {
		insertColumns = append(insertColumns, "order_date")
		values = append(values, order.OrderDate)
	}

	query, args, err := psqlbuilder.Insert(ordersTable).
		Columns(insertColumns...).
		Values(values...).
		Suffix("RETURNING id, order_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var orderDate sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&order.ID, &orderDate); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}
	order.OrderDate = orderDate.Time

	return order, nil
}

// CreateItems вставляет все позиции заказа одним многострочным INSERT
func (r *Repository) CreateItems(ctx context.Context, orderID int64, items []domain.OrderItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert(itemsTable).
		Columns("order_id", "item_name", "quantity", "price")
	for _, item := range items {
		insertBuilder = insertBuilder.Values(orderID, item.ItemName, item.Quantity, item.Price)
	}

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateItems - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: CreateItems - order=%d: %v", ErrExecQuery, orderID, err)
	}

	return nil
}

// GetByID получает шапку заказа по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(orderColumns...).
		From(ordersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// List возвращает все заказы, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Order, error) {
	return r.list(ctx, "List", nil, "id DESC")
}

// ListByStatus возвращает заказы в статусе status по порядку поступления
func (r *Repository) ListByStatus(ctx context.Context, status domain.OrderStatus) ([]*domain.Order, error) {
	return r.list(ctx, "ListByStatus", squirrel.Eq{"status": status}, "order_date ASC", "id ASC")
}

func (r *Repository) list(ctx context.Context, op string, where squirrel.Sqlizer, orderBy ...string) ([]*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(orderColumns...).
		From(ordersTable).
		OrderBy(orderBy...)
	if where != nil {
		selectBuilder = selectBuilder.Where(where)
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	orders := make([]*domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows iteration: %v", ErrScanRow, op, err)
	}

	return orders, nil
}

// GetItems получает позиции заказов одним запросом, сгруппированные по order_id
func (r *Repository) GetItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	result := make(map[int64][]domain.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(itemColumns...).
		From(itemsTable).
		Where(squirrel.Eq{"order_id": orderIDs}).
		OrderBy("order_id ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetItems - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetItems - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemName, &item.Quantity, &item.Price); err != nil {
			return nil, fmt.Errorf("%w: GetItems - scan row: %v", ErrScanRow, err)
		}
		result[item.OrderID] = append(result[item.OrderID], item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetItems - rows iteration: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus переводит заказ в target, только если текущий статус входит в from.
// Если строка не обновилась, возвращает ErrStatusNotUpdated.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, target domain.OrderStatus, from []domain.OrderStatus) (*domain.Order, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	allowed := make([]string, len(from))
	for i, s := range from {
		allowed[i] = string(s)
	}

	query, args, err := psqlbuilder.Update(ordersTable).
		Set("status", target).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": allowed}).
		Suffix("RETURNING " + strings.Join(orderColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	order, err := scanOrder(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrStatusNotUpdated
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - scan order: %v", ErrScanRow, err)
	}

	return order, nil
}

// Delete удаляет заказ, позиции удаляются каскадно
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete(ordersTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrOrderNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var (
		order     domain.Order
		orderDate sql.NullTime
	)

	err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.PhoneNumber,
		&order.OrderNumber,
		&order.PaymentMethod,
		&order.TotalAmount,
		&order.Status,
		&orderDate,
		&order.Source,
		&order.Note,
	)
	if err != nil {
		return nil, err
	}

	order.OrderDate = orderDate.Time

	return &order, nil
}
