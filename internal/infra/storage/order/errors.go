package order

import "errors"

var (
	// ErrOrderNotFound возвращается, когда заказ не найден
	ErrOrderNotFound = errors.New("order.repository: order not found")

	// ErrStatusNotUpdated возвращается, когда UPDATE статуса не затронул ни одной строки:
	// заказа нет либо переход из текущего статуса запрещён
	ErrStatusNotUpdated = errors.New("order.repository: status not updated")

	// ErrNoItems возвращается при попытке вставить пустой набор позиций
	ErrNoItems = errors.New("order.repository: no items to insert")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("order.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("order.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("order.repository: failed to scan row")
)
