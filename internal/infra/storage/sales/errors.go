package sales

import "errors"

var (
	// ErrUnknownReportType возвращается для неизвестной гранулярности отчёта
	ErrUnknownReportType = errors.New("sales.repository: unknown report type")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("sales.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("sales.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("sales.repository: failed to scan row")
)
