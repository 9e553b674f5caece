package sales

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
	"github.com/m04kA/SMC-POSService/pkg/psqlbuilder"
)

// Repository отчёт по продажам поверх таблицы orders
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория продаж
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Report суммирует total_amount по периодам date_trunc(order_date), метки по возрастанию
func (r *Repository) Report(ctx context.Context, reportType domain.SalesReportType) ([]domain.SalesRow, error) {
	unit, format, ok := reportType.Grouping()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownReportType, reportType)
	}
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select().
		Column(squirrel.Expr("to_char(date_trunc(?, order_date), ?) AS label", unit, format)).
		Column("SUM(total_amount) AS total").
		From("orders").
		GroupBy("label").
		OrderBy("label ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Report - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: Report - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	report := make([]domain.SalesRow, 0)
	for rows.Next() {
		var row domain.SalesRow
		if err := rows.Scan(&row.Label, &row.Total); err != nil {
			return nil, fmt.Errorf("%w: Report - scan row: %v", ErrScanRow, err)
		}
		report = append(report, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: Report - rows iteration: %v", ErrScanRow, err)
	}

	return report, nil
}
