package get_sales_report

import (
	"context"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/service/sales/models"
)

type SalesService interface {
	Report(ctx context.Context, reportType domain.SalesReportType) ([]models.SalesRowResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
