package sales

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/infra/cache"
	"github.com/m04kA/SMC-POSService/internal/service/sales/models"
)

// Service сервис отчёта продаж
type Service struct {
	salesRepo SalesRepository
	txManager TransactionManager
	cache     Cache
	logger    Logger
}

// NewService создает новый экземпляр сервиса продаж
func NewService(salesRepo SalesRepository, txManager TransactionManager, cache Cache, logger Logger) *Service {
	return &Service{
		salesRepo: salesRepo,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// Report возвращает суммы продаж по дням, месяцам или годам.
// Пустой тип означает daily. Отчёт кешируется до изменения заказов.
func (s *Service) Report(ctx context.Context, reportType domain.SalesReportType) ([]models.SalesRowResponse, error) {
	if reportType == "" {
		reportType = domain.DefaultSalesReportType
	}
	if !reportType.IsValid() {
		s.logger.Warn("Report: unknown report type %q", reportType)
		return nil, fmt.Errorf("%w: %q", ErrInvalidInput, reportType)
	}

	key := cache.SalesReportKey(reportType)

	var cached []models.SalesRowResponse
	if s.cache.Get(ctx, key, &cached) {
		return cached, nil
	}

	// Версию читаем до запроса: инвалидация во время запроса не даст записать устаревший отчёт
	version := s.cache.Version(ctx, key)

	var rows []domain.SalesRow
	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		var err error
		rows, err = s.salesRepo.Report(txCtx, reportType)
		return err
	})
	if err != nil {
		s.logger.Error("Report: repository error for %s report: %v", reportType, err)
		return nil, fmt.Errorf("%w: Report - repository error: %v", ErrInternal, err)
	}

	result := models.FromDomainSalesRows(rows)
	s.cache.SetIfVersion(ctx, key, version, result)

	s.logger.Info("Report: %s report with %d rows", reportType, len(result))
	return result, nil
}
