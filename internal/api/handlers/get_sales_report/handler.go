package get_sales_report

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
	"github.com/m04kA/SMC-POSService/internal/domain"
	"github.com/m04kA/SMC-POSService/internal/service/sales"
)

const msgInvalidType = "тип отчёта должен быть daily, monthly или yearly"

type Handler struct {
	service SalesService
	logger  Logger
}

func NewHandler(service SalesService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/sales?type=daily|monthly|yearly
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reportType := domain.SalesReportType(r.URL.Query().Get("type"))

	rows, err := h.service.Report(r.Context(), reportType)
	if err != nil {
		switch {
		case errors.Is(err, sales.ErrInvalidInput):
			h.logger.Warn("GET /sales - Invalid report type: %q", reportType)
			handlers.RespondBadRequest(w, msgInvalidType)

		default:
			h.logger.Error("GET /sales - Failed to build report: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rows)
}
