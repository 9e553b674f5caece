package models

import "github.com/m04kA/SMC-POSService/internal/domain"

// SalesRowResponse сумма продаж за период
type SalesRowResponse struct {
	Label string  `json:"label"` // "2024-01-05", "2024-01" или "2024"
	Total float64 `json:"total"`
}

// FromDomainSalesRows конвертирует строки отчёта
func FromDomainSalesRows(rows []domain.SalesRow) []SalesRowResponse {
	result := make([]SalesRowResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, SalesRowResponse{Label: row.Label, Total: row.Total})
	}
	return result
}
