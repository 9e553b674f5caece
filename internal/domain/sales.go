package domain

// SalesReportType grouping granularity of the sales report
type SalesReportType string

const (
	SalesDaily   SalesReportType = "daily"
	SalesMonthly SalesReportType = "monthly"
	SalesYearly  SalesReportType = "yearly"
)

// IsValid returns true for known report types
func (t SalesReportType) IsValid() bool {
	_, _, ok := t.Grouping()
	return ok
}

// Grouping returns the date_trunc unit and to_char label format for the report type
func (t SalesReportType) Grouping() (unit string, format string, ok bool) {
	switch t {
	case SalesDaily:
		return "day", "YYYY-MM-DD", true
	case SalesMonthly:
		return "month", "YYYY-MM", true
	case SalesYearly:
		return "year", "YYYY", true
	}
	return "", "", false
}

// SalesRow one bucket of the sales report
type SalesRow struct {
	Label string
	Total float64
}
