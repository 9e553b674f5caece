package health

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDisabled = "disabled"
)

// HealthResponse состояние сервиса и его зависимостей
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
}
