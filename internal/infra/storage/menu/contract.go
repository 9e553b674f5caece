package menu

import (
	"github.com/m04kA/SMC-POSService/pkg/dbmetrics"
)

// DBExecutor интерфейс выполнения запросов (*dbmetrics.DB или транзакция)
type DBExecutor = dbmetrics.DBExecutor
