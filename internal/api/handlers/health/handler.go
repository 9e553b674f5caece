package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-POSService/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

type Handler struct {
	db     Database
	cache  Cache
	logger Logger
}

func NewHandler(db Database, cache Cache, logger Logger) *Handler {
	return &Handler{
		db:     db,
		cache:  cache,
		logger: logger,
	}
}

// Handle GET /health
// 503 только при недоступной БД, деградация кэша не выводит сервис из строя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:   statusOK,
		Database: statusOK,
		Cache:    statusDisabled,
	}
	code := http.StatusOK

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Error("GET /health - Database ping failed: %v", err)
		resp.Status = statusDown
		resp.Database = statusDown
		code = http.StatusServiceUnavailable
	}

	if h.cache.Enabled() {
		resp.Cache = statusOK
		if err := h.cache.Ping(ctx); err != nil {
			h.logger.Warn("GET /health - Cache ping failed: %v", err)
			resp.Cache = statusDown
		}
	}

	handlers.RespondJSON(w, code, resp)
}
