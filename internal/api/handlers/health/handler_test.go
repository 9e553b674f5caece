package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-POSService/internal/infra/cache"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubDB struct {
	err error
}

func (s stubDB) PingContext(context.Context) error {
	return s.err
}

func serve(h *Handler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func TestHandle_CacheDisabled(t *testing.T) {
	rec := serve(NewHandler(stubDB{}, cache.New(nil, time.Minute, nopLogger{}), nopLogger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok","cache":"disabled"}`, rec.Body.String())
}

func TestHandle_CacheDown(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetErr(errors.New("connection refused"))

	rec := serve(NewHandler(stubDB{}, cache.New(client, time.Minute, nopLogger{}), nopLogger{}))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"ok","cache":"down"}`, rec.Body.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestHandle_DatabaseDown(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectPing().SetVal("PONG")

	rec := serve(NewHandler(stubDB{err: errors.New("dial tcp: refused")}, cache.New(client, time.Minute, nopLogger{}), nopLogger{}))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"down","database":"down","cache":"ok"}`, rec.Body.String())
}
