package list_menu

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-POSService/internal/service/menu/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubService struct {
	items []*models.MenuItemResponse
	err   error
}

func (s stubService) List(context.Context) ([]*models.MenuItemResponse, error) {
	return s.items, s.err
}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(stubService{items: []*models.MenuItemResponse{
		{ID: 1, Name: "Borscht", Category: "Soups", Price: 7.5},
	}}, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/menu", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Borscht","category":"Soups","price":7.5}]`, rec.Body.String())

	rec = httptest.NewRecorder()
	NewHandler(stubService{err: errors.New("db down")}, nopLogger{}).
		Handle(rec, httptest.NewRequest(http.MethodGet, "/api/menu", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
