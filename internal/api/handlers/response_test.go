package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondNotFound(rec, "заказ не найден")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"заказ не найден"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Tea","extra":1}`))
	require.NoError(t, DecodeJSON(req, &dst))
	assert.Equal(t, "Tea", dst.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(``))
	assert.Error(t, DecodeJSON(req, &dst))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(req, &dst))
}

func TestValidate(t *testing.T) {
	type item struct {
		Name     string  `validate:"required"`
		Quantity int     `validate:"gt=0"`
		Price    float64 `validate:"gte=0"`
	}

	assert.NoError(t, Validate(item{Name: "Tea", Quantity: 1}))

	err := Validate(item{Quantity: 0, Price: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Name (required)")
	assert.Contains(t, err.Error(), "Quantity (gt)")
	assert.Contains(t, err.Error(), "Price (gte)")
}
