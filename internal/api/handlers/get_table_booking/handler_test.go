package get_table_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-POSService/internal/service/bookings"
	"github.com/m04kA/SMC-POSService/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	mock.Mock
}

func (m *mockService) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*models.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	r := mux.NewRouter()
	r.HandleFunc("/api/table-booking/{id}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	svc.On("GetByID", mock.Anything, int64(1)).Return(&models.BookingResponse{ID: 1, BookingTime: "18:00"}, nil)
	svc.On("GetByID", mock.Anything, int64(2)).Return(nil, bookings.ErrBookingNotFound)
	svc.On("GetByID", mock.Anything, int64(3)).Return(nil, errors.New("db down"))

	tests := []struct {
		path   string
		status int
	}{
		{"/api/table-booking/1", http.StatusOK},
		{"/api/table-booking/2", http.StatusNotFound},
		{"/api/table-booking/3", http.StatusInternalServerError},
		{"/api/table-booking/abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
		assert.Equal(t, tt.status, rec.Code, tt.path)
	}

	svc.AssertExpectations(t)
}
