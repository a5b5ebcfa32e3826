package health

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockStorage реализует интерфейс health.DatabaseChecker
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CheckDatabaseReady(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHealthHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name         string
		setupMock    func(*MockStorage)
		expectedBody string
	}{
		{
			name: "база данных доступна",
			setupMock: func(m *MockStorage) {
				m.On("CheckDatabaseReady", mock.Anything).Return(nil)
			},
			expectedBody: `"database":"connected"`,
		},
		{
			name: "база данных недоступна",
			setupMock: func(m *MockStorage) {
				m.On("CheckDatabaseReady", mock.Anything).Return(errors.New("connection refused"))
			},
			expectedBody: `"database":"disconnected"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := new(MockStorage)
			tt.setupMock(storage)

			handler := New(logger, storage)

			req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.Contains(t, w.Body.String(), `"status":"ok"`)

			storage.AssertExpectations(t)
		})
	}
}
