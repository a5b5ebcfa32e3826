package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/OmKardile/online-car-service-station/internal/http/middlewarectx"
	"github.com/OmKardile/online-car-service-station/internal/models"
	bookingservice "github.com/OmKardile/online-car-service-station/internal/services/booking"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, id int) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if res := args.Get(0); res != nil {
		return res.(*models.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		bookingID      string
		userID         any
		role           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:      "клиент читает свое бронирование",
			bookingID: "12",
			userID:    3,
			role:      models.RoleClient,
			setupMock: func(m *MockService) {
				booking := &models.Booking{
					ID:         12,
					ClientID:   3,
					FinalPrice: 49.99,
					Status:     models.StatusConfirmed,
				}
				m.On("Read", mock.Anything, 12).Return(booking, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"final_price":49.99`,
		},
		{
			name:      "чужое бронирование запрещено",
			bookingID: "12",
			userID:    5,
			role:      models.RoleClient,
			setupMock: func(m *MockService) {
				booking := &models.Booking{ID: 12, ClientID: 3}
				m.On("Read", mock.Anything, 12).Return(booking, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `"error":"forbidden"`,
		},
		{
			name:      "администратор станции видит любое бронирование",
			bookingID: "12",
			userID:    9,
			role:      models.RoleStationAdmin,
			setupMock: func(m *MockService) {
				booking := &models.Booking{ID: 12, ClientID: 3}
				m.On("Read", mock.Anything, 12).Return(booking, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"id":12`,
		},
		{
			name:      "бронирование не найдено",
			bookingID: "999",
			userID:    3,
			role:      models.RoleClient,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 999).Return(nil, bookingservice.ErrBookingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"booking not found"`,
		},
		{
			name:           "некорректный id",
			bookingID:      "abc",
			userID:         3,
			role:           models.RoleClient,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid booking id"`,
		},
		{
			name:           "пользователь не авторизован",
			bookingID:      "12",
			userID:         nil,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `"error":"unauthorized"`,
		},
		{
			name:      "внутренняя ошибка",
			bookingID: "12",
			userID:    3,
			role:      models.RoleClient,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, 12).Return(nil, errors.New("db error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"failed to read booking"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/api/bookings/"+tt.bookingID, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("bookingId", tt.bookingID)
			ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
			if tt.userID != nil {
				ctx = context.WithValue(ctx, middlewarectx.UserID, tt.userID)
				ctx = context.WithValue(ctx, middlewarectx.Role, tt.role)
			}
			req = req.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
