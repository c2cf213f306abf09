package register

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	authservice "github.com/magabrotheeeer/english-learning-platform/internal/services/auth"
)

// MockService реализует интерфейс register.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Register(ctx context.Context, username, rawPassword string, role models.Role) (string, error) {
	args := m.Called(ctx, username, rawPassword, role)
	return args.String(0), args.Error(1)
}

func TestRegisterHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешная регистрация автора",
			body: `{"username":"bob","password":"secret123","role":"author"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "bob", "secret123", models.RoleAuthor).
					Return("uid-456", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"id":"uid-456"`,
		},
		{
			name: "роль по умолчанию viewer",
			body: `{"username":"carol","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "carol", "secret123", models.RoleViewer).
					Return("uid-789", nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"role":"viewer"`,
		},
		{
			name:           "неизвестная роль",
			body:           `{"username":"dave","password":"secret123","role":"superuser"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "имя пользователя занято",
			body: `{"username":"bob","password":"secret123"}`,
			setupMock: func(m *MockService) {
				m.On("Register", mock.Anything, "bob", "secret123", models.RoleViewer).
					Return("", authservice.ErrUsernameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `"error":"username already taken"`,
		},
		{
			name:           "короткий пароль",
			body:           `{"username":"bob","password":"123"}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
