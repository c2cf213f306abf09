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

	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// MockService реализует интерфейс read.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) Read(ctx context.Context, uid string) (*models.Video, error) {
	args := m.Called(ctx, uid)
	if res := args.Get(0); res != nil {
		return res.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReadVideoHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	validUID := "6a1e2f74-92c1-4a8e-8d2b-3f0a9e5c7b11"

	tests := []struct {
		name           string
		id             string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное получение видео",
			id:   validUID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, validUID).Return(&models.Video{
					UID:   validUID,
					Title: "Lesson 1",
					URL:   "https://example.com/lesson1.mp4",
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"title":"Lesson 1"`,
		},
		{
			name:           "некорректный UID",
			id:             "42",
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `"error":"invalid id"`,
		},
		{
			name: "видео не найдено",
			id:   validUID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, validUID).Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"video not found"`,
		},
		{
			name: "ошибка сервиса",
			id:   validUID,
			setupMock: func(m *MockService) {
				m.On("Read", mock.Anything, validUID).Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `"error":"could not read video"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodGet, "/videos/"+tt.id, nil)
			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
