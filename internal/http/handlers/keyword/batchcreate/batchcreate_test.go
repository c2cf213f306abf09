package batchcreate

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
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// MockService реализует интерфейс batchcreate.Service
type MockService struct {
	mock.Mock
}

func (m *MockService) BatchCreate(ctx context.Context, videoUID string, items []models.DummyKeyword) ([]string, error) {
	args := m.Called(ctx, videoUID, items)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestBatchCreateHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	validUID := "6a1e2f74-92c1-4a8e-8d2b-3f0a9e5c7b11"

	tests := []struct {
		name           string
		body           string
		setupMock      func(*MockService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешное пакетное создание",
			body: `{"video_id":"` + validUID + `","keywords":[{"word":"apple"},{"word":"banana"},{"word":"cherry"}]}`,
			setupMock: func(m *MockService) {
				m.On("BatchCreate", mock.Anything, validUID, mock.MatchedBy(func(items []models.DummyKeyword) bool {
					return len(items) == 3 && items[0].Word == "apple"
				})).Return([]string{"uid-1", "uid-2", "uid-3"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `"count":3`,
		},
		{
			name:           "пустой список карточек",
			body:           `{"video_id":"` + validUID + `","keywords":[]}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "некорректный video_id",
			body:           `{"video_id":"42","keywords":[{"word":"apple"}]}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name:           "карточка без слова",
			body:           `{"video_id":"` + validUID + `","keywords":[{"phonetic":"x"}]}`,
			setupMock:      func(_ *MockService) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `"status":"Error"`,
		},
		{
			name: "видео не найдено",
			body: `{"video_id":"` + validUID + `","keywords":[{"word":"apple"}]}`,
			setupMock: func(m *MockService) {
				m.On("BatchCreate", mock.Anything, validUID, mock.Anything).
					Return(nil, repository.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `"error":"video not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := new(MockService)
			tt.setupMock(mockService)

			handler := New(logger, mockService)

			req := httptest.NewRequest(http.MethodPost, "/keywords/batch", strings.NewReader(tt.body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			mockService.AssertExpectations(t)
		})
	}
}
