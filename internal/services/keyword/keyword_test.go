package services

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// MockKeywordRepository реализует интерфейс KeywordRepository
type MockKeywordRepository struct {
	mock.Mock
}

func (m *MockKeywordRepository) CreateKeywords(ctx context.Context, keywords []models.Keyword) ([]string, error) {
	args := m.Called(ctx, keywords)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockKeywordRepository) ListKeywordsByVideo(ctx context.Context, videoUID string) ([]*models.Keyword, error) {
	args := m.Called(ctx, videoUID)
	if res := args.Get(0); res != nil {
		return res.([]*models.Keyword), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockKeywordRepository) RemoveKeyword(ctx context.Context, keywordUID string) (int, error) {
	args := m.Called(ctx, keywordUID)
	return args.Int(0), args.Error(1)
}

// MockVideoReader реализует интерфейс VideoReader
type MockVideoReader struct {
	mock.Mock
}

func (m *MockVideoReader) ReadVideo(ctx context.Context, videoUID string) (*models.Video, error) {
	args := m.Called(ctx, videoUID)
	if res := args.Get(0); res != nil {
		return res.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestBatchCreate_PreservesOrder(t *testing.T) {
	repo := new(MockKeywordRepository)
	videos := new(MockVideoReader)

	videos.On("ReadVideo", mock.Anything, "uid-video").Return(&models.Video{UID: "uid-video"}, nil)
	repo.On("CreateKeywords", mock.Anything, mock.MatchedBy(func(kws []models.Keyword) bool {
		return len(kws) == 3 &&
			kws[0].Word == "apple" && kws[1].Word == "banana" && kws[2].Word == "cherry" &&
			kws[0].VideoUID == "uid-video"
	})).Return([]string{"uid-1", "uid-2", "uid-3"}, nil)

	svc := NewKeywordService(repo, videos, testLogger())

	uids, err := svc.BatchCreate(context.Background(), "uid-video", []models.DummyKeyword{
		{Word: "apple"},
		{Word: "banana"},
		{Word: "cherry"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"uid-1", "uid-2", "uid-3"}, uids)

	repo.AssertExpectations(t)
	videos.AssertExpectations(t)
}

func TestBatchCreate_VideoNotFound(t *testing.T) {
	repo := new(MockKeywordRepository)
	videos := new(MockVideoReader)

	videos.On("ReadVideo", mock.Anything, "uid-missing").Return(nil, repository.ErrNotFound)

	svc := NewKeywordService(repo, videos, testLogger())

	_, err := svc.BatchCreate(context.Background(), "uid-missing", []models.DummyKeyword{{Word: "apple"}})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	repo.AssertNotCalled(t, "CreateKeywords", mock.Anything, mock.Anything)
}

func TestRemove_NotFound(t *testing.T) {
	repo := new(MockKeywordRepository)
	videos := new(MockVideoReader)

	repo.On("RemoveKeyword", mock.Anything, "uid-missing").Return(0, nil)

	svc := NewKeywordService(repo, videos, testLogger())

	err := svc.Remove(context.Background(), "uid-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRemove_Success(t *testing.T) {
	repo := new(MockKeywordRepository)
	videos := new(MockVideoReader)

	repo.On("RemoveKeyword", mock.Anything, "uid-keyword").Return(1, nil)

	svc := NewKeywordService(repo, videos, testLogger())

	require.NoError(t, svc.Remove(context.Background(), "uid-keyword"))
}
