package services

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// MockVideoRepository реализует интерфейс VideoRepository
type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) CreateVideo(ctx context.Context, video models.Video) (string, error) {
	args := m.Called(ctx, video)
	return args.String(0), args.Error(1)
}

func (m *MockVideoRepository) ReadVideo(ctx context.Context, videoUID string) (*models.Video, error) {
	args := m.Called(ctx, videoUID)
	if res := args.Get(0); res != nil {
		return res.(*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) ListVideos(ctx context.Context, limit, offset int) ([]*models.Video, error) {
	args := m.Called(ctx, limit, offset)
	if res := args.Get(0); res != nil {
		return res.([]*models.Video), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockVideoRepository) UpdateVideo(ctx context.Context, video models.Video, videoUID string) (int, error) {
	args := m.Called(ctx, video, videoUID)
	return args.Int(0), args.Error(1)
}

func (m *MockVideoRepository) RemoveVideo(ctx context.Context, videoUID string) (int, error) {
	args := m.Called(ctx, videoUID)
	return args.Int(0), args.Error(1)
}

// MockCache реализует интерфейс Cache
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *MockCache) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

// MockPublisher реализует интерфейс EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(routingKey string, message any) error {
	args := m.Called(routingKey, message)
	return args.Error(0)
}

// mapCache — кеш на map с JSON-сериализацией, повторяет поведение
// Redis-кеша для проверки сквозных сценариев без моков.
type mapCache struct {
	data map[string][]byte
}

func newMapCache() *mapCache {
	return &mapCache{data: map[string][]byte{}}
}

func (c *mapCache) Get(key string, result any) (bool, error) {
	raw, ok := c.data[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return false, err
	}
	return true, nil
}

func (c *mapCache) Set(key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.data[key] = raw
	return nil
}

func (c *mapCache) Invalidate(key string) error {
	delete(c.data, key)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCreate_Publishes(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := new(MockCache)
	events := new(MockPublisher)

	repo.On("CreateVideo", mock.Anything, mock.MatchedBy(func(v models.Video) bool {
		return v.Title == "Lesson 1" && v.CreatedBy == "uid-author"
	})).Return("uid-video", nil)
	events.On("Publish", "created", mock.MatchedBy(func(e VideoEvent) bool {
		return e.VideoUID == "uid-video" && e.Title == "Lesson 1"
	})).Return(nil)

	svc := NewVideoService(repo, cache, events, testLogger())

	uid, err := svc.Create(context.Background(), "uid-author", models.DummyVideo{
		Title: "Lesson 1",
		URL:   "https://example.com/lesson1.mp4",
	})
	require.NoError(t, err)
	assert.Equal(t, "uid-video", uid)

	repo.AssertExpectations(t)
	events.AssertExpectations(t)
	// Запись без UID и отметок времени не должна попадать в кеш при создании.
	cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreate_ThenReadReturnsFullRecord(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := newMapCache()

	stored := &models.Video{
		UID:       "uid-video",
		Title:     "Lesson 1",
		URL:       "https://example.com/lesson1.mp4",
		CreatedBy: "uid-author",
		CreatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
	}
	repo.On("CreateVideo", mock.Anything, mock.Anything).Return("uid-video", nil)
	repo.On("ReadVideo", mock.Anything, "uid-video").Return(stored, nil).Once()

	svc := NewVideoService(repo, cache, nil, testLogger())

	uid, err := svc.Create(context.Background(), "uid-author", models.DummyVideo{
		Title: "Lesson 1",
		URL:   "https://example.com/lesson1.mp4",
	})
	require.NoError(t, err)

	// Чтение сразу после создания отдаёт запись из базы с UID и отметками времени.
	got, err := svc.Read(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "uid-video", got.UID)
	assert.False(t, got.CreatedAt.IsZero())
	assert.False(t, got.UpdatedAt.IsZero())

	// Повторное чтение обслуживается уже из кеша той же полной записью.
	again, err := svc.Read(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, "uid-video", again.UID)
	assert.Equal(t, stored.CreatedAt, again.CreatedAt)
	repo.AssertExpectations(t)
}

func TestRead_CacheMissFallsBackToRepo(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := new(MockCache)

	video := &models.Video{UID: "uid-video", Title: "Lesson 1"}
	cache.On("Get", "video:uid-video", mock.Anything).Return(false, nil)
	repo.On("ReadVideo", mock.Anything, "uid-video").Return(video, nil)
	cache.On("Set", "video:uid-video", video, time.Hour).Return(nil)

	svc := NewVideoService(repo, cache, nil, testLogger())

	got, err := svc.Read(context.Background(), "uid-video")
	require.NoError(t, err)
	assert.Equal(t, "Lesson 1", got.Title)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestRead_CacheHitSkipsRepo(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := new(MockCache)

	cache.On("Get", "video:uid-video", mock.Anything).Run(func(args mock.Arguments) {
		ptr := args.Get(1).(**models.Video)
		*ptr = &models.Video{UID: "uid-video", Title: "Cached"}
	}).Return(true, nil)

	svc := NewVideoService(repo, cache, nil, testLogger())

	got, err := svc.Read(context.Background(), "uid-video")
	require.NoError(t, err)
	assert.Equal(t, "Cached", got.Title)

	repo.AssertNotCalled(t, "ReadVideo", mock.Anything, mock.Anything)
}

func TestRead_NotFound(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := new(MockCache)

	cache.On("Get", "video:uid-missing", mock.Anything).Return(false, nil)
	repo.On("ReadVideo", mock.Anything, "uid-missing").Return(nil, repository.ErrNotFound)

	svc := NewVideoService(repo, cache, nil, testLogger())

	_, err := svc.Read(context.Background(), "uid-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUpdate_NotFound(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := new(MockCache)

	repo.On("UpdateVideo", mock.Anything, mock.Anything, "uid-missing").Return(0, nil)

	svc := NewVideoService(repo, cache, nil, testLogger())

	err := svc.Update(context.Background(), "uid-missing", models.DummyVideo{
		Title: "Lesson 1",
		URL:   "https://example.com/lesson1.mp4",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything)
}

func TestRemove_InvalidatesCacheAndPublishes(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := new(MockCache)
	events := new(MockPublisher)

	cache.On("Invalidate", "video:uid-video").Return(nil)
	repo.On("RemoveVideo", mock.Anything, "uid-video").Return(1, nil)
	events.On("Publish", "removed", mock.MatchedBy(func(e VideoEvent) bool {
		return e.VideoUID == "uid-video"
	})).Return(nil)

	svc := NewVideoService(repo, cache, events, testLogger())

	require.NoError(t, svc.Remove(context.Background(), "uid-video"))

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestRemove_NotFound(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := new(MockCache)

	cache.On("Invalidate", "video:uid-missing").Return(nil)
	repo.On("RemoveVideo", mock.Anything, "uid-missing").Return(0, nil)

	svc := NewVideoService(repo, cache, nil, testLogger())

	err := svc.Remove(context.Background(), "uid-missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestRemove_PublishFailureDoesNotBlock(t *testing.T) {
	repo := new(MockVideoRepository)
	cache := new(MockCache)
	events := new(MockPublisher)

	cache.On("Invalidate", "video:uid-video").Return(nil)
	repo.On("RemoveVideo", mock.Anything, "uid-video").Return(1, nil)
	events.On("Publish", "removed", mock.Anything).Return(errors.New("broker down"))

	svc := NewVideoService(repo, cache, events, testLogger())

	require.NoError(t, svc.Remove(context.Background(), "uid-video"))
}
