package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/magabrotheeeer/english-learning-platform/internal/migrations"
	"github.com/magabrotheeeer/english-learning-platform/internal/models"
)

// setupTestStorage поднимает контейнер PostgreSQL, применяет миграции и
// возвращает готовое хранилище. В коротком режиме тест пропускается.
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("user"),
		postgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	storage, err := New(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { storage.DB.Close() })

	require.NoError(t, migrations.Run(storage.DB, "../../../migrations"))
	return storage
}

// TestDataFactory создает тестовые записи с разумными значениями по умолчанию.
type TestDataFactory struct {
	t       *testing.T
	storage *Storage
}

// NewTestDataFactory создает фабрику тестовых данных.
func NewTestDataFactory(t *testing.T, storage *Storage) *TestDataFactory {
	return &TestDataFactory{t: t, storage: storage}
}

// CreateUser вставляет пользователя и возвращает его UID.
func (f *TestDataFactory) CreateUser(ctx context.Context, username string, role models.Role) string {
	f.t.Helper()
	uid, err := f.storage.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: "$2a$10$fakehashfakehashfakehashfakehashfakehashfakehashfake",
		Role:         role,
		IsActive:     true,
	})
	require.NoError(f.t, err)
	return uid
}

// CreateVideo вставляет видео от имени пользователя и возвращает его UID.
func (f *TestDataFactory) CreateVideo(ctx context.Context, createdBy, title string) string {
	f.t.Helper()
	uid, err := f.storage.CreateVideo(ctx, models.Video{
		Title: title,
		URL:   "https://example.com/" + title + ".mp4",
		Subtitles: []models.SubtitleCue{
			{Start: 0, End: 2.5, Text: "Hello", Translation: "你好"},
		},
		Keywords:  []models.KeywordSnapshot{{Word: "hello"}},
		CreatedBy: createdBy,
	})
	require.NoError(f.t, err)
	return uid
}

// CreateKeywords вставляет пакет карточек для видео и возвращает их UID.
func (f *TestDataFactory) CreateKeywords(ctx context.Context, videoUID string, words ...string) []string {
	f.t.Helper()
	keywords := make([]models.Keyword, 0, len(words))
	for _, word := range words {
		keywords = append(keywords, models.Keyword{
			VideoUID: videoUID,
			Word:     word,
			Examples: []models.Example{{En: "Example with " + word, Zh: "例句"}},
		})
	}
	uids, err := f.storage.CreateKeywords(ctx, keywords)
	require.NoError(f.t, err)
	return uids
}
