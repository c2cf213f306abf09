// Package services содержит бизнес-логику для управления видео и кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/english-learning-platform/internal/lib/sl"
	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// VideoRepository определяет методы для работы с видео в хранилище.
type VideoRepository interface {
	// CreateVideo добавляет новое видео и возвращает его UID.
	CreateVideo(ctx context.Context, video models.Video) (string, error)
	// ReadVideo возвращает видео по UID.
	ReadVideo(ctx context.Context, videoUID string) (*models.Video, error)
	// ListVideos возвращает список видео с пагинацией, новые первыми.
	ListVideos(ctx context.Context, limit, offset int) ([]*models.Video, error)
	// UpdateVideo обновляет данные видео по UID.
	UpdateVideo(ctx context.Context, video models.Video, videoUID string) (int, error)
	// RemoveVideo удаляет видео вместе с его карточками слов.
	RemoveVideo(ctx context.Context, videoUID string) (int, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// EventPublisher публикует события жизненного цикла видео для внешнего
// конвейера обогащения. Ошибки публикации не срывают операцию.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// VideoEvent — полезная нагрузка события о создании или удалении видео.
type VideoEvent struct {
	VideoUID string `json:"video_uid"`
	Title    string `json:"title,omitempty"`
	URL      string `json:"url,omitempty"`
}

// VideoService реализует бизнес-логику работы с видео, включая кеширование
// и публикацию событий.
type VideoService struct {
	repo   VideoRepository
	cache  Cache
	events EventPublisher
	log    *slog.Logger
}

// NewVideoService создает новый экземпляр VideoService.
// events может быть nil, тогда события не публикуются.
func NewVideoService(repo VideoRepository, cache Cache, events EventPublisher, log *slog.Logger) *VideoService {
	return &VideoService{
		repo:   repo,
		cache:  cache,
		events: events,
		log:    log,
	}
}

// Create создает новое видео от имени пользователя и возвращает UID.
// Кеш не заполняется здесь: UID и отметки времени выставляет база,
// поэтому полная запись попадает в кеш при первом чтении.
func (s *VideoService) Create(ctx context.Context, createdByUID string, req models.DummyVideo) (string, error) {
	video := models.Video{
		Title:           req.Title,
		URL:             req.URL,
		Thumbnail:       req.Thumbnail,
		DurationSeconds: req.DurationSeconds,
		Subtitles:       req.Subtitles,
		Keywords:        req.Keywords,
		CreatedBy:       createdByUID,
	}

	uid, err := s.repo.CreateVideo(ctx, video)
	if err != nil {
		return "", err
	}
	s.log.Info("created new video", slog.String("video_uid", uid))

	s.publish("created", VideoEvent{VideoUID: uid, Title: video.Title, URL: video.URL})
	return uid, nil
}

// Read возвращает видео по UID, используя кеш или репозиторий.
func (s *VideoService) Read(ctx context.Context, videoUID string) (*models.Video, error) {
	var result *models.Video
	cacheKey := fmt.Sprintf("video:%s", videoUID)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		s.log.Warn("cache read failed", slog.String("key", cacheKey), sl.Err(err))
	}
	if found && result != nil {
		return result, nil
	}

	result, err = s.repo.ReadVideo(ctx, videoUID)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache video", slog.String("key", cacheKey), sl.Err(err))
	}
	return result, nil
}

// List возвращает список видео с пагинацией, новые записи первыми.
func (s *VideoService) List(ctx context.Context, limit, offset int) ([]*models.Video, error) {
	return s.repo.ListVideos(ctx, limit, offset)
}

// Update обновляет данные видео по UID и инвалидирует кеш.
func (s *VideoService) Update(ctx context.Context, videoUID string, req models.DummyVideo) error {
	const op = "services.video.Update"
	video := models.Video{
		Title:           req.Title,
		URL:             req.URL,
		Thumbnail:       req.Thumbnail,
		DurationSeconds: req.DurationSeconds,
		Subtitles:       req.Subtitles,
		Keywords:        req.Keywords,
	}

	count, err := s.repo.UpdateVideo(ctx, video, videoUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	cacheKey := fmt.Sprintf("video:%s", videoUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate cache", slog.String("key", cacheKey), sl.Err(err))
	}
	return nil
}

// Remove удаляет видео вместе с его карточками слов и инвалидирует кеш.
func (s *VideoService) Remove(ctx context.Context, videoUID string) error {
	const op = "services.video.Remove"

	cacheKey := fmt.Sprintf("video:%s", videoUID)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to remove from cache", slog.String("key", cacheKey), sl.Err(err))
	}

	count, err := s.repo.RemoveVideo(ctx, videoUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}

	s.publish("removed", VideoEvent{VideoUID: videoUID})
	return nil
}

func (s *VideoService) publish(routingKey string, event VideoEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(routingKey, event); err != nil {
		s.log.Warn("failed to publish video event",
			slog.String("routing_key", routingKey), sl.Err(err))
	}
}
