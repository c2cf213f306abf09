// Package services содержит бизнес-логику для карточек ключевых слов:
// пакетное создание, выборка по видео и удаление.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// KeywordRepository определяет методы для работы с карточками слов в хранилище.
type KeywordRepository interface {
	// CreateKeywords вставляет пакет карточек в одной транзакции.
	CreateKeywords(ctx context.Context, keywords []models.Keyword) ([]string, error)
	// ListKeywordsByVideo возвращает карточки видео в порядке вставки.
	ListKeywordsByVideo(ctx context.Context, videoUID string) ([]*models.Keyword, error)
	// RemoveKeyword удаляет карточку по UID.
	RemoveKeyword(ctx context.Context, keywordUID string) (int, error)
}

// VideoReader проверяет существование родительского видео.
type VideoReader interface {
	ReadVideo(ctx context.Context, videoUID string) (*models.Video, error)
}

// KeywordService реализует бизнес-логику работы с карточками слов.
type KeywordService struct {
	repo   KeywordRepository
	videos VideoReader
	log    *slog.Logger
}

// NewKeywordService создает новый экземпляр KeywordService.
func NewKeywordService(repo KeywordRepository, videos VideoReader, log *slog.Logger) *KeywordService {
	return &KeywordService{
		repo:   repo,
		videos: videos,
		log:    log,
	}
}

// BatchCreate создаёт пакет карточек для существующего видео, сохраняя порядок
// входного списка, и возвращает UID созданных записей. Несуществующее видео
// даёт repository.ErrNotFound.
func (s *KeywordService) BatchCreate(ctx context.Context, videoUID string, items []models.DummyKeyword) ([]string, error) {
	if _, err := s.videos.ReadVideo(ctx, videoUID); err != nil {
		return nil, err
	}

	keywords := make([]models.Keyword, 0, len(items))
	for _, item := range items {
		keywords = append(keywords, models.Keyword{
			VideoUID:          videoUID,
			Word:              item.Word,
			Phonetic:          item.Phonetic,
			PartOfSpeech:      item.PartOfSpeech,
			ChineseDefinition: item.ChineseDefinition,
			EnglishDefinition: item.EnglishDefinition,
			Examples:          item.Examples,
			Synonyms:          item.Synonyms,
			Antonyms:          item.Antonyms,
			UsageNote:         item.UsageNote,
			MemoryTip:         item.MemoryTip,
		})
	}

	uids, err := s.repo.CreateKeywords(ctx, keywords)
	if err != nil {
		return nil, err
	}
	s.log.Info("batch created keywords",
		slog.String("video_uid", videoUID), slog.Int("count", len(uids)))
	return uids, nil
}

// ListByVideo возвращает карточки слов видео в порядке вставки.
func (s *KeywordService) ListByVideo(ctx context.Context, videoUID string) ([]*models.Keyword, error) {
	return s.repo.ListKeywordsByVideo(ctx, videoUID)
}

// Remove удаляет карточку слова по UID.
func (s *KeywordService) Remove(ctx context.Context, keywordUID string) error {
	const op = "services.keyword.Remove"
	count, err := s.repo.RemoveKeyword(ctx, keywordUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	return nil
}
