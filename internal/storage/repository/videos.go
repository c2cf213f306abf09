package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/english-learning-platform/internal/models"
)

// CreateVideo вставляет новую запись видео и возвращает её UID.
// Субтитры и снимки ключевых слов сериализуются в JSONB, сохраняя порядок.
func (s *Storage) CreateVideo(ctx context.Context, video models.Video) (string, error) {
	const op = "storage.CreateVideo"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	subtitles, keywords, err := marshalVideoEmbeds(op, video)
	if err != nil {
		return "", err
	}

	query := `INSERT INTO videos (title, url, thumbnail, duration_seconds, subtitles,
			      keyword_snapshots, created_by)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING uid`
	var newUID string
	err = s.DB.QueryRowContext(ctx, query,
		video.Title, video.URL, video.Thumbnail, video.DurationSeconds,
		subtitles, keywords, video.CreatedBy).Scan(&newUID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return newUID, nil
}

// ReadVideo возвращает данные видео по его UID.
func (s *Storage) ReadVideo(ctx context.Context, videoUID string) (*models.Video, error) {
	const op = "storage.ReadVideo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, title, url, thumbnail, duration_seconds, subtitles,
			      keyword_snapshots, created_by, created_at, updated_at
			  FROM videos WHERE uid = $1`
	row := s.DB.QueryRowContext(ctx, query, videoUID)

	video, err := scanVideo(row.Scan)
	if err != nil {
		return nil, wrapNotFound(op, err)
	}
	return video, nil
}

// ListVideos возвращает список видео с пагинацией, новые записи первыми.
func (s *Storage) ListVideos(ctx context.Context, limit, offset int) ([]*models.Video, error) {
	const op = "storage.ListVideos"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, title, url, thumbnail, duration_seconds, subtitles,
			      keyword_snapshots, created_by, created_at, updated_at
			  FROM videos
			  ORDER BY created_at DESC
			  LIMIT $1 OFFSET $2`
	rows, err := s.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Video
	for rows.Next() {
		video, err := scanVideo(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, video)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// UpdateVideo обновляет данные видео по его UID и возвращает количество изменённых строк.
func (s *Storage) UpdateVideo(ctx context.Context, video models.Video, videoUID string) (int, error) {
	const op = "storage.UpdateVideo"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	subtitles, keywords, err := marshalVideoEmbeds(op, video)
	if err != nil {
		return 0, err
	}

	query := `UPDATE videos
			  SET title = $1, url = $2, thumbnail = $3, duration_seconds = $4,
			      subtitles = $5, keyword_snapshots = $6, updated_at = now()
			  WHERE uid = $7`
	result, err := s.DB.ExecContext(ctx, query,
		video.Title, video.URL, video.Thumbnail, video.DurationSeconds,
		subtitles, keywords, videoUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

// RemoveVideo удаляет видео вместе с его карточками слов в одной транзакции.
// Возвращает количество удалённых видео (0 или 1). Ошибка на любом шаге
// откатывает транзакцию целиком, частичное удаление невозможно.
func (s *Storage) RemoveVideo(ctx context.Context, videoUID string) (int, error) {
	const op = "storage.RemoveVideo"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err = tx.ExecContext(ctx,
		`DELETE FROM keywords WHERE video_uid = $1`, videoUID); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	result, err := tx.ExecContext(ctx,
		`DELETE FROM videos WHERE uid = $1`, videoUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func marshalVideoEmbeds(op string, video models.Video) ([]byte, []byte, error) {
	subtitles := video.Subtitles
	if subtitles == nil {
		subtitles = []models.SubtitleCue{}
	}
	keywords := video.Keywords
	if keywords == nil {
		keywords = []models.KeywordSnapshot{}
	}

	subtitlesJSON, err := json.Marshal(subtitles)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	keywordsJSON, err := json.Marshal(keywords)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", op, err)
	}
	return subtitlesJSON, keywordsJSON, nil
}

func scanVideo(scan func(dest ...any) error) (*models.Video, error) {
	var video models.Video
	var thumbnail sql.NullString
	var duration sql.NullFloat64
	var subtitlesJSON, keywordsJSON []byte

	if err := scan(&video.UID, &video.Title, &video.URL, &thumbnail, &duration,
		&subtitlesJSON, &keywordsJSON, &video.CreatedBy,
		&video.CreatedAt, &video.UpdatedAt); err != nil {
		return nil, err
	}

	if thumbnail.Valid {
		video.Thumbnail = &thumbnail.String
	}
	if duration.Valid {
		video.DurationSeconds = &duration.Float64
	}
	if err := json.Unmarshal(subtitlesJSON, &video.Subtitles); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(keywordsJSON, &video.Keywords); err != nil {
		return nil, err
	}
	return &video, nil
}
