package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/magabrotheeeer/english-learning-platform/internal/models"
)

// CreateKeywords вставляет пакет карточек слов для видео в одной транзакции,
// сохраняя порядок входного списка. Возвращает UID созданных записей.
func (s *Storage) CreateKeywords(ctx context.Context, keywords []models.Keyword) ([]string, error) {
	const op = "storage.CreateKeywords"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `INSERT INTO keywords (video_uid, word, phonetic, part_of_speech,
			      chinese_definition, english_definition, examples, synonyms,
			      antonyms, usage_note, memory_tip)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			  RETURNING uid`

	uids := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		examples := kw.Examples
		if examples == nil {
			examples = []models.Example{}
		}
		examplesJSON, err := json.Marshal(examples)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		var uid string
		if err = tx.QueryRowContext(ctx, query,
			kw.VideoUID, kw.Word, kw.Phonetic, kw.PartOfSpeech,
			kw.ChineseDefinition, kw.EnglishDefinition, examplesJSON,
			kw.Synonyms, kw.Antonyms, kw.UsageNote, kw.MemoryTip).Scan(&uid); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		uids = append(uids, uid)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return uids, nil
}

// ListKeywordsByVideo возвращает карточки слов видео в порядке вставки.
func (s *Storage) ListKeywordsByVideo(ctx context.Context, videoUID string) ([]*models.Keyword, error) {
	const op = "storage.ListKeywordsByVideo"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT uid, video_uid, word, phonetic, part_of_speech,
			      chinese_definition, english_definition, examples, synonyms,
			      antonyms, usage_note, memory_tip, created_at
			  FROM keywords
			  WHERE video_uid = $1
			  ORDER BY seq`
	rows, err := s.DB.QueryContext(ctx, query, videoUID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var result []*models.Keyword
	for rows.Next() {
		var kw models.Keyword
		var phonetic, partOfSpeech, chineseDef, englishDef sql.NullString
		var synonyms, antonyms, usageNote, memoryTip sql.NullString
		var examplesJSON []byte
		if err = rows.Scan(&kw.UID, &kw.VideoUID, &kw.Word, &phonetic, &partOfSpeech,
			&chineseDef, &englishDef, &examplesJSON, &synonyms,
			&antonyms, &usageNote, &memoryTip, &kw.CreatedAt); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		kw.Phonetic = nullableString(phonetic)
		kw.PartOfSpeech = nullableString(partOfSpeech)
		kw.ChineseDefinition = nullableString(chineseDef)
		kw.EnglishDefinition = nullableString(englishDef)
		kw.Synonyms = nullableString(synonyms)
		kw.Antonyms = nullableString(antonyms)
		kw.UsageNote = nullableString(usageNote)
		kw.MemoryTip = nullableString(memoryTip)

		if err = json.Unmarshal(examplesJSON, &kw.Examples); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &kw)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// RemoveKeyword удаляет карточку слова по UID и возвращает количество удалённых строк.
func (s *Storage) RemoveKeyword(ctx context.Context, keywordUID string) (int, error) {
	const op = "storage.RemoveKeyword"
	select {
	case <-ctx.Done():
		return 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `DELETE FROM keywords WHERE uid = $1`
	result, err := s.DB.ExecContext(ctx, query, keywordUID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	return int(rowsAffected), nil
}

func nullableString(v sql.NullString) *string {
	if v.Valid {
		return &v.String
	}
	return nil
}
