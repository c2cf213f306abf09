// Package models содержит доменные структуры, описывающие видео,
// а также вспомогательные типы для работы с данными из внешних источников (например, JSON-запросы).
package models

import "time"

// SubtitleCue описывает одну реплику субтитров с таймингом и переводом.
type SubtitleCue struct {
	Start       float64 `json:"start" validate:"gte=0"`          // Начало реплики, секунды
	End         float64 `json:"end" validate:"gtefield=Start"`   // Конец реплики, секунды
	Text        string  `json:"text" validate:"required"`        // Оригинальный текст
	Translation string  `json:"translation,omitempty"`           // Перевод на китайский
}

// KeywordSnapshot — краткий снимок ключевого слова, встроенный в видео.
// Полные карточки слов хранятся отдельно в таблице keywords.
type KeywordSnapshot struct {
	Word              string `json:"word" validate:"required"`
	Phonetic          string `json:"phonetic,omitempty"`
	PartOfSpeech      string `json:"part_of_speech,omitempty"`
	ChineseDefinition string `json:"chinese_definition,omitempty"`
	EnglishDefinition string `json:"english_definition,omitempty"`
}

// Video представляет собой основную модель видео,
// используемую в бизнес-логике и хранилище.
// Субтитры и снимки ключевых слов хранятся упорядоченными последовательностями.
type Video struct {
	UID             string            `json:"id"`                   // Уникальный идентификатор видео
	Title           string            `json:"title"`                // Название видео
	URL             string            `json:"url"`                  // Ссылка на видеофайл
	Thumbnail       *string           `json:"thumbnail,omitempty"`  // Ссылка на превью
	DurationSeconds *float64          `json:"duration,omitempty"`   // Длительность, секунды
	Subtitles       []SubtitleCue     `json:"subtitles"`            // Упорядоченные реплики субтитров
	Keywords        []KeywordSnapshot `json:"keywords"`             // Упорядоченные снимки ключевых слов
	CreatedBy       string            `json:"created_by"`           // UID пользователя-создателя
	CreatedAt       time.Time         `json:"created_at"`           // Время создания
	UpdatedAt       time.Time         `json:"updated_at"`           // Время последнего изменения
}

// DummyVideo используется для приёма данных из JSON-запроса,
// прежде чем конвертировать их в Video.
type DummyVideo struct {
	Title           string            `json:"title" validate:"required"`
	URL             string            `json:"url" validate:"required,url"`
	Thumbnail       *string           `json:"thumbnail,omitempty"`
	DurationSeconds *float64          `json:"duration,omitempty" validate:"omitempty,gt=0"`
	Subtitles       []SubtitleCue     `json:"subtitles" validate:"dive"`
	Keywords        []KeywordSnapshot `json:"keywords" validate:"dive"`
}
