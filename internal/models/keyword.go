package models

import "time"

// Example — пара примеров употребления слова: английское предложение и перевод.
type Example struct {
	En string `json:"en"` // Английское предложение
	Zh string `json:"zh"` // Перевод на китайский
}

// Keyword представляет полную карточку ключевого слова, привязанную к видео.
// Жизненный цикл карточки привязан к родительскому видео: удаление видео
// каскадно удаляет его карточки.
type Keyword struct {
	UID               string    `json:"id"`                           // Уникальный идентификатор карточки
	VideoUID          string    `json:"video_id"`                     // UID родительского видео
	Word              string    `json:"word"`                         // Само слово
	Phonetic          *string   `json:"phonetic,omitempty"`           // Транскрипция
	PartOfSpeech      *string   `json:"part_of_speech,omitempty"`     // Часть речи
	ChineseDefinition *string   `json:"chinese_definition,omitempty"` // Определение на китайском
	EnglishDefinition *string   `json:"english_definition,omitempty"` // Определение на английском
	Examples          []Example `json:"examples"`                     // Примеры употребления
	Synonyms          *string   `json:"synonyms,omitempty"`           // Синонимы
	Antonyms          *string   `json:"antonyms,omitempty"`           // Антонимы
	UsageNote         *string   `json:"usage,omitempty"`              // Заметка об употреблении
	MemoryTip         *string   `json:"memory_tip,omitempty"`         // Мнемоническая подсказка
	CreatedAt         time.Time `json:"created_at"`                   // Время создания
}

// DummyKeyword используется для приёма одной карточки из JSON-запроса
// пакетного создания, прежде чем конвертировать её в Keyword.
type DummyKeyword struct {
	Word              string    `json:"word" validate:"required"`
	Phonetic          *string   `json:"phonetic,omitempty"`
	PartOfSpeech      *string   `json:"part_of_speech,omitempty"`
	ChineseDefinition *string   `json:"chinese_definition,omitempty"`
	EnglishDefinition *string   `json:"english_definition,omitempty"`
	Examples          []Example `json:"examples,omitempty"`
	Synonyms          *string   `json:"synonyms,omitempty"`
	Antonyms          *string   `json:"antonyms,omitempty"`
	UsageNote         *string   `json:"usage,omitempty"`
	MemoryTip         *string   `json:"memory_tip,omitempty"`
}
