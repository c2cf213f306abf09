// Package models содержит доменную модель пользователя системы,
// включающую данные учётной записи, хэш пароля и дату создания.
// Структура используется в бизнес‑логике и при работе с хранилищем.
package models

import "time"

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не сериализуется в ответы клиенту.
type User struct {
	UID          string     `json:"id"`                     // Уникальный идентификатор пользователя
	Username     string     `json:"username"`               // Имя пользователя (уникальное)
	PasswordHash string     `json:"-"`                      // Хэш пароля пользователя
	Role         Role       `json:"role"`                   // Роль пользователя: admin, author или viewer
	DisplayName  *string    `json:"display_name,omitempty"` // Отображаемое имя
	IsActive     bool       `json:"is_active"`              // Признак активной учётной записи
	LastLogin    *time.Time `json:"last_login,omitempty"`   // Время последнего входа
	CreatedAt    time.Time  `json:"created_at"`             // Время создания учётной записи
}
