// Package models содержит доменные структуры платформы изучения английского:
// пользователей, видео с субтитрами и ключевые слова.
package models

import "fmt"

// Role задаёт роль пользователя как закрытый тип.
// Любое значение вне набора admin/author/viewer отклоняется на границе.
type Role string

const (
	// RoleAdmin — полный доступ, управление пользователями.
	RoleAdmin Role = "admin"
	// RoleAuthor — создание и редактирование видео и ключевых слов.
	RoleAuthor Role = "author"
	// RoleViewer — только чтение.
	RoleViewer Role = "viewer"
)

// ParseRole проверяет строковое значение роли и возвращает Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleAuthor, RoleViewer:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role: %q", s)
}

func (r Role) String() string {
	return string(r)
}
