// Package services содержит бизнес-логику административного управления
// пользователями: просмотр списка, удаление и сброс пароля.
package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/magabrotheeeer/english-learning-platform/internal/lib/password"
	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// UserRepository определяет методы для административных операций над пользователями.
type UserRepository interface {
	// ListUsers возвращает всех пользователей.
	ListUsers(ctx context.Context) ([]*models.User, error)
	// RemoveUser удаляет пользователя по UID, возвращает количество удалённых строк.
	RemoveUser(ctx context.Context, userUID string) (int, error)
	// UpdateUserPassword заменяет хэш пароля, возвращает количество изменённых строк.
	UpdateUserPassword(ctx context.Context, userUID, passwordHash string) (int, error)
}

// UserService реализует административные операции над пользователями.
type UserService struct {
	repo UserRepository
	log  *slog.Logger
}

// NewUserService создает новый экземпляр UserService.
func NewUserService(repo UserRepository, log *slog.Logger) *UserService {
	return &UserService{
		repo: repo,
		log:  log,
	}
}

// List возвращает всех пользователей, новые записи первыми.
func (s *UserService) List(ctx context.Context) ([]*models.User, error) {
	return s.repo.ListUsers(ctx)
}

// Remove удаляет пользователя по UID.
func (s *UserService) Remove(ctx context.Context, userUID string) error {
	const op = "services.user.Remove"
	count, err := s.repo.RemoveUser(ctx, userUID)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	s.log.Info("removed user", slog.String("user_uid", userUID))
	return nil
}

// ResetPassword хэширует новый пароль и сохраняет его для пользователя.
func (s *UserService) ResetPassword(ctx context.Context, userUID, rawPassword string) error {
	const op = "services.user.ResetPassword"
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return err
	}
	count, err := s.repo.UpdateUserPassword(ctx, userUID, hashed)
	if err != nil {
		return err
	}
	if count == 0 {
		return fmt.Errorf("%s: %w", op, repository.ErrNotFound)
	}
	s.log.Info("reset user password", slog.String("user_uid", userUID))
	return nil
}
