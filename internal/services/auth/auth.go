// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/magabrotheeeer/english-learning-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/english-learning-platform/internal/lib/password"
	"github.com/magabrotheeeer/english-learning-platform/internal/lib/sl"
	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// ErrInvalidCredentials возвращается при неизвестном username, неверном
// пароле или деактивированной учётной записи — без различия, чтобы не
// раскрывать, какие имена заняты.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUsernameTaken возвращается при попытке зарегистрировать занятый username.
var ErrUsernameTaken = errors.New("username already taken")

// Значения учётной записи, создаваемой при первом старте на пустой базе.
// Пароль обязателен к смене в любом реальном развёртывании.
const (
	defaultAdminUsername = "admin"
	defaultAdminPassword = "admin123"
)

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// CreateUser сохраняет нового пользователя и возвращает его UID.
	CreateUser(ctx context.Context, user models.User) (string, error)

	// GetUserByUsername возвращает пользователя по имени или ошибку, если не найден.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUser возвращает пользователя по UID.
	GetUser(ctx context.Context, userUID string) (*models.User, error)

	// UpdateLastLogin фиксирует время последнего входа.
	UpdateLastLogin(ctx context.Context, userUID string, at time.Time) error
}

// AuthService отвечает за регистрацию, авторизацию и выдачу JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
	log      *slog.Logger
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker, log *slog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
		log:      log,
	}
}

// Register создает нового пользователя с хэшированием пароля и указанной ролью.
// Регистрация доступна только администратору, поэтому роль приходит уже
// проверенной на границе запроса.
func (s *AuthService) Register(ctx context.Context, username, rawPassword string, role models.Role) (string, error) {
	hashed, err := password.GetHash(rawPassword)
	if err != nil {
		return "", err
	}
	user := models.User{
		Username:     username,
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}
	uid, err := s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", ErrUsernameTaken
		}
		return "", err
	}
	return uid, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Вход разрешён только активным учётным записям; время последнего входа
// обновляется после успешной проверки пароля.
func (s *AuthService) Login(ctx context.Context, username, rawPassword string) (token string, user *models.User, err error) {
	user, err = s.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.IsActive {
		return "", nil, ErrInvalidCredentials
	}
	if err = password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err = s.users.UpdateLastLogin(ctx, user.UID, now); err != nil {
		s.log.Warn("failed to update last login", sl.Err(err))
	} else {
		user.LastLogin = &now
	}

	token, err = s.jwtMaker.GenerateToken(user.Username, user.Role.String(), user.UID)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Me возвращает пользователя по UID из токена, без хэша пароля в сериализации.
func (s *AuthService) Me(ctx context.Context, userUID string) (*models.User, error) {
	return s.users.GetUser(ctx, userUID)
}

// EnsureDefaultAdmin создаёт учётную запись администратора по умолчанию,
// если в базе ещё нет пользователя admin. Пароль по умолчанию — известная
// константа, поэтому факт создания логируется как предупреждение.
func (s *AuthService) EnsureDefaultAdmin(ctx context.Context) error {
	const op = "services.auth.EnsureDefaultAdmin"

	_, err := s.users.GetUserByUsername(ctx, defaultAdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err = s.Register(ctx, defaultAdminUsername, defaultAdminPassword, models.RoleAdmin); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Warn("created default admin account, rotate its password before exposing the service",
		slog.String("username", defaultAdminUsername))
	return nil
}
