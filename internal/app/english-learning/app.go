// Package englishlearning собирает приложение: подключение к базе данных,
// миграции, кеш, брокер событий, сервисы и HTTP-сервер.
package englishlearning

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"

	"github.com/magabrotheeeer/english-learning-platform/internal/cache"
	"github.com/magabrotheeeer/english-learning-platform/internal/config"
	"github.com/magabrotheeeer/english-learning-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/english-learning-platform/internal/lib/sl"
	"github.com/magabrotheeeer/english-learning-platform/internal/migrations"
	"github.com/magabrotheeeer/english-learning-platform/internal/rabbitmq"
	authservice "github.com/magabrotheeeer/english-learning-platform/internal/services/auth"
	keywordservice "github.com/magabrotheeeer/english-learning-platform/internal/services/keyword"
	userservice "github.com/magabrotheeeer/english-learning-platform/internal/services/user"
	videoservice "github.com/magabrotheeeer/english-learning-platform/internal/services/video"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// App содержит все долгоживущие зависимости приложения.
type App struct {
	server *http.Server
	logger *slog.Logger
	db     *repository.Storage
	cache  *cache.Cache
}

// New инициализирует приложение: хранилище, миграции, учетную запись
// администратора по умолчанию, кеш, брокер событий, сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.englishlearning.New"

	db, err := repository.New(cfg.StorageConnectionString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if err = migrations.Run(db.DB, cfg.MigrationsPath); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cacheRedis, err := cache.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	jwtMaker := jwt.NewJWTMaker(cfg.JWTSecretKey, cfg.TokenTTL)

	authService := authservice.NewAuthService(db, jwtMaker, logger)
	if err = authService.EnsureDefaultAdmin(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// Брокер событий опционален: без него события жизненного цикла видео
	// просто не публикуются.
	var events videoservice.EventPublisher
	if cfg.EventsConnectionString != "" {
		conn, err := rabbitmq.Connect(cfg.EventsConnectionString, 5, 2*time.Second)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		ch, err := rabbitmq.SetupChannel(conn)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		events = rabbitmq.NewPublisher(ch)
	} else {
		logger.Warn("events connection string is empty, video events are disabled")
	}

	userService := userservice.NewUserService(db, logger)
	videoService := videoservice.NewVideoService(db, cacheRedis, events, logger)
	keywordService := keywordservice.NewKeywordService(db, db, logger)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, jwtMaker, authService, userService, videoService, keywordService)

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &App{
		server: srv,
		logger: logger,
		db:     db,
		cache:  cacheRedis,
	}, nil
}

// Run запускает HTTP-сервер и останавливает его при отмене контекста.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		if closeErr := a.db.DB.Close(); closeErr != nil {
			a.logger.Error("failed to close storage", sl.Err(closeErr))
		}
		return err
	}
}
