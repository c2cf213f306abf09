// Package englishlearning предоставляет маршруты для основного приложения.
package englishlearning

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/auth/me"
	"github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/auth/register"
	"github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/health"
	"github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/keyword/batchcreate"
	keywordlist "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/keyword/list"
	keywordremove "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/keyword/remove"
	userlist "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/user/list"
	"github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/user/password"
	userremove "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/user/remove"
	videocreate "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/video/create"
	videolist "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/video/list"
	videoread "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/video/read"
	videoremove "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/video/remove"
	videoupdate "github.com/magabrotheeeer/english-learning-platform/internal/http/handlers/video/update"
	"github.com/magabrotheeeer/english-learning-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/english-learning-platform/internal/lib/jwt"
	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	authservice "github.com/magabrotheeeer/english-learning-platform/internal/services/auth"
	keywordservice "github.com/magabrotheeeer/english-learning-platform/internal/services/keyword"
	userservice "github.com/magabrotheeeer/english-learning-platform/internal/services/user"
	videoservice "github.com/magabrotheeeer/english-learning-platform/internal/services/video"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	jwtMaker jwt.Maker,
	authService *authservice.AuthService,
	userService *userservice.UserService,
	videoService *videoservice.VideoService,
	keywordService *keywordservice.KeywordService,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Get("/health", health.New().ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(jwtMaker, logger))

			r.Get("/auth/me", me.New(logger, authService).ServeHTTP)

			// Только администратор
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleAdmin))
				r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
				r.Get("/users", userlist.New(logger, userService).ServeHTTP)
				r.Delete("/users/{id}", userremove.New(logger, userService).ServeHTTP)
				r.Put("/users/{id}/password", password.New(logger, userService).ServeHTTP)
				r.Delete("/videos/{id}", videoremove.New(logger, videoService).ServeHTTP)
			})

			// Администратор и автор
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.RequireRole(logger, models.RoleAdmin, models.RoleAuthor))
				r.Post("/videos", videocreate.New(logger, videoService).ServeHTTP)
				r.Put("/videos/{id}", videoupdate.New(logger, videoService).ServeHTTP)
				r.Post("/keywords/batch", batchcreate.New(logger, keywordService).ServeHTTP)
				r.Delete("/keywords/{id}", keywordremove.New(logger, keywordService).ServeHTTP)
			})

			// Любая аутентифицированная роль
			r.Get("/videos", videolist.New(logger, videoService).ServeHTTP)
			r.Get("/videos/{id}", videoread.New(logger, videoService).ServeHTTP)
			r.Get("/keywords/{videoId}", keywordlist.New(logger, keywordService).ServeHTTP)
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
