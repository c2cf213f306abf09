package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/english-learning-platform/internal/http/response"
	"github.com/magabrotheeeer/english-learning-platform/internal/models"
)

// RequireRole возвращает middleware, пропускающий запрос только если роль
// из контекста входит в разрешённый набор. Должен стоять строго после
// JWTMiddleware: отсутствие роли в контексте — ошибка программиста,
// а не запроса, поэтому она приводит к панике (её перехватит Recoverer).
func RequireRole(log *slog.Logger, allowed ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.RequireRole"

			roleStr, ok := r.Context().Value(Role).(string)
			if !ok || roleStr == "" {
				panic("middlewarectx: RequireRole used without JWTMiddleware")
			}

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			role, err := models.ParseRole(roleStr)
			if err == nil {
				for _, a := range allowed {
					if role == a {
						next.ServeHTTP(w, r)
						return
					}
				}
			}

			log.Error("role is not permitted", slog.String("role", roleStr))
			w.WriteHeader(http.StatusForbidden)
			render.JSON(w, r, response.Error("permission denied"))
		})
	}
}
