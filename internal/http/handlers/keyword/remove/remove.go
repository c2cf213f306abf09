// Package remove реализует HTTP-обработчик удаления одного ключевого слова.
package remove

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/english-learning-platform/internal/http/response"
	"github.com/magabrotheeeer/english-learning-platform/internal/lib/sl"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики удаления ключевого слова.
type Service interface {
	Remove(ctx context.Context, keywordUID string) error
}

// Handler управляет HTTP-запросами на удаление ключевого слова.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Удалить ключевое слово
// @Description Удаляет одну карточку ключевого слова по UID. Доступно администратору и автору.
// @Tags Keywords
// @Produce  json
// @Param id path string true "UID ключевого слова"
// @Security BearerAuth
// @Success 200 {object} map[string]any "Ключевое слово удалено"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Ключевое слово не найдено"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /keywords/{id} [delete]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.keyword.remove"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if _, err := uuid.Parse(id); err != nil {
		log.Error("invalid keyword id", slog.String("id", id))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	if err := h.service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("keyword not found", slog.String("keyword_uid", id))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("keyword not found"))
			return
		}
		log.Error("failed to remove keyword", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not remove keyword"))
		return
	}

	log.Info("keyword removed", slog.String("keyword_uid", id))
	render.JSON(w, r, response.OKWithData(map[string]any{
		"id": id,
	}))
}
