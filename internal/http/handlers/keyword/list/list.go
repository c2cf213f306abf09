// Package list реализует HTTP-обработчик получения ключевых слов видео.
package list

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/magabrotheeeer/english-learning-platform/internal/http/response"
	"github.com/magabrotheeeer/english-learning-platform/internal/lib/sl"
	"github.com/magabrotheeeer/english-learning-platform/internal/models"
)

// Service описывает интерфейс бизнес-логики получения ключевых слов.
type Service interface {
	ListByVideo(ctx context.Context, videoUID string) ([]*models.Keyword, error)
}

// Handler управляет HTTP-запросами на получение ключевых слов видео.
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{log: log, service: service}
}

// ServeHTTP godoc
// @Summary Получить ключевые слова видео
// @Description Возвращает все карточки ключевых слов видео в порядке добавления.
// @Tags Keywords
// @Produce  json
// @Param videoId path string true "UID видео"
// @Security BearerAuth
// @Success 200 {object} map[string]any "Список ключевых слов"
// @Failure 400 {object} response.ErrorResponse "Некорректный идентификатор"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /keywords/{videoId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.keyword.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	videoID := chi.URLParam(r, "videoId")
	if _, err := uuid.Parse(videoID); err != nil {
		log.Error("invalid video id", slog.String("id", videoID))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	keywords, err := h.service.ListByVideo(r.Context(), videoID)
	if err != nil {
		log.Error("failed to list keywords", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list keywords"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"count":    len(keywords),
		"keywords": keywords,
	}))
}
