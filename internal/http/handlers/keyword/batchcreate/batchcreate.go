// Package batchcreate реализует HTTP-обработчик пакетного создания ключевых слов.
//
// Все карточки из запроса привязываются к одному видео и сохраняются одной
// транзакцией с сохранением порядка из запроса.
package batchcreate

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/english-learning-platform/internal/http/response"
	"github.com/magabrotheeeer/english-learning-platform/internal/lib/sl"
	"github.com/magabrotheeeer/english-learning-platform/internal/models"
	"github.com/magabrotheeeer/english-learning-platform/internal/storage/repository"
)

// Request содержит данные запроса на пакетное создание ключевых слов.
type Request struct {
	VideoID  string                `json:"video_id" validate:"required,uuid"`
	Keywords []models.DummyKeyword `json:"keywords" validate:"required,min=1,dive"`
}

// Service описывает интерфейс бизнес-логики создания ключевых слов.
type Service interface {
	BatchCreate(ctx context.Context, videoUID string, items []models.DummyKeyword) ([]string, error)
}

// Handler управляет HTTP-запросами на пакетное создание ключевых слов.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Пакетно создать ключевые слова
// @Description Привязывает набор карточек ключевых слов к видео. Доступно администратору и автору.
// @Tags Keywords
// @Accept  json
// @Produce  json
// @Param request body Request true "Видео и список карточек"
// @Security BearerAuth
// @Success 201 {object} map[string]any "Ключевые слова созданы"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Недостаточно прав"
// @Failure 404 {object} response.ErrorResponse "Видео не найдено"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /keywords/batch [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.keyword.batchcreate"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}

	uids, err := h.service.BatchCreate(r.Context(), req.VideoID, req.Keywords)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("video not found", slog.String("video_uid", req.VideoID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("video not found"))
			return
		}
		log.Error("failed to create keywords", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not create keywords"))
		return
	}

	log.Info("keywords created",
		slog.String("video_uid", req.VideoID),
		slog.Int("count", len(uids)))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.OKWithData(map[string]any{
		"ids":   uids,
		"count": len(uids),
	}))
}
