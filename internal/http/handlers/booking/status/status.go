// Package status реализует HTTP-обработчик смены статуса бронирования.
//
// Переходы проверяются конечным автоматом: из pending можно перейти в
// confirmed или cancelled, из confirmed — в in_progress или cancelled,
// из in_progress — только в completed. Завершённые и отменённые
// бронирования менять нельзя.
package status

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/OmKardile/online-car-service-station/internal/http/response"
	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
	"github.com/OmKardile/online-car-service-station/internal/models"
	bookingservice "github.com/OmKardile/online-car-service-station/internal/services/booking"
)

// Request — структура входных данных для смены статуса.
type Request struct {
	Status string `json:"status" validate:"required"`
}

// Handler обрабатывает HTTP-запросы на смену статуса бронирования.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики смены статуса.
type Service interface {
	UpdateStatus(ctx context.Context, id int, newStatus string) (*models.Booking, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:      log,
		service:  service,
		validate: validator.New(),
	}
}

// ServeHTTP godoc
// @Summary Сменить статус бронирования
// @Description Переводит бронирование в новый статус, если переход разрешен жизненным циклом.
// @Tags Bookings
// @Accept  json
// @Produce  json
// @Param bookingId path int true "ID бронирования"
// @Param request body Request true "Новый статус"
// @Success 200 {object} map[string]any "Обновленное бронирование"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID, неизвестный статус или запрещенный переход"
// @Failure 404 {object} response.ErrorResponse "Бронирование не найдено"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /bookings/{bookingId}/status [put]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.status"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	bookingID, err := strconv.Atoi(chi.URLParam(r, "bookingId"))
	if err != nil || bookingID <= 0 {
		log.Error("invalid booking id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid booking id"))
		return
	}

	var req Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
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

	booking, err := h.service.UpdateStatus(r.Context(), bookingID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrBookingNotFound):
			log.Info("booking not found", slog.Int("booking_id", bookingID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("booking not found"))
		case errors.Is(err, bookingservice.ErrUnknownStatus):
			log.Info("unknown status", slog.String("status", req.Status))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error("unknown booking status"))
		case errors.Is(err, bookingservice.ErrInvalidTransition):
			log.Info("invalid status transition", slog.String("status", req.Status), sl.Err(err))
			w.WriteHeader(http.StatusBadRequest)
			render.JSON(w, r, response.Error(err.Error()))
		default:
			log.Error("failed to update booking status", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to update booking status"))
		}
		return
	}

	log.Info("booking status updated", slog.Int("id", booking.ID), slog.String("status", booking.Status))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"booking": booking,
	}))
}
