// Package list реализует HTTP-обработчик списка бронирований пользователя.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/OmKardile/online-car-service-station/internal/http/response"
	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
	"github.com/OmKardile/online-car-service-station/internal/models"
)

// Handler обрабатывает запросы списка бронирований.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики списка бронирований.
type Service interface {
	ListUserBookings(ctx context.Context, clientID int) ([]*models.Booking, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Бронирования пользователя
// @Description Возвращает бронирования клиента с названиями услуги и станции, новые первыми.
// @Tags Bookings
// @Produce  json
// @Param userId path int true "ID клиента"
// @Success 200 {object} map[string]any "Список бронирований"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID пользователя"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /bookings/user/{userId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.list"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	userID, err := strconv.Atoi(chi.URLParam(r, "userId"))
	if err != nil || userID <= 0 {
		log.Error("invalid user id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid user id"))
		return
	}

	bookings, err := h.service.ListUserBookings(r.Context(), userID)
	if err != nil {
		log.Error("failed to list bookings", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list bookings"))
		return
	}

	log.Info("bookings listed", slog.Int("user_id", userID), "count", len(bookings))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":    len(bookings),
		"bookings": bookings,
	}))
}
