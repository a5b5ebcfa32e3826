// Package read реализует HTTP-обработчик чтения одного бронирования.
//
// Клиент видит только собственные бронирования, station_admin — любые.
package read

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/OmKardile/online-car-service-station/internal/http/middlewarectx"
	"github.com/OmKardile/online-car-service-station/internal/http/response"
	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
	"github.com/OmKardile/online-car-service-station/internal/models"
	bookingservice "github.com/OmKardile/online-car-service-station/internal/services/booking"
)

// Handler обрабатывает HTTP-запросы на чтение бронирования.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики чтения бронирования.
type Service interface {
	Read(ctx context.Context, id int) (*models.Booking, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Получить бронирование
// @Description Возвращает бронирование по ID. Клиент видит только свои бронирования.
// @Tags Bookings
// @Produce  json
// @Param bookingId path int true "ID бронирования"
// @Success 200 {object} map[string]any "Бронирование"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 403 {object} response.ErrorResponse "Чужое бронирование"
// @Failure 404 {object} response.ErrorResponse "Бронирование не найдено"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /bookings/{bookingId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.read"

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

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok || userID == 0 {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	booking, err := h.service.Read(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrBookingNotFound):
			log.Info("booking not found", slog.Int("booking_id", bookingID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("booking not found"))
		default:
			log.Error("failed to read booking", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to read booking"))
		}
		return
	}

	role, _ := r.Context().Value(middlewarectx.Role).(string)
	if role != models.RoleStationAdmin && booking.ClientID != userID {
		log.Info("booking belongs to another client",
			slog.Int("booking_id", bookingID), slog.Int("user_id", userID))
		w.WriteHeader(http.StatusForbidden)
		render.JSON(w, r, response.Error("forbidden"))
		return
	}

	log.Info("booking read", slog.Int("id", booking.ID))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"booking": booking,
	}))
}
