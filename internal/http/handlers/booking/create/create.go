// Package create реализует HTTP-обработчик создания бронирования.
//
// Handler принимает JSON с данными бронирования, валидирует их, вызывает
// бизнес-логику, которая фиксирует действующую цену и формирует текст
// квитанции, и возвращает созданное бронирование.
package create

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"github.com/OmKardile/online-car-service-station/internal/http/middlewarectx"
	"github.com/OmKardile/online-car-service-station/internal/http/response"
	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
	"github.com/OmKardile/online-car-service-station/internal/models"
	bookingservice "github.com/OmKardile/online-car-service-station/internal/services/booking"
)

// Handler обрабатывает HTTP-запросы на создание бронирований.
type Handler struct {
	log      *slog.Logger
	service  Service
	validate *validator.Validate
}

// Service описывает интерфейс бизнес-логики создания бронирования.
type Service interface {
	Create(ctx context.Context, req models.DummyBooking) (*models.Booking, error)
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
// @Summary Создать бронирование
// @Description Создает бронирование: фиксирует действующую на станции цену и формирует текст квитанции.
// @Tags Bookings
// @Accept  json
// @Produce  json
// @Param request body models.DummyBooking true "Данные бронирования"
// @Success 201 {object} map[string]any "Бронирование создано"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Пользователь не авторизован"
// @Failure 404 {object} response.ErrorResponse "Услуга или станция не найдена"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /bookings [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.booking.create"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.DummyBooking
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.Any("request", req))

	userID, ok := r.Context().Value(middlewarectx.UserID).(int)
	if !ok || userID == 0 {
		log.Error("user id not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}
	// Клиент может бронировать только от своего имени.
	req.ClientID = userID

	if err := h.validate.Struct(req); err != nil {
		log.Error("validation failed", sl.Err(err))
		w.WriteHeader(http.StatusUnprocessableEntity)
		render.JSON(w, r, response.ValidationError(err.(validator.ValidationErrors)))
		return
	}
	log.Info("all fields are validated")

	booking, err := h.service.Create(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookingservice.ErrServiceNotFound):
			log.Info("service not found", slog.Int("service_id", req.ServiceID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("service not found"))
		case errors.Is(err, bookingservice.ErrStationNotFound):
			log.Info("station not found", slog.Int("station_id", req.StationID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("service station not found"))
		default:
			log.Error("failed to create booking", sl.Err(err))
			w.WriteHeader(http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create booking"))
		}
		return
	}

	log.Info("booking created", slog.Int("id", booking.ID))
	w.WriteHeader(http.StatusCreated)
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"booking": booking,
	}))
}
