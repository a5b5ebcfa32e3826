// Package stations реализует HTTP-обработчик списка станций обслуживания.
package stations

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/OmKardile/online-car-service-station/internal/http/response"
	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
	"github.com/OmKardile/online-car-service-station/internal/models"
)

// Handler обрабатывает запросы списка станций.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога станций.
type Service interface {
	ListStations(ctx context.Context) ([]*models.Station, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Список станций обслуживания
// @Description Возвращает все станции с данными администратора.
// @Tags Catalog
// @Produce  json
// @Success 200 {object} map[string]any "Список станций"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /services/stations [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.stations"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stations, err := h.service.ListStations(r.Context())
	if err != nil {
		log.Error("failed to list stations", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list stations"))
		return
	}

	log.Info("stations listed", "count", len(stations))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":    len(stations),
		"stations": stations,
	}))
}
