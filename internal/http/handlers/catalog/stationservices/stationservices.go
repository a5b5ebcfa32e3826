// Package stationservices реализует HTTP-обработчик списка услуг станции
// с действующими для неё ценами.
package stationservices

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

// Handler обрабатывает запросы услуг конкретной станции.
type Handler struct {
	log     *slog.Logger
	service Service
}

// Service описывает интерфейс бизнес-логики каталога услуг.
type Service interface {
	ListStationServices(ctx context.Context, stationID int) ([]*models.StationService, error)
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Услуги станции с ценами
// @Description Возвращает услуги с ценой для указанной станции: переопределение станции, иначе базовая цена.
// @Tags Catalog
// @Produce  json
// @Param stationId path int true "ID станции"
// @Success 200 {object} map[string]any "Список услуг с ценами"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID станции"
// @Failure 500 {object} response.ErrorResponse "Внутренняя ошибка сервера"
// @Router /services/station/{stationId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.catalog.stationservices"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	stationID, err := strconv.Atoi(chi.URLParam(r, "stationId"))
	if err != nil || stationID <= 0 {
		log.Error("invalid station id", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid station id"))
		return
	}

	services, err := h.service.ListStationServices(r.Context(), stationID)
	if err != nil {
		log.Error("failed to list station services", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to list station services"))
		return
	}

	log.Info("station services listed", slog.Int("station_id", stationID), "count", len(services))
	render.JSON(w, r, response.StatusOKWithData(map[string]any{
		"count":    len(services),
		"services": services,
	}))
}
