// Package services содержит бизнес-логику каталога: станции обслуживания
// и услуги с ценами, действующими на конкретной станции, с кешированием.
package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/OmKardile/online-car-service-station/internal/models"
)

// CatalogRepository определяет методы для чтения каталога из хранилища.
type CatalogRepository interface {
	// ListStations возвращает все станции с данными администратора.
	ListStations(ctx context.Context) ([]*models.Station, error)
	// ListStationServices возвращает услуги с действующей ценой для станции.
	ListStationServices(ctx context.Context, stationID int) ([]*models.StationService, error)
	// ListServices возвращает полный каталог услуг.
	ListServices(ctx context.Context) ([]*models.Service, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	// Get пытается получить значение из кеша по ключу.
	Get(key string, result any) (bool, error)
	// Set сохраняет значение в кеш с временем жизни.
	Set(key string, value any, expiration time.Duration) error
	// Invalidate удаляет значение из кеша по ключу.
	Invalidate(key string) error
}

// CatalogService реализует чтение каталога с кешированием.
// Каталог статичен, поэтому записи живут в кеше час.
type CatalogService struct {
	repo  CatalogRepository
	cache Cache
	log   *slog.Logger
}

// NewCatalogService создает новый экземпляр CatalogService.
func NewCatalogService(repo CatalogRepository, cache Cache, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// ListStations возвращает станции обслуживания, используя кеш или репозиторий.
func (s *CatalogService) ListStations(ctx context.Context) ([]*models.Station, error) {
	const cacheKey = "stations"

	var result []*models.Station
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListStations(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache stations", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// ListStationServices возвращает услуги станции с действующими ценами,
// используя кеш или репозиторий.
func (s *CatalogService) ListStationServices(ctx context.Context, stationID int) ([]*models.StationService, error) {
	cacheKey := fmt.Sprintf("station_services:%d", stationID)

	var result []*models.StationService
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.ListStationServices(ctx, stationID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache station services", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// ListServices возвращает полный каталог услуг.
func (s *CatalogService) ListServices(ctx context.Context) ([]*models.Service, error) {
	return s.repo.ListServices(ctx)
}
