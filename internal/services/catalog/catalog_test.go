package services_test

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/OmKardile/online-car-service-station/internal/models"
	services "github.com/OmKardile/online-car-service-station/internal/services/catalog"
)

type CatalogRepoMock struct {
	mock.Mock
}

func (m *CatalogRepoMock) ListStations(ctx context.Context) ([]*models.Station, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Station), args.Error(1)
}

func (m *CatalogRepoMock) ListStationServices(ctx context.Context, stationID int) ([]*models.StationService, error) {
	args := m.Called(ctx, stationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.StationService), args.Error(1)
}

func (m *CatalogRepoMock) ListServices(ctx context.Context) ([]*models.Service, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Service), args.Error(1)
}

type CacheMock struct {
	mock.Mock
}

func (m *CacheMock) Get(key string, result any) (bool, error) {
	args := m.Called(key, result)
	return args.Bool(0), args.Error(1)
}

func (m *CacheMock) Set(key string, value any, expiration time.Duration) error {
	args := m.Called(key, value, expiration)
	return args.Error(0)
}

func (m *CacheMock) Invalidate(key string) error {
	args := m.Called(key)
	return args.Error(0)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestCatalogService_ListStations_CacheMiss(t *testing.T) {
	repo := new(CatalogRepoMock)
	cache := new(CacheMock)
	svc := services.NewCatalogService(repo, cache, newTestLogger())

	stations := []*models.Station{
		{ID: 1, Name: "City Auto Care"},
		{ID: 2, Name: "Premium Car Services"},
	}

	cache.On("Get", "stations", mock.Anything).Return(false, nil).Once()
	repo.On("ListStations", mock.Anything).Return(stations, nil).Once()
	cache.On("Set", "stations", stations, time.Hour).Return(nil).Once()

	got, err := svc.ListStations(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, stations, got)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCatalogService_ListStations_CacheHit(t *testing.T) {
	repo := new(CatalogRepoMock)
	cache := new(CacheMock)
	svc := services.NewCatalogService(repo, cache, newTestLogger())

	cache.On("Get", "stations", mock.Anything).Return(true, nil).Once()

	_, err := svc.ListStations(context.Background())
	assert.NoError(t, err)

	repo.AssertNotCalled(t, "ListStations")
	cache.AssertExpectations(t)
}

func TestCatalogService_ListStationServices(t *testing.T) {
	repo := new(CatalogRepoMock)
	cache := new(CacheMock)
	svc := services.NewCatalogService(repo, cache, newTestLogger())

	stationServices := []*models.StationService{
		{Service: models.Service{ID: 1, Name: "Oil Change", BasePrice: 49.99}, Price: 54.99},
	}

	cache.On("Get", "station_services:2", mock.Anything).Return(false, nil).Once()
	repo.On("ListStationServices", mock.Anything, 2).Return(stationServices, nil).Once()
	cache.On("Set", "station_services:2", stationServices, time.Hour).Return(nil).Once()

	got, err := svc.ListStationServices(context.Background(), 2)
	assert.NoError(t, err)
	assert.Equal(t, stationServices, got)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestCatalogService_ListStationServices_CacheSetFailureIsNotFatal(t *testing.T) {
	repo := new(CatalogRepoMock)
	cache := new(CacheMock)
	svc := services.NewCatalogService(repo, cache, newTestLogger())

	stationServices := []*models.StationService{
		{Service: models.Service{ID: 1, Name: "Oil Change", BasePrice: 49.99}, Price: 49.99},
	}

	cache.On("Get", "station_services:1", mock.Anything).Return(false, nil).Once()
	repo.On("ListStationServices", mock.Anything, 1).Return(stationServices, nil).Once()
	cache.On("Set", "station_services:1", stationServices, time.Hour).Return(errors.New("redis down")).Once()

	got, err := svc.ListStationServices(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, stationServices, got)
}

func TestCatalogService_ListServices(t *testing.T) {
	repo := new(CatalogRepoMock)
	cache := new(CacheMock)
	svc := services.NewCatalogService(repo, cache, newTestLogger())

	allServices := []*models.Service{
		{ID: 1, Name: "Oil Change", BasePrice: 49.99},
		{ID: 5, Name: "Car Wash", BasePrice: 24.99},
	}
	repo.On("ListServices", mock.Anything).Return(allServices, nil).Once()

	got, err := svc.ListServices(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, allServices, got)

	repo.AssertExpectations(t)
}
