// Package services содержит бизнес-логику бронирований: определение
// действующей цены, создание бронирования с квитанцией, чтение списка
// бронирований клиента и смену статусов по конечному автомату.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/OmKardile/online-car-service-station/internal/lib/rabbitmq"
	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
	"github.com/OmKardile/online-car-service-station/internal/models"
)

// ErrServiceNotFound возвращается, если услуга не существует.
var ErrServiceNotFound = errors.New("service not found")

// ErrStationNotFound возвращается, если станция обслуживания не существует.
var ErrStationNotFound = errors.New("service station not found")

// ErrBookingNotFound возвращается, если бронирование не существует.
var ErrBookingNotFound = errors.New("booking not found")

// ErrUnknownStatus возвращается, если значение статуса не входит в перечисление.
var ErrUnknownStatus = errors.New("unknown booking status")

// ErrInvalidTransition возвращается при недопустимом переходе между статусами.
var ErrInvalidTransition = errors.New("invalid status transition")

// BookingRepository определяет методы для работы с бронированиями в хранилище.
type BookingRepository interface {
	// ResolvePrice возвращает название услуги и действующую цену на станции.
	ResolvePrice(ctx context.Context, serviceID, stationID int) (string, float64, error)
	// GetStationName возвращает название станции.
	GetStationName(ctx context.Context, stationID int) (string, error)
	// CreateBooking вставляет бронирование и возвращает созданную строку.
	CreateBooking(ctx context.Context, booking models.Booking) (*models.Booking, error)
	// ListUserBookings возвращает бронирования клиента, новые первыми.
	ListUserBookings(ctx context.Context, clientID int) ([]*models.Booking, error)
	// GetBooking возвращает бронирование по ID.
	GetBooking(ctx context.Context, id int) (*models.Booking, error)
	// UpdateBookingStatus перезаписывает статус и возвращает обновлённую строку.
	UpdateBookingStatus(ctx context.Context, id int, status string) (*models.Booking, error)
	// GetBookingNotificationInfo собирает данные бронирования для уведомления.
	GetBookingNotificationInfo(ctx context.Context, id int) (*models.StatusEvent, error)
}

// Cache описывает методы для кэширования данных.
type Cache interface {
	Get(key string, result any) (bool, error)
	Set(key string, value any, expiration time.Duration) error
	Invalidate(key string) error
}

// EventPublisher публикует события бронирований в очередь уведомлений.
type EventPublisher interface {
	Publish(routingKey string, message any) error
}

// BookingService реализует бизнес-логику бронирований.
type BookingService struct {
	repo      BookingRepository
	cache     Cache
	publisher EventPublisher
	log       *slog.Logger
}

// NewBookingService создает новый экземпляр BookingService.
func NewBookingService(repo BookingRepository, cache Cache, publisher EventPublisher, log *slog.Logger) *BookingService {
	return &BookingService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// Create создает бронирование: определяет действующую цену, фиксирует её
// как final_price, формирует текст квитанции с настоящими названиями услуги
// и станции и вставляет запись одним запросом.
func (s *BookingService) Create(ctx context.Context, req models.DummyBooking) (*models.Booking, error) {
	bookingDate, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date: %w", err)
	}

	serviceName, price, err := s.repo.ResolvePrice(ctx, req.ServiceID, req.StationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	stationName, err := s.repo.GetStationName(ctx, req.StationID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStationNotFound
		}
		return nil, err
	}

	quotation := fmt.Sprintf("Service Booking Quotation:\nService: %s\nStation: %s\nDate: %s\nTime: %s\nTotal: $%.2f",
		serviceName, stationName, bookingDate.Format("2006-01-02"), req.Time, price)

	booking := models.Booking{
		ClientID:         req.ClientID,
		ServiceID:        req.ServiceID,
		ServiceStationID: req.StationID,
		BookingDate:      bookingDate,
		BookingTime:      req.Time,
		FinalPrice:       price,
		Status:           models.StatusPending,
		QuotationText:    quotation,
	}
	if req.SpecialInstructions != "" {
		booking.SpecialInstructions = &req.SpecialInstructions
	}

	created, err := s.repo.CreateBooking(ctx, booking)
	if err != nil {
		return nil, err
	}
	s.log.Info("created new booking", slog.Int("id", created.ID))

	cacheKey := fmt.Sprintf("booking:%d", created.ID)
	if err := s.cache.Set(cacheKey, created, time.Hour); err != nil {
		s.log.Warn("failed to cache booking", slog.String("key", cacheKey), slog.Any("err", err))
	}

	return created, nil
}

// ListUserBookings возвращает бронирования клиента с названиями услуги
// и станции, новые первыми.
func (s *BookingService) ListUserBookings(ctx context.Context, clientID int) ([]*models.Booking, error) {
	return s.repo.ListUserBookings(ctx, clientID)
}

// Read возвращает бронирование по ID, используя кеш или репозиторий.
func (s *BookingService) Read(ctx context.Context, id int) (*models.Booking, error) {
	var result *models.Booking
	cacheKey := fmt.Sprintf("booking:%d", id)
	found, err := s.cache.Get(cacheKey, &result)
	if err != nil {
		return nil, err
	}
	if found {
		return result, nil
	}

	result, err = s.repo.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if err := s.cache.Set(cacheKey, result, time.Hour); err != nil {
		s.log.Warn("failed to cache booking", slog.String("key", cacheKey), slog.Any("err", err))
	}
	return result, nil
}

// UpdateStatus переводит бронирование в новый статус, если переход разрешён
// конечным автоматом, инвалидирует кеш и публикует событие в очередь
// уведомлений. Ошибка публикации не считается ошибкой операции.
func (s *BookingService) UpdateStatus(ctx context.Context, id int, newStatus string) (*models.Booking, error) {
	if !KnownStatus(newStatus) {
		return nil, ErrUnknownStatus
	}

	current, err := s.repo.GetBooking(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if !CanTransition(current.Status, newStatus) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
	}

	updated, err := s.repo.UpdateBookingStatus(ctx, id, newStatus)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	s.log.Info("updated booking status", slog.Int("id", id),
		slog.String("from", current.Status), slog.String("to", newStatus))

	cacheKey := fmt.Sprintf("booking:%d", id)
	if err := s.cache.Invalidate(cacheKey); err != nil {
		s.log.Warn("failed to invalidate booking cache", slog.String("key", cacheKey), slog.Any("err", err))
	}

	s.publishStatusEvent(ctx, id, current.Status)

	return updated, nil
}

func (s *BookingService) publishStatusEvent(ctx context.Context, id int, oldStatus string) {
	event, err := s.repo.GetBookingNotificationInfo(ctx, id)
	if err != nil {
		s.log.Error("failed to collect status event info", sl.Err(err))
		return
	}
	event.OldStatus = oldStatus

	if err := s.publisher.Publish(rabbitmq.RoutingKeyStatus, event); err != nil {
		s.log.Error("failed to publish status event", sl.Err(err))
	}
}
