// Package services содержит планировщик напоминаний о предстоящих
// бронированиях.
package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/streadway/amqp"

	"github.com/OmKardile/online-car-service-station/internal/lib/rabbitmq"
	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
	"github.com/OmKardile/online-car-service-station/internal/models"
)

// BookingRepository описывает выборку бронирований для напоминаний.
type BookingRepository interface {
	FindBookingsDueTomorrow(ctx context.Context) ([]*models.ReminderInfo, error)
}

// SchedulerService периодически находит бронирования на завтра и
// публикует напоминания в очередь уведомлений.
type SchedulerService struct {
	repo BookingRepository
	log  *slog.Logger
}

// NewSchedulerService создает новый экземпляр SchedulerService.
func NewSchedulerService(repo BookingRepository, log *slog.Logger) *SchedulerService {
	return &SchedulerService{
		repo: repo,
		log:  log,
	}
}

// FindBookingsDueTomorrow запускает цикл поиска бронирований на завтра.
// Первый проход выполняется сразу, далее каждые 12 часов.
func (s *SchedulerService) FindBookingsDueTomorrow(ctx context.Context, channel *amqp.Channel) {
	s.runFindBookingsDueTomorrow(ctx, channel)

	ticker := time.NewTicker(12 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runFindBookingsDueTomorrow(ctx, channel)
		}
	}
}

func (s *SchedulerService) runFindBookingsDueTomorrow(ctx context.Context, channel *amqp.Channel) {
	s.log.Info("starting service to find bookings due tomorrow")
	reminders, err := s.repo.FindBookingsDueTomorrow(ctx)
	if err != nil {
		s.log.Error("failed to find bookings", sl.Err(err))
		return
	}
	if len(reminders) == 0 {
		s.log.Info("no upcoming bookings found")
		return
	}
	s.log.Info("found upcoming bookings", "count", len(reminders))
	for _, reminder := range reminders {
		err = rabbitmq.PublishMessage(channel, "notifications", rabbitmq.RoutingKeyReminder, reminder)
		if err != nil {
			s.log.Error("failed to publish message", sl.Err(err))
		}
	}
}
