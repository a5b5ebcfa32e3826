package rabbitmq

// QueueConfig описывает очередь и ключ маршрутизации в exchange "notifications".
type QueueConfig struct {
	QueueName  string
	RoutingKey string
}

// Ключи маршрутизации событий бронирований.
const (
	RoutingKeyReminder = "booking.reminder"
	RoutingKeyStatus   = "booking.status"
)

// Имена очередей уведомлений.
const (
	QueueBookingReminder = "booking_reminder_queue"
	QueueBookingStatus   = "booking_status_queue"
)

// GetNotificationQueues возвращает очереди уведомлений о бронированиях.
func GetNotificationQueues() []QueueConfig {
	return []QueueConfig{
		{QueueName: QueueBookingReminder, RoutingKey: RoutingKeyReminder},
		{QueueName: QueueBookingStatus, RoutingKey: RoutingKeyStatus},
	}
}
