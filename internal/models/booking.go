package models

import "time"

// Статусы бронирования.
const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Booking представляет бронирование услуги клиентом на станции обслуживания.
// FinalPrice фиксируется в момент создания и больше не пересчитывается,
// даже если цены в каталоге изменятся. ServiceName и StationName
// заполняются только при чтении списка бронирований (join с каталогом).
type Booking struct {
	ID                  int       `json:"id"`
	ClientID            int       `json:"client_id"`
	ServiceID           int       `json:"service_id"`
	ServiceStationID    int       `json:"service_station_id"`
	BookingDate         time.Time `json:"booking_date"`
	BookingTime         string    `json:"booking_time"`
	FinalPrice          float64   `json:"final_price"`
	Status              string    `json:"status"`
	SpecialInstructions *string   `json:"special_instructions,omitempty"`
	QuotationText       string    `json:"quotation_text"`
	CreatedAt           time.Time `json:"created_at"`
	ServiceName         string    `json:"service_name,omitempty"`
	StationName         string    `json:"station_name,omitempty"`
}

// DummyBooking используется для приёма данных из JSON-запроса на создание
// бронирования. Ключи в camelCase — это внешний контракт API для мобильного
// клиента. Дата приходит строкой, чтобы её можно было валидировать
// и парсить вручную.
type DummyBooking struct {
	ServiceID           int    `json:"serviceId" validate:"required,gt=0"`
	StationID           int    `json:"stationId" validate:"required,gt=0"`
	ClientID            int    `json:"clientId" validate:"required,gt=0"`
	Date                string `json:"date" validate:"required,datetime=2006-01-02"`
	Time                string `json:"time" validate:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

// ReminderInfo содержит данные бронирования для письма-напоминания клиенту.
type ReminderInfo struct {
	Email       string    `json:"email"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	StationName string    `json:"station_name"`
	BookingDate time.Time `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
}

// StatusEvent описывает смену статуса бронирования, публикуемую в очередь
// уведомлений.
type StatusEvent struct {
	BookingID   int       `json:"booking_id"`
	Email       string    `json:"email"`
	ClientName  string    `json:"client_name"`
	ServiceName string    `json:"service_name"`
	StationName string    `json:"station_name"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	BookingDate time.Time `json:"booking_date"`
	BookingTime string    `json:"booking_time"`
}
