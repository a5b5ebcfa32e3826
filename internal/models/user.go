// Package models содержит доменные структуры автосервиса: пользователей,
// станции обслуживания, каталог услуг и бронирования, а также
// вспомогательные типы для приёма данных из JSON-запросов.
package models

import "time"

// Роли пользователей системы.
const (
	RoleClient       = "client"
	RoleStationAdmin = "station_admin"
)

// User представляет зарегистрированного пользователя системы.
// PasswordHash никогда не сериализуется в ответах API.
type User struct {
	ID               int       `json:"id"`
	Email            string    `json:"email"`
	PasswordHash     string    `json:"-"`
	Name             string    `json:"name"`
	Phone            string    `json:"phone"`
	Role             string    `json:"role"`
	ServiceStationID *int      `json:"service_station_id,omitempty"`
	StationName      *string   `json:"station_name,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

// DummyUser используется для приёма данных регистрации из JSON-запроса,
// прежде чем конвертировать их в User.
type DummyUser struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	Name             string `json:"name" validate:"required"`
	Phone            string `json:"phone" validate:"required"`
	Role             string `json:"role" validate:"omitempty,oneof=client station_admin"`
	ServiceStationID *int   `json:"service_station_id"`
}
