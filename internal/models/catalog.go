package models

// Station представляет станцию обслуживания. AdminName и AdminEmail
// подтягиваются из связанного пользователя-администратора, если он назначен.
type Station struct {
	ID         int     `json:"id"`
	Name       string  `json:"name"`
	Address    string  `json:"address"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	AdminID    *int    `json:"admin_id,omitempty"`
	AdminName  *string `json:"admin_name,omitempty"`
	AdminEmail *string `json:"admin_email,omitempty"`
}

// Service представляет услугу из каталога с базовой ценой.
type Service struct {
	ID              int     `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	BasePrice       float64 `json:"base_price"`
	DurationMinutes int     `json:"duration_minutes"`
}

// StationService представляет услугу с ценой, действующей на конкретной
// станции: переопределение из service_pricing либо базовая цена услуги.
type StationService struct {
	Service
	Price float64 `json:"price"`
}
