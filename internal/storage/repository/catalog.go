package repository

import (
	"context"
	"fmt"

	"github.com/OmKardile/online-car-service-station/internal/models"
)

// ListStations возвращает все станции обслуживания с данными администратора,
// отсортированные по названию.
func (s *Storage) ListStations(ctx context.Context) ([]*models.Station, error) {
	const op = "storage.ListStations"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT ss.id, ss.name, ss.address, ss.phone, ss.email, ss.admin_id,
				  u.name, u.email
			  FROM service_stations ss
			  LEFT JOIN users u ON ss.admin_id = u.id
			  ORDER BY ss.name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Station
	for rows.Next() {
		var item models.Station
		if err := rows.Scan(&item.ID, &item.Name, &item.Address, &item.Phone,
			&item.Email, &item.AdminID, &item.AdminName, &item.AdminEmail); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListStationServices возвращает услуги с действующей ценой для станции:
// переопределение из service_pricing либо базовая цена услуги.
func (s *Storage) ListStationServices(ctx context.Context, stationID int) ([]*models.StationService, error) {
	const op = "storage.ListStationServices"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT s.id, s.name, s.description, s.base_price, s.duration_minutes,
				  COALESCE(sp.price, s.base_price) AS price
			  FROM services s
			  LEFT JOIN service_pricing sp
				  ON s.id = sp.service_id AND sp.service_station_id = $1
			  ORDER BY s.name`
	rows, err := s.DB.QueryContext(ctx, query, stationID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.StationService
	for rows.Next() {
		var item models.StationService
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice,
			&item.DurationMinutes, &item.Price); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ListServices возвращает полный каталог услуг, отсортированный по названию.
func (s *Storage) ListServices(ctx context.Context) ([]*models.Service, error) {
	const op = "storage.ListServices"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT id, name, description, base_price, duration_minutes
			  FROM services ORDER BY name`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var result []*models.Service
	for rows.Next() {
		var item models.Service
		if err := rows.Scan(&item.ID, &item.Name, &item.Description, &item.BasePrice,
			&item.DurationMinutes); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// ResolvePrice возвращает название услуги и цену, действующую на станции:
// переопределение из service_pricing, если оно есть, иначе базовую цену.
// Возвращает обёрнутый sql.ErrNoRows, если услуга не существует.
func (s *Storage) ResolvePrice(ctx context.Context, serviceID, stationID int) (string, float64, error) {
	const op = "storage.ResolvePrice"
	select {
	case <-ctx.Done():
		return "", 0, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT s.name, COALESCE(sp.price, s.base_price) AS price
			  FROM services s
			  LEFT JOIN service_pricing sp
				  ON s.id = sp.service_id AND sp.service_station_id = $2
			  WHERE s.id = $1`
	var name string
	var price float64
	if err := s.DB.QueryRowContext(ctx, query, serviceID, stationID).Scan(&name, &price); err != nil {
		return "", 0, fmt.Errorf("%s: %w", op, err)
	}
	return name, price, nil
}

// GetStationName возвращает название станции по её ID.
// Возвращает обёрнутый sql.ErrNoRows, если станция не существует.
func (s *Storage) GetStationName(ctx context.Context, stationID int) (string, error) {
	const op = "storage.GetStationName"
	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var name string
	query := `SELECT name FROM service_stations WHERE id = $1`
	if err := s.DB.QueryRowContext(ctx, query, stationID).Scan(&name); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return name, nil
}
