package repository

import (
	"context"
	"fmt"

	"github.com/OmKardile/online-car-service-station/internal/models"
)

// RegisterUser вставляет нового пользователя и возвращает созданную запись.
func (s *Storage) RegisterUser(ctx context.Context, user models.User) (*models.User, error) {
	const op = "storage.RegisterUser"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `INSERT INTO users (email, password_hash, name, phone, role, service_station_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at`
	result := user
	err := s.DB.QueryRowContext(ctx, query,
		user.Email, user.PasswordHash, user.Name, user.Phone, user.Role,
		user.ServiceStationID).Scan(&result.ID, &result.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// GetUserByEmail возвращает пользователя по email вместе с названием
// привязанной станции, если она есть. Возвращает обёрнутый sql.ErrNoRows,
// если пользователь не найден.
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const op = "storage.GetUserByEmail"
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	query := `SELECT u.id, u.email, u.password_hash, u.name, u.phone, u.role,
				  u.service_station_id, ss.name, u.created_at
			  FROM users u
			  LEFT JOIN service_stations ss ON u.service_station_id = ss.id
			  WHERE u.email = $1`
	row := s.DB.QueryRowContext(ctx, query, email)

	var result models.User
	if err := row.Scan(&result.ID, &result.Email, &result.PasswordHash, &result.Name,
		&result.Phone, &result.Role, &result.ServiceStationID, &result.StationName,
		&result.CreatedAt); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &result, nil
}

// EmailExists проверяет, зарегистрирован ли уже указанный email.
func (s *Storage) EmailExists(ctx context.Context, email string) (bool, error) {
	const op = "storage.EmailExists"
	select {
	case <-ctx.Done():
		return false, fmt.Errorf("%s: %w", op, ctx.Err())
	default:
	}

	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	if err := s.DB.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}
	return exists, nil
}
