// Package services содержит логику бизнес-уровня для работы с пользователями и аутентификацией.
package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/OmKardile/online-car-service-station/internal/lib/jwt"
	"github.com/OmKardile/online-car-service-station/internal/lib/password"
	"github.com/OmKardile/online-car-service-station/internal/models"
)

// ErrEmailTaken возвращается при попытке зарегистрировать уже занятый email.
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials возвращается при неверном пароле или неизвестном email.
// Текст одинаков для обоих случаев, чтобы не раскрывать, что именно не совпало.
var ErrInvalidCredentials = errors.New("invalid credentials")

// UserRepository описывает контракт для работы с пользователями в базе данных.
type UserRepository interface {
	// RegisterUser сохраняет нового пользователя и возвращает созданную запись.
	RegisterUser(ctx context.Context, user models.User) (*models.User, error)

	// GetUserByEmail возвращает пользователя по email или обёрнутый sql.ErrNoRows.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// EmailExists проверяет, зарегистрирован ли email.
	EmailExists(ctx context.Context, email string) (bool, error)
}

// AuthService отвечает за регистрацию, авторизацию и валидацию JWT.
type AuthService struct {
	users    UserRepository
	jwtMaker jwt.Maker
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users UserRepository, jwtMaker jwt.Maker) *AuthService {
	return &AuthService{
		users:    users,
		jwtMaker: jwtMaker,
	}
}

// Register создает нового пользователя с хэшированием пароля и выдает JWT.
// Роль по умолчанию — client.
func (s *AuthService) Register(ctx context.Context, req models.DummyUser) (*models.User, string, error) {
	exists, err := s.users.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", ErrEmailTaken
	}

	hashed, err := password.GetHash(req.Password)
	if err != nil {
		return nil, "", err
	}
	role := req.Role
	if role == "" {
		role = models.RoleClient // дефолтная роль при регистрации
	}
	user := models.User{
		Email:            req.Email,
		PasswordHash:     hashed,
		Name:             req.Name,
		Phone:            req.Phone,
		Role:             role,
		ServiceStationID: req.ServiceStationID,
	}
	created, err := s.users.RegisterUser(ctx, user)
	if err != nil {
		return nil, "", err
	}

	token, err := s.jwtMaker.GenerateToken(created.ID, created.Email, created.Role)
	if err != nil {
		return nil, "", err
	}
	return created, token, nil
}

// Login проверяет пароль пользователя и генерирует JWT.
// Неизвестный email и неверный пароль дают одну и ту же ошибку.
func (s *AuthService) Login(ctx context.Context, email, rawPassword string) (*models.User, string, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := password.CompareHash(user.PasswordHash, rawPassword); err != nil {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.jwtMaker.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// ValidateToken проверяет JWT и возвращает информацию о пользователе.
func (s *AuthService) ValidateToken(_ context.Context, token string) (*models.User, error) {
	claims, err := s.jwtMaker.ParseToken(token)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		ID:    claims.UserID,
		Email: claims.Email,
		Role:  claims.Role,
	}
	return user, nil
}
