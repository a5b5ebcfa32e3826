// Package carservice предоставляет маршруты основного приложения.
package carservice

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/OmKardile/online-car-service-station/internal/chat"
	"github.com/OmKardile/online-car-service-station/internal/http/handlers/auth/login"
	"github.com/OmKardile/online-car-service-station/internal/http/handlers/auth/register"
	bookingcreate "github.com/OmKardile/online-car-service-station/internal/http/handlers/booking/create"
	bookinglist "github.com/OmKardile/online-car-service-station/internal/http/handlers/booking/list"
	bookingread "github.com/OmKardile/online-car-service-station/internal/http/handlers/booking/read"
	bookingstatus "github.com/OmKardile/online-car-service-station/internal/http/handlers/booking/status"
	catalogservices "github.com/OmKardile/online-car-service-station/internal/http/handlers/catalog/services"
	"github.com/OmKardile/online-car-service-station/internal/http/handlers/catalog/stations"
	"github.com/OmKardile/online-car-service-station/internal/http/handlers/catalog/stationservices"
	"github.com/OmKardile/online-car-service-station/internal/http/handlers/chat/ws"
	"github.com/OmKardile/online-car-service-station/internal/http/handlers/health"
	"github.com/OmKardile/online-car-service-station/internal/http/middlewarectx"
	authservice "github.com/OmKardile/online-car-service-station/internal/services/auth"
	bookingservice "github.com/OmKardile/online-car-service-station/internal/services/booking"
	catalogservice "github.com/OmKardile/online-car-service-station/internal/services/catalog"
	"github.com/OmKardile/online-car-service-station/internal/storage/repository"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger,
	authService *authservice.AuthService,
	catalogService *catalogservice.CatalogService,
	bookingService *bookingservice.BookingService,
	db *repository.Storage,
	hub *chat.Hub,
) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)

	r.Route("/api", func(r chi.Router) {
		// Открытые конечные точки
		r.Post("/auth/register", register.New(logger, authService).ServeHTTP)
		r.Post("/auth/login", login.New(logger, authService).ServeHTTP)
		r.Get("/health", health.New(logger, db).ServeHTTP)

		// Каталог доступен без авторизации
		r.Get("/services", catalogservices.New(logger, catalogService).ServeHTTP)
		r.Get("/services/stations", stations.New(logger, catalogService).ServeHTTP)
		r.Get("/services/station/{stationId}", stationservices.New(logger, catalogService).ServeHTTP)

		// Группа с JWT аутентификацией
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.JWTMiddleware(authService, logger))
			r.Use(middlewarectx.RateLimitMiddleware(logger))
			r.Post("/bookings", bookingcreate.New(logger, bookingService).ServeHTTP)
			r.Get("/bookings/{bookingId}", bookingread.New(logger, bookingService).ServeHTTP)
			r.Put("/bookings/{bookingId}/status", bookingstatus.New(logger, bookingService).ServeHTTP)
			r.Group(func(r chi.Router) {
				r.Use(middlewarectx.OwnerCheckMiddleware(logger))
				r.Get("/bookings/user/{userId}", bookinglist.New(logger, bookingService).ServeHTTP)
			})
		})

		// Socket-чат без аутентификации
		r.Get("/chat/ws/{bookingId}", ws.New(logger, hub).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
