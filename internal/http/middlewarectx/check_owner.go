package middlewarectx

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"

	"github.com/OmKardile/online-car-service-station/internal/http/response"
	"github.com/OmKardile/online-car-service-station/internal/models"
)

// OwnerCheckMiddleware создает middleware, сверяющий userId из пути
// с ID авторизованного пользователя. Администраторы станций имеют
// доступ к бронированиям любых клиентов.
func OwnerCheckMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := r.Context().Value(UserID).(int)
			if !ok || userID == 0 {
				log.Error("user identification missing")
				w.WriteHeader(http.StatusUnauthorized)
				render.JSON(w, r, response.Error("user identification missing"))
				return
			}

			role, _ := r.Context().Value(Role).(string)
			if role == models.RoleStationAdmin {
				next.ServeHTTP(w, r)
				return
			}

			pathUserID, err := strconv.Atoi(chi.URLParam(r, "userId"))
			if err != nil || pathUserID != userID {
				log.Error("access to foreign bookings denied",
					slog.Int("user_id", userID), slog.String("path_user_id", chi.URLParam(r, "userId")))
				w.WriteHeader(http.StatusForbidden)
				render.JSON(w, r, response.Error("access denied"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
