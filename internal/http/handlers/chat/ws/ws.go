// Package ws реализует HTTP-обработчик подключения к чату бронирования.
//
// Соединение апгрейдится до WebSocket и регистрируется в комнате
// бронирования; все дальнейшие кадры ретранслируются остальным
// участникам комнаты. Аутентификация на socket-соединениях отсутствует.
package ws

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/gorilla/websocket"

	"github.com/OmKardile/online-car-service-station/internal/chat"
	"github.com/OmKardile/online-car-service-station/internal/http/response"
	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// Handler апгрейдит соединение и передает его чат-хабу.
type Handler struct {
	log *slog.Logger
	hub *chat.Hub
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, hub *chat.Hub) *Handler {
	return &Handler{
		log: log,
		hub: hub,
	}
}

// ServeHTTP godoc
// @Summary Подключение к чату бронирования
// @Description Апгрейдит соединение до WebSocket и подключает клиента к комнате бронирования.
// @Tags Chat
// @Param bookingId path string true "ID бронирования (имя комнаты)"
// @Success 101 "Переключение протокола"
// @Failure 400 {object} response.ErrorResponse "Отсутствует ID бронирования"
// @Router /chat/ws/{bookingId} [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.chat.ws"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	room := chi.URLParam(r, "bookingId")
	if room == "" {
		log.Error("missing booking id")
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("missing booking id"))
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade сам пишет ответ об ошибке.
		log.Error("failed to upgrade connection", sl.Err(err))
		return
	}

	h.hub.Serve(room, conn)
}
