// Package chat реализует ретрансляцию сообщений между участниками
// комнаты бронирования поверх WebSocket. Сообщения не сохраняются,
// порядок доставки не гарантируется сверх гарантий транспорта.
package chat

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/OmKardile/online-car-service-station/internal/lib/sl"
)

// EventReceiveMessage помечает сообщение, ретранслированное другим
// участникам комнаты.
const EventReceiveMessage = "receive_message"

// Envelope оборачивает ретранслируемое сообщение.
type Envelope struct {
	Event  string          `json:"event"`
	Room   string          `json:"room"`
	Sender string          `json:"sender"`
	Data   json.RawMessage `json:"data"`
}

type member struct {
	conn *websocket.Conn
	// Конкурентные записи в одно соединение запрещены gorilla/websocket.
	writeMu sync.Mutex
}

func (m *member) send(payload []byte) error {
	m.writeMu.Lock()
	defer m.writeMu.Unlock()
	return m.conn.WriteMessage(websocket.TextMessage, payload)
}

// Hub хранит комнаты и их участников.
type Hub struct {
	mu    sync.RWMutex
	rooms map[string]map[string]*member
	log   *slog.Logger
}

// NewHub создает новый экземпляр Hub.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		rooms: make(map[string]map[string]*member),
		log:   log,
	}
}

// Join регистрирует соединение в комнате и возвращает ID участника.
func (h *Hub) Join(room string, conn *websocket.Conn) string {
	id := uuid.NewString()

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[string]*member)
	}
	h.rooms[room][id] = &member{conn: conn}

	h.log.Info("client joined chat room", "room", room, "client_id", id)
	return id
}

// Leave убирает участника из комнаты. Пустая комната удаляется.
func (h *Hub) Leave(room, id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	members, ok := h.rooms[room]
	if !ok {
		return
	}
	delete(members, id)
	if len(members) == 0 {
		delete(h.rooms, room)
	}

	h.log.Info("client left chat room", "room", room, "client_id", id)
}

// Broadcast ретранслирует сообщение всем участникам комнаты, кроме
// отправителя, как событие receive_message.
func (h *Hub) Broadcast(room, senderID string, data []byte) {
	envelope := Envelope{
		Event:  EventReceiveMessage,
		Room:   room,
		Sender: senderID,
		Data:   data,
	}
	payload, err := json.Marshal(envelope)
	if err != nil {
		h.log.Error("failed to marshal chat envelope", sl.Err(err))
		return
	}

	h.mu.RLock()
	receivers := make([]*member, 0, len(h.rooms[room]))
	for id, m := range h.rooms[room] {
		if id == senderID {
			continue
		}
		receivers = append(receivers, m)
	}
	h.mu.RUnlock()

	for _, m := range receivers {
		if err := m.send(payload); err != nil {
			h.log.Warn("failed to relay chat message", "room", room, sl.Err(err))
		}
	}
}

// RoomSize возвращает число участников комнаты.
func (h *Hub) RoomSize(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}

// Serve читает кадры соединения и ретранслирует их до закрытия.
// Блокируется до разрыва соединения, после чего убирает участника.
func (h *Hub) Serve(room string, conn *websocket.Conn) {
	id := h.Join(room, conn)
	defer h.Leave(room, id)
	defer conn.Close()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Warn("chat connection closed unexpectedly", "room", room, sl.Err(err))
			}
			return
		}
		h.Broadcast(room, id, data)
	}
}
