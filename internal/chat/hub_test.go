package chat

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newChatServer(t *testing.T, hub *Hub) *httptest.Server {
	t.Helper()

	upgrader := websocket.Upgrader{
		CheckOrigin: func(*http.Request) bool { return true },
	}

	router := chi.NewRouter()
	router.Get("/chat/ws/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		go hub.Serve(chi.URLParam(r, "bookingId"), conn)
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func dial(t *testing.T, srv *httptest.Server, room string) *websocket.Conn {
	t.Helper()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http") + "/chat/ws/" + room
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHub_RelaysToOtherRoomMembers(t *testing.T) {
	hub := NewHub(newNoopLogger())
	srv := newChatServer(t, hub)

	sender := dial(t, srv, "42")
	receiver := dial(t, srv, "42")

	require.Eventually(t, func() bool {
		return hub.RoomSize("42") == 2
	}, time.Second, 10*time.Millisecond)

	err := sender.WriteMessage(websocket.TextMessage, []byte(`{"text":"hello"}`))
	require.NoError(t, err)

	require.NoError(t, receiver.SetReadDeadline(time.Now().Add(time.Second)))
	_, payload, err := receiver.ReadMessage()
	require.NoError(t, err)

	var envelope Envelope
	require.NoError(t, json.Unmarshal(payload, &envelope))
	assert.Equal(t, EventReceiveMessage, envelope.Event)
	assert.Equal(t, "42", envelope.Room)
	assert.NotEmpty(t, envelope.Sender)
	assert.JSONEq(t, `{"text":"hello"}`, string(envelope.Data))

	// Отправитель не должен получить собственное сообщение обратно.
	require.NoError(t, sender.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err = sender.ReadMessage()
	assert.Error(t, err)
}

func TestHub_DoesNotCrossRooms(t *testing.T) {
	hub := NewHub(newNoopLogger())
	srv := newChatServer(t, hub)

	sender := dial(t, srv, "1")
	stranger := dial(t, srv, "2")

	require.Eventually(t, func() bool {
		return hub.RoomSize("1") == 1 && hub.RoomSize("2") == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, sender.WriteMessage(websocket.TextMessage, []byte(`{"text":"private"}`)))

	require.NoError(t, stranger.SetReadDeadline(time.Now().Add(100*time.Millisecond)))
	_, _, err := stranger.ReadMessage()
	assert.Error(t, err)
}

func TestHub_LeaveRemovesEmptyRoom(t *testing.T) {
	hub := NewHub(newNoopLogger())
	srv := newChatServer(t, hub)

	conn := dial(t, srv, "7")

	require.Eventually(t, func() bool {
		return hub.RoomSize("7") == 1
	}, time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return hub.RoomSize("7") == 0
	}, time.Second, 10*time.Millisecond)
}
