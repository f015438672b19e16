// Package ws pushes notifications to connected clients over WebSocket.
package ws

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/ports"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

const (
	messageTypeNotification = "NOTIFICATION"
	writeTimeout            = 5 * time.Second
)

// Message is the envelope written to every WebSocket client.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// Hub tracks live WebSocket connections per recipient and implements
// ports.NotificationSender. A recipient may hold several connections at once,
// for example a phone and a dispatcher screen. Recipients with no live
// connection are skipped without error.
type Hub struct {
	mu          sync.RWMutex
	connections map[kernel.UUID]map[*websocket.Conn]bool

	upgrader websocket.Upgrader
	logger   *slog.Logger
}

// NewHub creates a hub with no connections.
func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		connections: make(map[kernel.UUID]map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		logger: logger.With("component", "ws-hub"),
	}
}

// Handler upgrades GET /ws/:recipientId to a WebSocket connection and keeps it
// registered until the client disconnects.
func (h *Hub) Handler(ctx echo.Context) error {
	recipientID, err := kernel.UUIDFromString(ctx.Param("recipientId"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid recipient id")
	}

	conn, err := h.upgrader.Upgrade(ctx.Response(), ctx.Request(), nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return nil
	}

	h.register(recipientID, conn)
	h.logger.Info("client connected", "recipient_id", recipientID.String())

	go h.readLoop(recipientID, conn)

	return nil
}

// Send writes the notification to every live connection of the recipient.
// Connections that fail the write are dropped. Implements fire-and-forget
// semantics: a recipient without connections is not an error.
func (h *Hub) Send(_ context.Context, recipientID kernel.UUID, notification ports.Notification) error {
	body, err := json.Marshal(Message{
		Type:    messageTypeNotification,
		Payload: notification,
	})
	if err != nil {
		return err
	}

	h.mu.RLock()
	conns := make([]*websocket.Conn, 0, len(h.connections[recipientID]))
	for conn := range h.connections[recipientID] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if writeErr := conn.WriteMessage(websocket.TextMessage, body); writeErr != nil {
			h.logger.Warn("write failed, dropping connection",
				"recipient_id", recipientID.String(), "error", writeErr)
			h.unregister(recipientID, conn)
		}
	}

	return nil
}

func (h *Hub) register(recipientID kernel.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.connections[recipientID] == nil {
		h.connections[recipientID] = make(map[*websocket.Conn]bool)
	}
	h.connections[recipientID][conn] = true
}

func (h *Hub) unregister(recipientID kernel.UUID, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.connections[recipientID]; ok {
		if conns[conn] {
			delete(conns, conn)
			_ = conn.Close()
		}
		if len(conns) == 0 {
			delete(h.connections, recipientID)
		}
	}
}

// readLoop drains client frames so control messages are processed and the
// connection close is detected. Clients may send {"type":"ping"} and get a
// pong back; all other frames are ignored.
func (h *Hub) readLoop(recipientID kernel.UUID, conn *websocket.Conn) {
	defer func() {
		h.unregister(recipientID, conn)
		h.logger.Info("client disconnected", "recipient_id", recipientID.String())
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var frame Message
		if unmarshalErr := json.Unmarshal(raw, &frame); unmarshalErr != nil {
			continue
		}

		if frame.Type == "ping" {
			pong, _ := json.Marshal(Message{Type: "pong", Payload: time.Now().Unix()})
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if writeErr := conn.WriteMessage(websocket.TextMessage, pong); writeErr != nil {
				return
			}
		}
	}
}
