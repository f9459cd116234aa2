package ws

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// MessageType defines the type of WebSocket message
type MessageType string

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Connection represents one admin WebSocket connection
type Connection struct {
	AdminID string
	Send    chan []byte
}

// Hub fans admin events out to every connected admin
type Hub struct {
	conns map[*Connection]struct{}

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan []byte
	done       chan struct{}

	logger *zap.Logger
}

// NewHub creates a hub. Call Run to start delivering messages.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		conns:      make(map[*Connection]struct{}),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, 256),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run serves hub events until ctx is cancelled, then closes every connection
func (h *Hub) Run(ctx context.Context) {
	defer func() {
		close(h.done)
		for conn := range h.conns {
			close(conn.Send)
			delete(h.conns, conn)
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case conn := <-h.register:
			h.conns[conn] = struct{}{}
			h.logger.Info("admin connected", zap.String("admin_id", conn.AdminID), zap.Int("connections", len(h.conns)))

		case conn := <-h.unregister:
			if _, ok := h.conns[conn]; ok {
				delete(h.conns, conn)
				close(conn.Send)
				h.logger.Info("admin disconnected", zap.String("admin_id", conn.AdminID))
			}

		case data := <-h.broadcast:
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
		}
	}
}

// Register adds a connection. Returns false once the hub has stopped.
func (h *Hub) Register(conn *Connection) bool {
	select {
	case h.register <- conn:
		return true
	case <-h.done:
		return false
	}
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// BroadcastToAdmins queues an event for every admin (implements service.Broadcaster).
// It never blocks the caller; events are dropped when the queue is full.
func (h *Hub) BroadcastToAdmins(msgType string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("failed to encode broadcast payload", zap.String("type", msgType), zap.Error(err))
		return
	}
	msg, err := json.Marshal(&Message{Type: MessageType(msgType), Payload: data})
	if err != nil {
		return
	}

	select {
	case h.broadcast <- msg:
	default:
		h.logger.Warn("admin broadcast queue full, dropping event", zap.String("type", msgType))
	}
}
