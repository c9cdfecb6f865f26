package notification

import (
	"sync"

	"github.com/gorilla/websocket"

	"simplecrm/internal/domain"
)

// Hub fans notifications out to connected clients, one websocket per
// signed-in user keyed by email.
type Hub struct {
	connections map[string]*websocket.Conn
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[string]*websocket.Conn),
	}
}

func (h *Hub) Register(email string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if oldConn, exists := h.connections[email]; exists && oldConn != nil {
		_ = oldConn.Close()
	}

	h.connections[email] = conn
}

func (h *Hub) Unregister(email string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[email]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, email)
	}
}

// Broadcast pushes a notification to every connected client. Dead
// connections are dropped on write failure.
func (h *Hub) Broadcast(n domain.Notification) {
	h.mutex.RLock()
	emails := make([]string, 0, len(h.connections))
	for email := range h.connections {
		emails = append(emails, email)
	}
	h.mutex.RUnlock()

	for _, email := range emails {
		h.mutex.RLock()
		conn := h.connections[email]
		h.mutex.RUnlock()
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(n); err != nil {
			h.Unregister(email)
		}
	}
}

func (h *Hub) IsOnline(email string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.connections[email]
	return exists
}

func (h *Hub) GetOnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for email, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, email)
	}
}
