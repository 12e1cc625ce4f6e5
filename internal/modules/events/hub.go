package events

import (
	"sync"

	"github.com/Aellun/AirBnB-clone-v3/internal/domain"

	"github.com/gorilla/websocket"
)

// Hub fans review lifecycle events out to websocket subscribers. A conn
// that fails a write is dropped on the spot.
type Hub struct {
	mutex       sync.RWMutex
	nextID      int64
	connections map[int64]*websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		connections: make(map[int64]*websocket.Conn),
	}
}

func (h *Hub) Register(conn *websocket.Conn) int64 {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.nextID++
	h.connections[h.nextID] = conn
	return h.nextID
}

func (h *Hub) Unregister(id int64) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if conn, exists := h.connections[id]; exists && conn != nil {
		_ = conn.Close()
		delete(h.connections, id)
	}
}

// Broadcast writes under the full lock: gorilla/websocket allows only one
// concurrent writer per conn, so overlapping broadcasts must be serialized.
func (h *Hub) Broadcast(message interface{}) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn == nil {
			continue
		}
		if err := conn.WriteJSON(message); err != nil {
			_ = conn.Close()
			delete(h.connections, id)
		}
	}
}

func (h *Hub) SubscriberCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.connections)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, conn := range h.connections {
		if conn != nil {
			_ = conn.Close()
		}
		delete(h.connections, id)
	}
}

// The hub satisfies the review service's Publisher interface.

func (h *Hub) ReviewCreated(rv *domain.Review) {
	h.Broadcast(map[string]any{"event": "review.created", "review": rv.ToJSON()})
}

func (h *Hub) ReviewUpdated(rv *domain.Review) {
	h.Broadcast(map[string]any{"event": "review.updated", "review": rv.ToJSON()})
}

func (h *Hub) ReviewDeleted(id string) {
	h.Broadcast(map[string]any{"event": "review.deleted", "review_id": id})
}
