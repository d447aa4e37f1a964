package realtime

import (
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"petbnb/internal/domain"
)

// BookingEvent tells a connected client that a booking changed and it
// should re-fetch. It deliberately carries no booking body: the dashboard
// re-fetch is the conflict-resolution mechanism, not this payload.
type BookingEvent struct {
	Type      string               `json:"type"`
	BookingID string               `json:"booking_id"`
	Status    domain.BookingStatus `json:"status"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// subscriber pairs a connection with its write lock. Gorilla connections
// allow at most one concurrent writer, and booking events for a shared
// participant can be published from several request goroutines at once.
type subscriber struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (s *subscriber) send(event BookingEvent) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	return s.conn.WriteJSON(event)
}

// Hub tracks one websocket connection per user and fans booking events out
// to the participants of the changed booking.
type Hub struct {
	subscribers map[string]*subscriber
	mutex       sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]*subscriber),
	}
}

func (h *Hub) Register(userID string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.subscribers[userID]; exists && old.conn != nil {
		_ = old.conn.Close()
	}
	h.subscribers[userID] = &subscriber{conn: conn}
}

func (h *Hub) Unregister(userID string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if sub, exists := h.subscribers[userID]; exists {
		if sub.conn != nil {
			_ = sub.conn.Close()
		}
		delete(h.subscribers, userID)
	}
}

// BookingChanged implements the orchestrator's EventPublisher. Offline
// participants are skipped; they pick the change up on their next fetch.
func (h *Hub) BookingChanged(bookingID string, status domain.BookingStatus, userIDs ...string) {
	event := BookingEvent{
		Type:      "booking_update",
		BookingID: bookingID,
		Status:    status,
		UpdatedAt: time.Now().UTC(),
	}
	for _, id := range userIDs {
		if id == "" {
			continue
		}
		h.sendToUser(id, event)
	}
}

func (h *Hub) sendToUser(userID string, event BookingEvent) bool {
	h.mutex.RLock()
	sub, exists := h.subscribers[userID]
	h.mutex.RUnlock()

	if !exists || sub.conn == nil {
		return false
	}
	if err := sub.send(event); err != nil {
		h.Unregister(userID)
		return false
	}
	return true
}

func (h *Hub) IsOnline(userID string) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	_, exists := h.subscribers[userID]
	return exists
}

func (h *Hub) OnlineCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.subscribers)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for userID, sub := range h.subscribers {
		if sub.conn != nil {
			_ = sub.conn.Close()
		}
		delete(h.subscribers, userID)
	}
}
