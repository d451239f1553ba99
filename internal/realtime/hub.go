// internal/realtime/hub.go
package realtime

import "sync"

// Event names emitted on the realtime channel.
const (
	ProductAdded    = "product.added"
	ProductUpdated  = "product.updated"
	ProductDeleted  = "product.deleted"
	CategoryAdded   = "category.added"
	CategoryUpdated = "category.updated"
	CategoryDeleted = "category.deleted"
)

// Conn is the subset of a websocket connection the hub needs. Satisfied by
// *websocket.Conn.
type Conn interface {
	WriteJSON(v interface{}) error
}

// Message is the wire format sent to subscribers.
type Message struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// Hub broadcasts entity-mutation events to every connected subscriber.
// Delivery is fire-and-forget: no replay for late subscribers, no acks, and
// a subscriber whose write fails is dropped. Publishers call Publish only
// after the storage write has committed.
type Hub struct {
	mu          sync.Mutex
	subscribers map[Conn]bool
}

// NewHub creates a hub with no subscribers.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[Conn]bool)}
}

// Register adds a live connection to the broadcast set.
func (h *Hub) Register(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subscribers[c] = true
}

// Unregister removes a connection; unknown connections are a no-op.
func (h *Hub) Unregister(c Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subscribers, c)
}

// SubscriberCount reports the number of live subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers)
}

// Publish sends event with payload to every subscriber. Connections whose
// write fails are dropped from the set.
func (h *Hub) Publish(event string, payload interface{}) {
	msg := Message{Event: event, Data: payload}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.subscribers {
		if err := c.WriteJSON(msg); err != nil {
			delete(h.subscribers, c)
		}
	}
}
