package realtime

import (
	"fmt"
	"sync"
)

// Collections that expose a change feed.
const (
	CollectionOrders        = "orders"
	CollectionConsultations = "consultations"
	CollectionEmployees     = "employees"
	CollectionProjects      = "projects"
)

func ValidCollection(name string) bool {
	switch name {
	case CollectionOrders, CollectionConsultations, CollectionEmployees, CollectionProjects:
		return true
	}
	return false
}

type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Event tells subscribers that a document changed and they should refetch.
// The feed is a refetch hint, not a state replica; the store snapshot stays
// the source of truth after any write.
type Event struct {
	Collection string `json:"collection"`
	Action     Action `json:"action"`
	ID         uint   `json:"id"`
}

const subscriberBuffer = 16

// Hub fans out change events to per-collection subscriber sets. Publishing
// never blocks: a subscriber that has fallen behind misses events, which only
// costs it freshness until its next refetch.
type Hub struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]bool
}

func NewHub() *Hub {
	return &Hub{subs: make(map[string]map[chan Event]bool)}
}

// Subscription is one listener on one collection. Close it when done or the
// hub keeps a channel alive forever.
type Subscription struct {
	C          <-chan Event
	hub        *Hub
	collection string
	ch         chan Event
	once       sync.Once
}

func (h *Hub) Subscribe(collection string) (*Subscription, error) {
	if !ValidCollection(collection) {
		return nil, fmt.Errorf("unknown collection %q", collection)
	}

	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.subs[collection] == nil {
		h.subs[collection] = make(map[chan Event]bool)
	}
	h.subs[collection][ch] = true
	h.mu.Unlock()

	return &Subscription{C: ch, hub: h, collection: collection, ch: ch}, nil
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.mu.Lock()
		delete(s.hub.subs[s.collection], s.ch)
		s.hub.mu.Unlock()
		close(s.ch)
	})
}

// Publish delivers the event to every current subscriber of its collection.
func (h *Hub) Publish(ev Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs[ev.Collection] {
		select {
		case ch <- ev:
		default:
			// Subscriber buffer full; skip rather than block the writer.
		}
	}
}

// SubscriberCount reports how many listeners a collection currently has.
func (h *Hub) SubscriberCount(collection string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[collection])
}
