package dashboard

import (
	"sync"

	"github.com/google/uuid"
)

type cacheInvalidator interface {
	Invalidate(userID uuid.UUID)
}

// Hub fans user update signals out to the user's open dashboard streams.
type Hub struct {
	mu          sync.Mutex
	subscribers map[uuid.UUID]map[chan struct{}]struct{}
	invalidator cacheInvalidator
}

func NewHub(invalidator cacheInvalidator) *Hub {
	return &Hub{
		subscribers: make(map[uuid.UUID]map[chan struct{}]struct{}),
		invalidator: invalidator,
	}
}

// Subscribe registers a stream of the user. The returned channel has room for
// one pending signal; signals arriving while one is pending are merged.
// The returned func must be called when the stream ends.
func (h *Hub) Subscribe(userID uuid.UUID) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)

	h.mu.Lock()
	if h.subscribers[userID] == nil {
		h.subscribers[userID] = make(map[chan struct{}]struct{})
	}
	h.subscribers[userID][ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers[userID], ch)
			if len(h.subscribers[userID]) == 0 {
				delete(h.subscribers, userID)
			}
		})
	}

	return ch, unsubscribe
}

// Notify drops the user's cached report and wakes up the user's streams.
func (h *Hub) Notify(userID uuid.UUID) {
	if h.invalidator != nil {
		h.invalidator.Invalidate(userID)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subscribers[userID] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

func (h *Hub) SubscribersCount(userID uuid.UUID) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subscribers[userID])
}
