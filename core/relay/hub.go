package relay

import (
	"sync"

	"github.com/gregor-kafka/server/core/wire/out"
)

// observerBuffer bounds how many undelivered events one observer may hold.
// When the buffer is full, new events for that observer are dropped so a
// stalled client never blocks the relay.
const observerBuffer = 64

// Observer receives the relay's event stream.
type Observer struct {
	events chan out.Event
}

// Events returns the channel the observer's events are delivered on.
func (o *Observer) Events() <-chan out.Event {
	return o.events
}

// Hub fans relay events out to connected observers.
type Hub struct {
	mu        sync.RWMutex
	observers map[*Observer]struct{}
}

func NewHub() *Hub {
	return &Hub{
		observers: make(map[*Observer]struct{}),
	}
}

// Register adds a new observer and returns it.
func (h *Hub) Register() *Observer {
	observer := &Observer{
		events: make(chan out.Event, observerBuffer),
	}

	h.mu.Lock()
	h.observers[observer] = struct{}{}
	h.mu.Unlock()

	return observer
}

// Unregister removes the observer. Its channel is left to the garbage
// collector so a concurrent Broadcast never writes to a closed channel.
func (h *Hub) Unregister(observer *Observer) {
	h.mu.Lock()
	delete(h.observers, observer)
	h.mu.Unlock()
}

// Broadcast delivers the event to every observer that has buffer space.
// Never blocks.
func (h *Hub) Broadcast(event out.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for observer := range h.observers {
		select {
		case observer.events <- event:
		default:
		}
	}
}

// ObserverCount reports how many observers are connected.
func (h *Hub) ObserverCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.observers)
}
