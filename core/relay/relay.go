package relay

import (
	"context"
	"log"
	"sync"

	"github.com/gregor-kafka/server/core/models"
	"github.com/gregor-kafka/server/core/wire/out"
)

// Subscriber is the subscription handle the relay forwards records from.
// Satisfied by kafka.Subscriber; tests substitute mocks.
type Subscriber interface {
	Fetch(ctx context.Context) ([]byte, error)
	Close() error
}

// SubscribeFunc opens a connected Subscriber for a profile. fromBeginning is
// true only for the first subscription of the relay's lifetime.
type SubscribeFunc func(ctx context.Context, profile *models.ConnectionProfile, fromBeginning bool) (Subscriber, error)

type subscription struct {
	subscriber Subscriber
	cancel     context.CancelFunc
	done       chan struct{}
}

// Relay owns the single live subscription slot and forwards every consumed
// record to the hub's observers. Reconfigure calls are serialized; a call
// arriving while another is in flight queues behind it.
type Relay struct {
	subscribe SubscribeFunc
	hub       *Hub

	mu         sync.Mutex
	current    *subscription
	subscribed bool
}

func New(hub *Hub, subscribe SubscribeFunc) *Relay {
	return &Relay{
		subscribe: subscribe,
		hub:       hub,
	}
}

// Reconfigure tears the current subscription down, then establishes a new
// one with the given profile. The old subscription is fully stopped before
// the "connecting" event fires, so none of its records leak past this call.
// Outcomes are delivered as events: "ready" on success, "error" on failure.
// A failed relay accepts later reconfigures.
func (r *Relay) Reconfigure(profile *models.ConnectionProfile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.teardown()

	r.hub.Broadcast(out.Event{Type: out.EventConnecting, Message: "connecting consumer"})

	if err := profile.Validate(); err != nil {
		log.Printf("[relay] invalid connection settings: %v", err)
		r.hub.Broadcast(out.Event{Type: out.EventError, Message: err.Error()})
		return
	}

	fromBeginning := !r.subscribed
	subscriberCtx, cancel := context.WithCancel(context.Background())

	subscriber, err := r.subscribe(subscriberCtx, profile, fromBeginning)
	if err != nil {
		cancel()
		log.Printf("[relay] consumer error: %v", err)
		r.hub.Broadcast(out.Event{Type: out.EventError, Message: err.Error()})
		return
	}

	r.subscribed = true
	active := &subscription{
		subscriber: subscriber,
		cancel:     cancel,
		done:       make(chan struct{}),
	}
	r.current = active

	go r.forward(subscriberCtx, active)

	log.Printf("[relay] consumer connected, from beginning: %v", fromBeginning)
	r.hub.Broadcast(out.Event{Type: out.EventReady, Message: "consumer connected successfully"})
}

// forward pushes every received record to the observers until the
// subscription is torn down or fails.
func (r *Relay) forward(ctx context.Context, active *subscription) {
	defer close(active.done)

	for {
		payload, err := active.subscriber.Fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("[relay] consumer error: %v", err)
			r.hub.Broadcast(out.Event{Type: out.EventError, Message: err.Error()})
			return
		}

		r.hub.Broadcast(out.Event{Type: out.EventRecord, Payload: string(payload)})
	}
}

// teardown stops the current subscription and waits for its forward loop to
// exit. Disconnect failures are logged, never propagated.
func (r *Relay) teardown() {
	active := r.current
	if active == nil {
		return
	}
	r.current = nil

	active.cancel()
	if err := active.subscriber.Close(); err != nil {
		log.Printf("[relay] error disconnecting consumer: %v", err)
	}
	<-active.done
}

// Shutdown releases the subscription on process shutdown.
func (r *Relay) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.teardown()
}
