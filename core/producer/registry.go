package producer

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gregor-kafka/server/core/kafka"
	"github.com/gregor-kafka/server/core/models"
)

// Publisher is the publish handle a registry session drives. Satisfied by
// kafka.Publisher; tests substitute mocks.
type Publisher interface {
	Publish(ctx context.Context, key, value []byte) error
	Close() error
}

// ConnectFunc opens a connected Publisher for a profile.
type ConnectFunc func(ctx context.Context, profile *models.ConnectionProfile) (Publisher, error)

type session struct {
	publisher Publisher
	interval  time.Duration
	cancel    context.CancelFunc
	done      chan struct{}
}

// Registry owns the background publish loops, exactly one per session key.
// Start and Stop are serialized per key; operations on different keys run
// independently.
type Registry struct {
	connect         ConnectFunc
	defaultInterval time.Duration

	mu       sync.RWMutex
	sessions map[string]*session
	keyLocks map[string]*sync.Mutex
}

func NewRegistry(connect ConnectFunc, defaultInterval time.Duration) *Registry {
	if defaultInterval <= 0 {
		defaultInterval = 2 * time.Second
	}
	return &Registry{
		connect:         connect,
		defaultInterval: defaultInterval,
		sessions:        make(map[string]*session),
		keyLocks:        make(map[string]*sync.Mutex),
	}
}

func (r *Registry) keyLock(key string) *sync.Mutex {
	r.mu.Lock()
	defer r.mu.Unlock()

	lock, exists := r.keyLocks[key]
	if !exists {
		lock = &sync.Mutex{}
		r.keyLocks[key] = lock
	}
	return lock
}

// Start launches a background publish loop under key, superseding any loop
// already registered there. Teardown failures of the superseded session are
// logged and never abort the new start. A connect failure leaves no session
// registered.
func (r *Registry) Start(ctx context.Context, key string, profile *models.ConnectionProfile, interval time.Duration) error {
	if key == "" {
		return models.ErrSessionKeyRequired
	}
	if err := profile.Validate(); err != nil {
		return err
	}

	lock := r.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	if r.teardown(key) {
		log.Printf("[producer/registry] session %q: superseded previous producer", key)
	}

	if interval <= 0 {
		interval = r.defaultInterval
	}

	publisher, err := r.connect(ctx, profile)
	if err != nil {
		return fmt.Errorf("failed to start producer: %w", err)
	}

	loopCtx, cancel := context.WithCancel(context.Background())
	active := &session{
		publisher: publisher,
		interval:  interval,
		cancel:    cancel,
		done:      make(chan struct{}),
	}

	r.mu.Lock()
	r.sessions[key] = active
	r.mu.Unlock()

	go r.runLoop(loopCtx, key, active)

	log.Printf("[producer/registry] session %q: producer started, interval %s", key, interval)
	return nil
}

// runLoop publishes one synthetic record per tick until cancelled. Publish
// failures are logged and the loop keeps going.
func (r *Registry) runLoop(ctx context.Context, key string, active *session) {
	defer close(active.done)

	ticker := time.NewTicker(active.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			name := kafka.RandomAnimalName()
			recordKey := kafka.RandomKey()
			if err := active.publisher.Publish(ctx, []byte(recordKey), []byte(name)); err != nil {
				log.Printf("[producer/registry] session %q: error sending message: %v", key, err)
				continue
			}
			log.Printf("[producer/registry] session %q: sent %q (key: %s)", key, name, recordKey)
		}
	}
}

// teardown removes and fully stops the session under key, returning whether
// one existed. The loop goroutine has exited by the time this returns, so no
// further publishes are scheduled.
func (r *Registry) teardown(key string) bool {
	r.mu.Lock()
	active, exists := r.sessions[key]
	if exists {
		delete(r.sessions, key)
	}
	r.mu.Unlock()

	if !exists {
		return false
	}

	active.cancel()
	<-active.done

	if err := active.publisher.Close(); err != nil {
		log.Printf("[producer/registry] session %q: error disconnecting producer: %v", key, err)
	}
	return true
}

// Stop cancels the loop under key and disconnects its publisher. Stopping an
// unknown or already-stopped key succeeds; the returned flag reports whether
// a session was actually stopped.
func (r *Registry) Stop(key string) (bool, error) {
	if key == "" {
		return false, models.ErrSessionKeyRequired
	}

	lock := r.keyLock(key)
	lock.Lock()
	defer lock.Unlock()

	stopped := r.teardown(key)
	if stopped {
		log.Printf("[producer/registry] session %q: producer stopped", key)
	}
	return stopped, nil
}

// Active reports whether a session exists under key. Pure lookup.
func (r *Registry) Active(key string) (bool, error) {
	if key == "" {
		return false, models.ErrSessionKeyRequired
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	_, exists := r.sessions[key]
	return exists, nil
}

// Shutdown stops every active session. Called on process shutdown.
func (r *Registry) Shutdown() {
	r.mu.RLock()
	keys := make([]string, 0, len(r.sessions))
	for key := range r.sessions {
		keys = append(keys, key)
	}
	r.mu.RUnlock()

	for _, key := range keys {
		if _, err := r.Stop(key); err != nil {
			log.Printf("[producer/registry] session %q: shutdown error: %v", key, err)
		}
	}
}
