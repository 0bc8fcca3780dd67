package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/gregor-kafka/server/core/config"
	"github.com/gregor-kafka/server/core/models"
	"github.com/gregor-kafka/server/core/producer"
	"github.com/gregor-kafka/server/core/relay"
	"github.com/gregor-kafka/server/core/replication"
	"github.com/gregor-kafka/server/core/wire/out"
)

type chanSubscriber struct {
	records chan []byte
}

func (s *chanSubscriber) Fetch(ctx context.Context) ([]byte, error) {
	select {
	case record := <-s.records:
		return record, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *chanSubscriber) Close() error { return nil }

func readEvent(t *testing.T, connection *websocket.Conn) out.Event {
	t.Helper()
	connection.SetReadDeadline(time.Now().Add(2 * time.Second))
	var event out.Event
	if err := connection.ReadJSON(&event); err != nil {
		t.Fatalf("Failed to read event: %v", err)
	}
	return event
}

func TestLiveChannel_ConfigureAndStream(t *testing.T) {
	records := make(chan []byte, 4)

	cfg := &config.Config{Kafka: config.KafkaConfig{Topic: "test-topic", GroupID: "test-group"}}
	hub := relay.NewHub()
	liveRelay := relay.New(hub,
		func(ctx context.Context, profile *models.ConnectionProfile, fromBeginning bool) (relay.Subscriber, error) {
			return &chanSubscriber{records: records}, nil
		},
	)
	defer liveRelay.Shutdown()

	registry := producer.NewRegistry(
		func(ctx context.Context, profile *models.ConnectionProfile) (producer.Publisher, error) {
			return nopPublisher{}, nil
		},
		time.Second,
	)
	snapshots := replication.NewService(
		func(ctx context.Context, profile *models.ConnectionProfile) (replication.Admin, error) {
			return &stubAdmin{deps: &testDeps{}}, nil
		},
	)

	handler := NewHandler(cfg, registry, liveRelay, hub, snapshots,
		func(ctx context.Context, profile *models.ConnectionProfile, message string) error { return nil },
	)

	server := httptest.NewServer(http.HandlerFunc(handler.LiveChannel))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	connection, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	defer connection.Close()

	if err := connection.WriteJSON(map[string]interface{}{
		"type":    "configure",
		"brokers": "localhost:9092",
	}); err != nil {
		t.Fatalf("Failed to send configure command: %v", err)
	}

	if event := readEvent(t, connection); event.Type != out.EventConnecting {
		t.Errorf("Expected connecting event, got %q", event.Type)
	}
	if event := readEvent(t, connection); event.Type != out.EventReady {
		t.Errorf("Expected ready event, got %q", event.Type)
	}

	records <- []byte("gentle wombat")

	event := readEvent(t, connection)
	if event.Type != out.EventRecord {
		t.Fatalf("Expected record event, got %q", event.Type)
	}
	if event.Payload != "gentle wombat" {
		t.Errorf("Expected payload %q, got %q", "gentle wombat", event.Payload)
	}
}

func TestLiveChannel_ConfigureWithoutBrokers(t *testing.T) {
	cfg := &config.Config{Kafka: config.KafkaConfig{Topic: "test-topic"}}
	hub := relay.NewHub()
	liveRelay := relay.New(hub,
		func(ctx context.Context, profile *models.ConnectionProfile, fromBeginning bool) (relay.Subscriber, error) {
			t.Error("Expected no subscribe attempt for an invalid profile")
			return nil, nil
		},
	)

	handler := NewHandler(cfg, nil, liveRelay, hub, nil, nil)

	server := httptest.NewServer(http.HandlerFunc(handler.LiveChannel))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	connection, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	if err != nil {
		t.Fatalf("Failed to dial websocket: %v", err)
	}
	defer connection.Close()

	if err := connection.WriteJSON(map[string]interface{}{"type": "configure"}); err != nil {
		t.Fatalf("Failed to send configure command: %v", err)
	}

	if event := readEvent(t, connection); event.Type != out.EventConnecting {
		t.Errorf("Expected connecting event, got %q", event.Type)
	}
	event := readEvent(t, connection)
	if event.Type != out.EventError {
		t.Errorf("Expected error event, got %q", event.Type)
	}
	if !strings.Contains(event.Message, "brokers") {
		t.Errorf("Expected the validation message, got %q", event.Message)
	}
}
