package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/gregor-kafka/server/core/models"
	"github.com/segmentio/kafka-go"
)

// Subscriber is a connected subscription on one topic.
type Subscriber struct {
	reader *kafka.Reader
}

// NewSubscriber opens an authenticated group subscription. fromBeginning
// decides where consumption starts when the group has no committed offsets.
// Connectivity is verified up front so subscribe failures surface to the
// caller instead of dying silently inside the reader's retry loop.
func NewSubscriber(ctx context.Context, profile *models.ConnectionProfile, topic, groupID string, fromBeginning bool) (*Subscriber, error) {
	clientID := fmt.Sprintf("gregor-listener-%d", time.Now().UnixMilli())

	dialer, err := NewDialer(profile, clientID)
	if err != nil {
		return nil, err
	}

	connection, err := dialer.DialContext(ctx, "tcp", profile.Brokers[0])
	if err != nil {
		return nil, fmt.Errorf("failed to connect to kafka: %w", err)
	}
	connection.Close()

	startOffset := kafka.LastOffset
	if fromBeginning {
		startOffset = kafka.FirstOffset
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     profile.Brokers,
		GroupID:     groupID,
		Topic:       topic,
		Dialer:      dialer,
		StartOffset: startOffset,
		MinBytes:    1,
		MaxBytes:    10e6,
		MaxWait:     500 * time.Millisecond,
	})

	return &Subscriber{reader: reader}, nil
}

// Fetch blocks until the next record arrives and returns its payload.
func (s *Subscriber) Fetch(ctx context.Context) ([]byte, error) {
	message, err := s.reader.ReadMessage(ctx)
	if err != nil {
		return nil, err
	}
	return message.Value, nil
}

func (s *Subscriber) Close() error {
	return s.reader.Close()
}
