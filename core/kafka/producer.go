package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/gregor-kafka/server/core/models"
	"github.com/segmentio/kafka-go"
)

const producerClientID = "gregor-producer"

// Publisher is a connected publish handle bound to one topic.
type Publisher struct {
	writer    *kafka.Writer
	transport *kafka.Transport
}

// NewPublisher opens an authenticated publish handle for the profile. The
// broker connection is verified up front so a bad address or bad credentials
// fail here rather than on the first publish.
func NewPublisher(ctx context.Context, profile *models.ConnectionProfile, topic string) (*Publisher, error) {
	transport, err := newTransport(profile, producerClientID)
	if err != nil {
		return nil, err
	}

	client := &kafka.Client{
		Addr:      brokerAddr(profile),
		Timeout:   connectTimeout,
		Transport: transport,
	}
	if _, err := client.Metadata(ctx, &kafka.MetadataRequest{}); err != nil {
		transport.CloseIdleConnections()
		return nil, fmt.Errorf("failed to connect to kafka: %w", err)
	}

	writer := &kafka.Writer{
		Addr:         brokerAddr(profile),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		WriteTimeout: 10 * time.Second,
		Transport:    transport,

		// The harness topic may not exist yet on a fresh cluster.
		AllowAutoTopicCreation: true,
	}

	return &Publisher{
		writer:    writer,
		transport: transport,
	}, nil
}

// Publish writes one record. A nil key leaves partitioning to the balancer.
func (p *Publisher) Publish(ctx context.Context, key, value []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   key,
		Value: value,
	})
}

func (p *Publisher) Close() error {
	err := p.writer.Close()
	p.transport.CloseIdleConnections()
	return err
}

// PublishOnce sends a single un-keyed message on a fresh connection, used by
// the fire-and-forget produce endpoint.
func PublishOnce(ctx context.Context, profile *models.ConnectionProfile, topic, message string) error {
	publisher, err := NewPublisher(ctx, profile, topic)
	if err != nil {
		return err
	}
	defer publisher.Close()

	return publisher.Publish(ctx, nil, []byte(message))
}
