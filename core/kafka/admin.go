package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gregor-kafka/server/core/models"
	"github.com/segmentio/kafka-go"
)

// Admin wraps Kafka admin operations behind an authenticated connection.
type Admin struct {
	client    *kafka.Client
	transport *kafka.Transport
}

// NewAdmin creates an admin client for the profile's cluster.
func NewAdmin(profile *models.ConnectionProfile) (*Admin, error) {
	clientID := fmt.Sprintf("gregor-admin-%d", time.Now().UnixMilli())

	transport, err := newTransport(profile, clientID)
	if err != nil {
		return nil, err
	}

	return &Admin{
		client: &kafka.Client{
			Addr:      brokerAddr(profile),
			Timeout:   connectTimeout,
			Transport: transport,
		},
		transport: transport,
	}, nil
}

// TopicPartitions fetches metadata for one topic and returns its partitions
// in the order the cluster reported them. An unknown topic yields an empty
// list rather than an error.
func (a *Admin) TopicPartitions(ctx context.Context, topic string) ([]models.PartitionRecord, error) {
	response, err := a.client.Metadata(ctx, &kafka.MetadataRequest{
		Topics: []string{topic},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata: %w", err)
	}

	for _, topicMetadata := range response.Topics {
		if topicMetadata.Name != topic {
			continue
		}
		if topicMetadata.Error != nil {
			if errors.Is(topicMetadata.Error, kafka.UnknownTopicOrPartition) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to fetch metadata for topic %s: %w", topic, topicMetadata.Error)
		}

		records := make([]models.PartitionRecord, 0, len(topicMetadata.Partitions))
		for _, partition := range topicMetadata.Partitions {
			record := models.PartitionRecord{
				ID:              partition.ID,
				Leader:          partition.Leader.ID,
				Replicas:        make([]int, 0, len(partition.Replicas)),
				ISR:             make([]int, 0, len(partition.Isr)),
				OfflineReplicas: make([]int, 0, len(partition.OfflineReplicas)),
			}
			for _, replica := range partition.Replicas {
				record.Replicas = append(record.Replicas, replica.ID)
			}
			for _, isr := range partition.Isr {
				record.ISR = append(record.ISR, isr.ID)
			}
			for _, offline := range partition.OfflineReplicas {
				record.OfflineReplicas = append(record.OfflineReplicas, offline.ID)
			}
			records = append(records, record)
		}
		return records, nil
	}

	return nil, nil
}

// Close releases the admin connections.
func (a *Admin) Close() error {
	a.transport.CloseIdleConnections()
	return nil
}
