package replication

import (
	"context"
	"fmt"
	"log"

	"github.com/gregor-kafka/server/core/models"
)

// Admin is the metadata handle the service reads from. Satisfied by
// kafka.Admin; tests substitute mocks.
type Admin interface {
	TopicPartitions(ctx context.Context, topic string) ([]models.PartitionRecord, error)
	Close() error
}

// ConnectFunc opens a connected Admin for a profile.
type ConnectFunc func(ctx context.Context, profile *models.ConnectionProfile) (Admin, error)

// Service computes replication-health snapshots on demand. It holds no state
// between calls.
type Service struct {
	connect ConnectFunc
}

func NewService(connect ConnectFunc) *Service {
	return &Service{connect: connect}
}

// Snapshot fetches the topic's metadata over a fresh admin connection and
// derives the health summary. The admin handle is released on every path.
func (s *Service) Snapshot(ctx context.Context, profile *models.ConnectionProfile, topic string) (*models.ReplicationSnapshot, error) {
	if err := profile.Validate(); err != nil {
		return nil, err
	}

	admin, err := s.connect(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to connect admin client: %w", err)
	}
	defer func() {
		if err := admin.Close(); err != nil {
			log.Printf("[replication] error disconnecting admin client: %v", err)
		}
	}()

	partitions, err := admin.TopicPartitions(ctx, topic)
	if err != nil {
		return nil, err
	}
	if len(partitions) == 0 {
		return nil, fmt.Errorf("%w: %s", models.ErrTopicNotFound, topic)
	}

	return &models.ReplicationSnapshot{
		Topic:      topic,
		Partitions: partitions,
		Summary:    models.ComputeSummary(partitions),
	}, nil
}
