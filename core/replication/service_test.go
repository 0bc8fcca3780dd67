package replication

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/gregor-kafka/server/core/models"
)

// MockAdmin implements Admin for testing
type MockAdmin struct {
	partitions []models.PartitionRecord
	err        error
	closed     bool
}

func (m *MockAdmin) TopicPartitions(ctx context.Context, topic string) ([]models.PartitionRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.partitions, nil
}

func (m *MockAdmin) Close() error {
	m.closed = true
	return nil
}

func testProfile() *models.ConnectionProfile {
	return &models.ConnectionProfile{Brokers: []string{"localhost:9092"}}
}

func serviceWith(admin *MockAdmin) *Service {
	return NewService(func(ctx context.Context, profile *models.ConnectionProfile) (Admin, error) {
		return admin, nil
	})
}

func TestSnapshot_InvalidProfile(t *testing.T) {
	admin := &MockAdmin{}
	service := serviceWith(admin)

	_, err := service.Snapshot(context.Background(), &models.ConnectionProfile{}, "test-topic")
	if !errors.Is(err, models.ErrBrokersRequired) {
		t.Errorf("Expected ErrBrokersRequired, got %v", err)
	}
	if admin.closed {
		t.Error("Expected no admin connection for an invalid profile")
	}
}

func TestSnapshot_ConnectFailure(t *testing.T) {
	service := NewService(func(ctx context.Context, profile *models.ConnectionProfile) (Admin, error) {
		return nil, fmt.Errorf("connection refused")
	})

	_, err := service.Snapshot(context.Background(), testProfile(), "test-topic")
	if err == nil {
		t.Error("Expected error on connect failure, got nil")
	}
}

func TestSnapshot_TopicNotFound(t *testing.T) {
	admin := &MockAdmin{}
	service := serviceWith(admin)

	_, err := service.Snapshot(context.Background(), testProfile(), "absent-topic")
	if !errors.Is(err, models.ErrTopicNotFound) {
		t.Errorf("Expected ErrTopicNotFound, got %v", err)
	}
	if !admin.closed {
		t.Error("Expected admin to be disconnected on the not-found path")
	}
}

func TestSnapshot_MetadataErrorStillCloses(t *testing.T) {
	admin := &MockAdmin{err: fmt.Errorf("metadata fetch failed")}
	service := serviceWith(admin)

	_, err := service.Snapshot(context.Background(), testProfile(), "test-topic")
	if err == nil {
		t.Error("Expected error, got nil")
	}
	if !admin.closed {
		t.Error("Expected admin to be disconnected on the error path")
	}
}

func TestSnapshot_Success(t *testing.T) {
	admin := &MockAdmin{
		partitions: []models.PartitionRecord{
			{ID: 0, Leader: 1, Replicas: []int{1, 2, 3}, ISR: []int{1, 2, 3}},
			{ID: 1, Leader: 2, Replicas: []int{1, 2}, ISR: []int{1}},
		},
	}
	service := serviceWith(admin)

	snapshot, err := service.Snapshot(context.Background(), testProfile(), "test-topic")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !admin.closed {
		t.Error("Expected admin to be disconnected on the success path")
	}

	if snapshot.Topic != "test-topic" {
		t.Errorf("Expected topic test-topic, got %q", snapshot.Topic)
	}
	// Partition order is exactly the metadata order.
	if snapshot.Partitions[0].ID != 0 || snapshot.Partitions[1].ID != 1 {
		t.Errorf("Expected partitions in metadata order, got %+v", snapshot.Partitions)
	}
	if snapshot.ReplicationFactor() != 3 {
		t.Errorf("Expected replication factor 3, got %d", snapshot.ReplicationFactor())
	}

	summary := snapshot.Summary
	if summary.PartitionsWithFullReplication != 1 {
		t.Errorf("Expected 1 fully replicated partition, got %d", summary.PartitionsWithFullReplication)
	}
	if summary.PartitionsWithAllISR != 1 {
		t.Errorf("Expected 1 partition with all ISR, got %d", summary.PartitionsWithAllISR)
	}
	if summary.MinISR != 1 || summary.MaxISR != 3 {
		t.Errorf("Expected minISR/maxISR 1/3, got %d/%d", summary.MinISR, summary.MaxISR)
	}
}
