//go:build integration
// +build integration

package kafka

import (
	"context"
	"fmt"
	"testing"
	"time"

	kafkacontainer "github.com/testcontainers/testcontainers-go/modules/kafka"
)

// SetupTestKafka starts a Kafka container for integration tests
func SetupTestKafka(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()

	kafkaContainer, err := kafkacontainer.Run(ctx,
		"apache/kafka:latest",
		kafkacontainer.WithClusterID("test-cluster"),
	)
	if err != nil {
		t.Fatalf("Failed to start Kafka container: %v", err)
	}

	brokers, err := kafkaContainer.Brokers(ctx)
	if err != nil {
		kafkaContainer.Terminate(ctx)
		t.Fatalf("Failed to get Kafka brokers: %v", err)
	}

	if len(brokers) == 0 {
		kafkaContainer.Terminate(ctx)
		t.Fatal("No Kafka brokers returned")
	}

	broker := brokers[0]

	if err := waitForKafka(ctx, broker, 30*time.Second); err != nil {
		kafkaContainer.Terminate(ctx)
		t.Fatalf("Kafka not ready: %v", err)
	}

	cleanup := func() {
		if err := kafkaContainer.Terminate(ctx); err != nil {
			t.Logf("Failed to terminate Kafka container: %v", err)
		}
	}

	return broker, cleanup
}

// waitForKafka waits for Kafka to be ready
func waitForKafka(ctx context.Context, broker string, timeout time.Duration) error {
	profile := integrationProfile(broker)
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		admin, err := NewAdmin(profile)
		if err == nil {
			_, err = admin.TopicPartitions(ctx, "__consumer_offsets")
			admin.Close()
			if err == nil {
				return nil
			}
		}
		time.Sleep(time.Second)
	}

	return fmt.Errorf("kafka at %s not ready after %s", broker, timeout)
}
