//go:build integration
// +build integration

package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/gregor-kafka/server/core/models"
)

// Run these tests with: go test -tags=integration ./core/kafka -v

func integrationProfile(broker string) *models.ConnectionProfile {
	return &models.ConnectionProfile{
		Brokers:  []string{broker},
		AuthType: models.AuthNone,
	}
}

func TestIntegration_PublishFetchRoundtrip(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	broker, cleanup := SetupTestKafka(t, ctx)
	defer cleanup()

	profile := integrationProfile(broker)
	topic := "gregor-roundtrip"

	publisher, err := NewPublisher(ctx, profile, topic)
	if err != nil {
		t.Fatalf("Failed to connect publisher: %v", err)
	}
	defer publisher.Close()

	subscriber, err := NewSubscriber(ctx, profile, topic, "gregor-it-group", true)
	if err != nil {
		t.Fatalf("Failed to connect subscriber: %v", err)
	}
	defer subscriber.Close()

	if err := publisher.Publish(ctx, []byte(RandomKey()), []byte("curious otter")); err != nil {
		t.Fatalf("Failed to publish: %v", err)
	}

	fetchCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	payload, err := subscriber.Fetch(fetchCtx)
	if err != nil {
		t.Fatalf("Failed to fetch: %v", err)
	}
	if string(payload) != "curious otter" {
		t.Errorf("Expected published payload back, got %q", payload)
	}
}

func TestIntegration_AdminTopicPartitions(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	broker, cleanup := SetupTestKafka(t, ctx)
	defer cleanup()

	profile := integrationProfile(broker)
	topic := "gregor-metadata"

	// Publishing creates the topic on clusters with auto-creation enabled.
	if err := PublishOnce(ctx, profile, topic, "seed"); err != nil {
		t.Fatalf("Failed to seed topic: %v", err)
	}

	admin, err := NewAdmin(profile)
	if err != nil {
		t.Fatalf("Failed to create admin: %v", err)
	}
	defer admin.Close()

	partitions, err := admin.TopicPartitions(ctx, topic)
	if err != nil {
		t.Fatalf("Failed to fetch partitions: %v", err)
	}
	if len(partitions) == 0 {
		t.Fatal("Expected at least one partition")
	}

	summary := models.ComputeSummary(partitions)
	if summary.TotalPartitions != len(partitions) {
		t.Errorf("Expected %d total partitions, got %d", len(partitions), summary.TotalPartitions)
	}
	if summary.MinISR < 0 || summary.MaxISR < summary.MinISR {
		t.Errorf("Inconsistent ISR bounds: min %d max %d", summary.MinISR, summary.MaxISR)
	}
}
