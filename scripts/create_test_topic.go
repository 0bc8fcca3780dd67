package main

import (
	"fmt"
	"log"
	"os"

	"github.com/segmentio/kafka-go"
)

// Creates the harness topic on a local cluster so the producer, relay and
// replication endpoints have something to work against.
func main() {
	broker := os.Getenv("GREGOR_KAFKA_BROKER")
	if broker == "" {
		broker = "localhost:9092"
	}
	topic := os.Getenv("GREGOR_KAFKA_TOPIC")
	if topic == "" {
		topic = "test-topic"
	}

	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		log.Fatalf("ERROR: Failed to connect to %s: %v", broker, err)
	}
	defer conn.Close()

	controller, err := conn.Controller()
	if err != nil {
		log.Fatalf("ERROR: Failed to get controller: %v", err)
	}

	// Try to connect to controller, fallback to original broker
	controllerConn, err := kafka.Dial("tcp", fmt.Sprintf("%s:%d", controller.Host, controller.Port))
	if err != nil {
		log.Printf("WARNING: Could not connect to controller, using original broker")
		controllerConn = conn
	} else {
		defer controllerConn.Close()
	}

	err = controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     3,
		ReplicationFactor: 1,
	})
	if err != nil {
		log.Printf("  - Topic %s: %v", topic, err)
	} else {
		log.Printf("  ✓ Created topic: %s (3 partitions, RF=1)", topic)
	}

	partitions, err := conn.ReadPartitions(topic)
	if err != nil {
		log.Fatalf("ERROR: Failed to read partitions: %v", err)
	}
	log.Printf("%s: %d partition(s)", topic, len(partitions))
}
