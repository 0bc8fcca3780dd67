package config

import (
	"os"
	"strconv"
)

type KafkaConfig struct {
	// Topic is the single topic the harness produces to and consumes from.
	Topic string
	// GroupID is the consumer group used by the live consumption relay.
	GroupID string
	// ProducerIntervalMs is the default publish interval for background
	// producer sessions when the request carries none.
	ProducerIntervalMs int
}

type HttpServerConfig struct {
	Port string
	Host string
}

type Config struct {
	Server HttpServerConfig
	Kafka  KafkaConfig
}

func getStringEnvOr(key, fallback string) string {
	if envVar, exists := os.LookupEnv(key); exists {
		return envVar
	}
	return fallback
}

func getIntEnvOr(key string, fallback int) int {
	if envVar, exists := os.LookupEnv(key); exists {
		if intVar, err := strconv.Atoi(envVar); err == nil {
			return intVar
		}
	}
	return fallback
}

func Load() *Config {
	port := getStringEnvOr("GREGOR_SERVER_PORT", "8080")
	host := getStringEnvOr("GREGOR_SERVER_HOST", "0.0.0.0")

	topic := getStringEnvOr("GREGOR_KAFKA_TOPIC", "test-topic")
	groupID := getStringEnvOr("GREGOR_KAFKA_GROUP_ID", "test-group")
	producerIntervalMs := getIntEnvOr("GREGOR_PRODUCER_INTERVAL_MS", 2000)

	return &Config{
		Server: HttpServerConfig{
			Port: port,
			Host: host,
		},
		Kafka: KafkaConfig{
			Topic:              topic,
			GroupID:            groupID,
			ProducerIntervalMs: producerIntervalMs,
		},
	}
}
