package core

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/gregor-kafka/server/core/config"
	"github.com/gregor-kafka/server/core/handlers"
	"github.com/gregor-kafka/server/core/kafka"
	"github.com/gregor-kafka/server/core/models"
	"github.com/gregor-kafka/server/core/producer"
	"github.com/gregor-kafka/server/core/relay"
	"github.com/gregor-kafka/server/core/replication"
)

func StartServer() {
	cfg := config.Load()

	log.Printf("[Server] Topic: %s, consumer group: %s", cfg.Kafka.Topic, cfg.Kafka.GroupID)

	registry := producer.NewRegistry(
		func(ctx context.Context, profile *models.ConnectionProfile) (producer.Publisher, error) {
			return kafka.NewPublisher(ctx, profile, cfg.Kafka.Topic)
		},
		time.Duration(cfg.Kafka.ProducerIntervalMs)*time.Millisecond,
	)

	hub := relay.NewHub()
	liveRelay := relay.New(hub,
		func(ctx context.Context, profile *models.ConnectionProfile, fromBeginning bool) (relay.Subscriber, error) {
			return kafka.NewSubscriber(ctx, profile, cfg.Kafka.Topic, cfg.Kafka.GroupID, fromBeginning)
		},
	)

	snapshots := replication.NewService(
		func(ctx context.Context, profile *models.ConnectionProfile) (replication.Admin, error) {
			return kafka.NewAdmin(profile)
		},
	)

	publishOnce := func(ctx context.Context, profile *models.ConnectionProfile, message string) error {
		return kafka.PublishOnce(ctx, profile, cfg.Kafka.Topic, message)
	}

	handler := handlers.NewHandler(cfg, registry, liveRelay, hub, snapshots, publishOnce)

	routes := NewRoutes(handler)

	httpServerReliableStart(cfg.Server.Host, cfg.Server.Port, routes.Router, func() {
		registry.Shutdown()
		liveRelay.Shutdown()
	})
}

func httpServerReliableStart(address, port string, router *mux.Router, onShutdown func()) {
	addr := fmt.Sprintf("%s:%s", address, port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second, //TODO: transform in config
		WriteTimeout: 15 * time.Second, //TODO: transform in config
		IdleTimeout:  60 * time.Second, //TODO: transform in config
	}

	go func() {
		log.Printf("Starting HTTP Server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down HTTP server...")

	onShutdown()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
