package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gregor-kafka/server/core/config"
	"github.com/gregor-kafka/server/core/models"
	"github.com/gregor-kafka/server/core/producer"
	"github.com/gregor-kafka/server/core/relay"
	"github.com/gregor-kafka/server/core/replication"
	"github.com/gregor-kafka/server/core/wire/out"
)

// PublishOnceFunc sends one message on a fresh connection.
type PublishOnceFunc func(ctx context.Context, profile *models.ConnectionProfile, message string) error

// Handler holds dependencies for HTTP handlers
type Handler struct {
	config      *config.Config
	registry    *producer.Registry
	liveRelay   *relay.Relay
	hub         *relay.Hub
	snapshots   *replication.Service
	publishOnce PublishOnceFunc
}

// NewHandler creates a new handler instance
func NewHandler(cfg *config.Config, registry *producer.Registry, liveRelay *relay.Relay, hub *relay.Hub, snapshots *replication.Service, publishOnce PublishOnceFunc) *Handler {
	return &Handler{
		config:      cfg,
		registry:    registry,
		liveRelay:   liveRelay,
		hub:         hub,
		snapshots:   snapshots,
		publishOnce: publishOnce,
	}
}

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes a plain error response
func writeError(w http.ResponseWriter, status int, message string, err error) {
	response := map[string]interface{}{
		"error":  message,
		"status": status,
	}
	if err != nil {
		response["details"] = err.Error()
	}
	writeJSON(w, status, response)
}

// writeFailure writes a {success:false, error} response, the shape the
// produce and producer endpoints report failures with.
func writeFailure(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, out.Result{
		Success: false,
		Error:   err.Error(),
	})
}
