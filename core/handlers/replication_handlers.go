package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gregor-kafka/server/core/adapters"
	"github.com/gregor-kafka/server/core/models"
	"github.com/gregor-kafka/server/core/wire/in"
)

// ReplicationSnapshot handles POST /admin/replication: fetches the topic's
// metadata and returns the derived per-partition health view.
func (h *Handler) ReplicationSnapshot(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body", err)
		return
	}
	defer r.Body.Close()

	var request in.ReplicationRequest
	if err := json.Unmarshal(body, &request); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid replication request", err)
		return
	}

	profile, err := adapters.ProfileFromWire(request.Connection)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid connection settings", err)
		return
	}

	topic := request.Topic
	if topic == "" {
		topic = h.config.Kafka.Topic
	}

	snapshot, err := h.snapshots.Snapshot(r.Context(), profile, topic)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrTopicNotFound):
			writeError(w, http.StatusNotFound, "Topic not found", err)
		case isValidationError(err):
			writeError(w, http.StatusBadRequest, "Invalid connection settings", err)
		default:
			log.Printf("[handlers/replication] snapshot failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to fetch topic metadata", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, adapters.ReplicationSnapshotToWire(snapshot))
}
