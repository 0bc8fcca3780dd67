package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gregor-kafka/server/core/adapters"
	"github.com/gregor-kafka/server/core/models"
	"github.com/gregor-kafka/server/core/wire/in"
	"github.com/gregor-kafka/server/core/wire/out"
)

func isValidationError(err error) bool {
	return errors.Is(err, models.ErrBrokersRequired) ||
		errors.Is(err, models.ErrSessionKeyRequired) ||
		errors.Is(err, models.ErrCredentialsRequired) ||
		errors.Is(err, models.ErrCertificateRequired) ||
		errors.Is(err, models.ErrOAuthConfigRequired) ||
		errors.Is(err, models.ErrUnknownAuthType)
}

// StartProducer handles POST /producer/start: begins a background publish
// loop keyed by the caller's session id, superseding any loop already
// running under that id.
func (h *Handler) StartProducer(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}
	defer r.Body.Close()

	var request in.ProducerStartRequest
	if err := json.Unmarshal(body, &request); err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}

	profile, err := adapters.ProfileFromWire(request.Connection)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}

	interval := time.Duration(request.IntervalMs) * time.Millisecond
	if err := h.registry.Start(r.Context(), request.SessionID, profile, interval); err != nil {
		if isValidationError(err) {
			writeFailure(w, http.StatusBadRequest, err)
			return
		}
		log.Printf("[handlers/producer] failed to start producer: %v", err)
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Result{
		Success:   true,
		Message:   "Producer started",
		SessionID: request.SessionID,
	})
}

// StopProducer handles POST /producer/stop. Stopping is idempotent: an
// unknown or already-stopped session id still reports success, because the
// UI retries stop calls without tracking exact state.
func (h *Handler) StopProducer(w http.ResponseWriter, r *http.Request) {
	var request in.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}
	defer r.Body.Close()

	stopped, err := h.registry.Stop(request.SessionID)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}

	message := "Producer stopped"
	if !stopped {
		message = "Producer already stopped or not found"
	}
	writeJSON(w, http.StatusOK, out.Result{
		Success: true,
		Message: message,
	})
}

// ProducerStatus handles POST /producer/status: a pure lookup.
func (h *Handler) ProducerStatus(w http.ResponseWriter, r *http.Request) {
	var request in.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}
	defer r.Body.Close()

	active, err := h.registry.Active(request.SessionID)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, out.ProducerStatus{
		Success: true,
		Active:  active,
	})
}
