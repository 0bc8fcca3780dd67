package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/gregor-kafka/server/core/adapters"
	"github.com/gregor-kafka/server/core/wire/in"
	"github.com/gregor-kafka/server/core/wire/out"
)

// ProduceOnce handles POST /produce: a single fire-and-forget publish on a
// fresh connection, distinct from the session producers.
func (h *Handler) ProduceOnce(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}
	defer r.Body.Close()

	var request in.ProduceRequest
	if err := json.Unmarshal(body, &request); err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}

	profile, err := adapters.ProfileFromWire(request.Connection)
	if err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}
	if err := profile.Validate(); err != nil {
		writeFailure(w, http.StatusBadRequest, err)
		return
	}

	if err := h.publishOnce(r.Context(), profile, request.Message); err != nil {
		log.Printf("[handlers/produce] failed to send message: %v", err)
		writeFailure(w, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Result{
		Success: true,
		Message: "Message sent",
	})
}
