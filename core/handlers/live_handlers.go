package handlers

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/gregor-kafka/server/core/adapters"
	"github.com/gregor-kafka/server/core/wire/in"
	"github.com/gregor-kafka/server/core/wire/out"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The harness is driven from a browser UI served elsewhere.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// LiveChannel handles GET /live: upgrades to a websocket, registers the
// client as a relay observer and accepts "configure" commands that point the
// relay at a cluster. Events flow out; configure commands flow in.
func (h *Handler) LiveChannel(w http.ResponseWriter, r *http.Request) {
	connection, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[handlers/live] websocket upgrade failed: %v", err)
		return
	}
	defer connection.Close()

	observer := h.hub.Register()
	defer h.hub.Unregister(observer)

	log.Printf("[handlers/live] client connected, %d observer(s)", h.hub.ObserverCount())

	closed := make(chan struct{})
	go func() {
		for {
			select {
			case event := <-observer.Events():
				if err := connection.WriteJSON(event); err != nil {
					return
				}
			case <-closed:
				return
			}
		}
	}()
	defer close(closed)

	for {
		var command in.LiveCommand
		if err := connection.ReadJSON(&command); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[handlers/live] read error: %v", err)
			}
			log.Printf("[handlers/live] client disconnected")
			return
		}

		if command.Type != "configure" {
			log.Printf("[handlers/live] ignoring unknown command %q", command.Type)
			continue
		}

		profile, err := adapters.ProfileFromWire(command.Connection)
		if err != nil {
			h.hub.Broadcast(out.Event{Type: out.EventError, Message: err.Error()})
			continue
		}

		// Serialized inside the relay; a command arriving while another
		// reconfigure is in flight queues behind it.
		h.liveRelay.Reconfigure(profile)
	}
}
