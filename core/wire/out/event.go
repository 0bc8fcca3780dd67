package out

// Event types pushed to live channel observers.
const (
	EventConnecting = "connecting"
	EventReady      = "ready"
	EventError      = "error"
	EventRecord     = "record"
)

// Event is one message pushed over the live channel. Record events carry
// the consumed payload; error events carry the failure message.
type Event struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	Payload string `json:"payload,omitempty"`
}
