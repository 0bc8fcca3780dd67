package in

type ProduceRequest struct {
	Connection
	Message string `json:"message"`
}

type ProducerStartRequest struct {
	Connection
	SessionID  string `json:"sessionId"`
	IntervalMs int    `json:"interval,omitempty"`
}

type SessionRequest struct {
	SessionID string `json:"sessionId"`
}

type ReplicationRequest struct {
	Connection
	Topic string `json:"topic,omitempty"`
}

// LiveCommand is a message received over the push channel. The only
// command the client sends is "configure", carrying connection settings.
type LiveCommand struct {
	Connection
	Type string `json:"type"`
}
