package out

type Result struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

type ProducerStatus struct {
	Success bool `json:"success"`
	Active  bool `json:"active"`
}
