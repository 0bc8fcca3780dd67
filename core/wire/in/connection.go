package in

// Connection carries the broker list and auth material the browser sends
// with every request. Brokers is a comma-separated address list; the
// certificate fields are base64 data URLs produced by the file upload.
type Connection struct {
	Brokers  string `json:"brokers"`
	AuthType string `json:"authType,omitempty"`

	Username string `json:"username,omitempty"`
	Password string `json:"password,omitempty"`

	CA         string `json:"ca,omitempty"`
	ClientCert string `json:"clientCert,omitempty"`
	ClientKey  string `json:"clientKey,omitempty"`

	TokenEndpointURL string `json:"tokenEndpointUrl,omitempty"`
	ClientID         string `json:"clientId,omitempty"`
	ClientSecret     string `json:"clientSecret,omitempty"`
}
