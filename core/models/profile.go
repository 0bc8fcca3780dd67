package models

// AuthType selects how a connection to the brokers is authenticated.
type AuthType string

const (
	AuthNone          AuthType = "none"
	AuthSASLPlaintext AuthType = "sasl_plaintext"
	AuthSSL           AuthType = "ssl"
	AuthOAuthBearer   AuthType = "oauthbearer"
)

// ConnectionProfile holds everything needed to open an authenticated
// connection to a Kafka cluster. It is built per request and never persisted.
type ConnectionProfile struct {
	Brokers  []string
	AuthType AuthType

	// sasl_plaintext
	Username string
	Password string

	// ssl / oauthbearer, PEM encoded
	CA         []byte
	ClientCert []byte
	ClientKey  []byte

	// oauthbearer
	TokenEndpointURL string
	ClientID         string
	ClientSecret     string
}

// HasCertificates reports whether the full mutual-TLS material is present.
// Under oauthbearer the certificates are optional.
func (p *ConnectionProfile) HasCertificates() bool {
	return len(p.CA) > 0 && len(p.ClientCert) > 0 && len(p.ClientKey) > 0
}

// Validate checks the profile for the fields its auth mode requires.
func (p *ConnectionProfile) Validate() error {
	if len(p.Brokers) == 0 {
		return ErrBrokersRequired
	}

	switch p.AuthType {
	case AuthNone, "":
	case AuthSASLPlaintext:
		if p.Username == "" || p.Password == "" {
			return ErrCredentialsRequired
		}
	case AuthSSL:
		if !p.HasCertificates() {
			return ErrCertificateRequired
		}
	case AuthOAuthBearer:
		if p.TokenEndpointURL == "" || p.ClientID == "" || p.ClientSecret == "" {
			return ErrOAuthConfigRequired
		}
	default:
		return ErrUnknownAuthType
	}

	return nil
}
