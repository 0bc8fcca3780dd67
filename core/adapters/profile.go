package adapters

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gregor-kafka/server/core/models"
	"github.com/gregor-kafka/server/core/wire/in"
)

// ProfileFromWire converts the connection settings the browser sends into a
// ConnectionProfile: the comma-separated broker list is split, the base64
// data-URL certificate fields are decoded back to PEM.
func ProfileFromWire(connection in.Connection) (*models.ConnectionProfile, error) {
	profile := &models.ConnectionProfile{
		AuthType:         models.AuthType(connection.AuthType),
		Username:         connection.Username,
		Password:         connection.Password,
		TokenEndpointURL: connection.TokenEndpointURL,
		ClientID:         connection.ClientID,
		ClientSecret:     connection.ClientSecret,
	}

	if profile.AuthType == "" {
		profile.AuthType = models.AuthNone
	}

	for _, broker := range strings.Split(connection.Brokers, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			profile.Brokers = append(profile.Brokers, broker)
		}
	}

	var err error
	if profile.CA, err = decodeDataURL(connection.CA); err != nil {
		return nil, fmt.Errorf("invalid CA certificate: %w", err)
	}
	if profile.ClientCert, err = decodeDataURL(connection.ClientCert); err != nil {
		return nil, fmt.Errorf("invalid client certificate: %w", err)
	}
	if profile.ClientKey, err = decodeDataURL(connection.ClientKey); err != nil {
		return nil, fmt.Errorf("invalid client key: %w", err)
	}

	return profile, nil
}

// decodeDataURL decodes "data:<mime>;base64,<content>" as produced by the
// browser's FileReader. Bare base64 content is accepted too.
func decodeDataURL(value string) ([]byte, error) {
	if value == "" {
		return nil, nil
	}

	encoded := value
	if index := strings.Index(value, ","); index >= 0 {
		encoded = value[index+1:]
	}

	return base64.StdEncoding.DecodeString(encoded)
}
