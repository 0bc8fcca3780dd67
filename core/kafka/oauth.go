package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/segmentio/kafka-go/sasl"
)

// The identity provider the original clusters run issues tokens through the
// UMA ticket grant rather than plain client credentials.
const umaTicketGrantType = "urn:ietf:params:oauth:grant-type:uma-ticket"

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// FetchToken posts the UMA ticket grant form to the token endpoint and
// returns the access token. The request inherits the caller's context, so
// the connection timeout bounds the token fetch as well.
func FetchToken(ctx context.Context, endpointURL, clientID, clientSecret string) (string, error) {
	form := url.Values{
		"grant_type":    {umaTicketGrantType},
		"client_id":     {clientID},
		"client_secret": {clientSecret},
		"audience":      {clientID},
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, endpointURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to build token request: %w", err)
	}
	request.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return "", fmt.Errorf("token fetch failed: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(response.Body)
		return "", fmt.Errorf("token fetch failed: %s - %s", response.Status, string(body))
	}

	var token tokenResponse
	if err := json.NewDecoder(response.Body).Decode(&token); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("token response contained no access token")
	}

	return token.AccessToken, nil
}

// OAuthBearer is a SASL/OAUTHBEARER mechanism that fetches a fresh token on
// every authentication attempt.
type OAuthBearer struct {
	TokenEndpointURL string
	ClientID         string
	ClientSecret     string
}

func (m OAuthBearer) Name() string {
	return "OAUTHBEARER"
}

func (m OAuthBearer) Start(ctx context.Context) (sasl.StateMachine, []byte, error) {
	token, err := FetchToken(ctx, m.TokenEndpointURL, m.ClientID, m.ClientSecret)
	if err != nil {
		return nil, nil, err
	}

	// Initial client response per RFC 7628, section 3.1.
	payload := "n,,\x01auth=Bearer " + token + "\x01\x01"
	return m, []byte(payload), nil
}

func (m OAuthBearer) Next(ctx context.Context, challenge []byte) (bool, []byte, error) {
	// The broker answers with an empty challenge on success and a JSON
	// blob describing the failure otherwise.
	if len(challenge) == 0 {
		return true, nil, nil
	}
	return false, nil, fmt.Errorf("oauthbearer authentication rejected: %s", string(challenge))
}
