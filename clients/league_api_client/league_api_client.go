// Package league_api_client is the typed client for the debate-tournament
// backend's REST API. All business logic lives server-side; this client is a
// thin request/decode layer over it.
package league_api_client

import (
	"github.com/rdjleague/debatesync/clients"
)

type LeagueAPIClient struct {
	*clients.BaseClient
}

func NewLeagueAPIClient(baseURL string) *LeagueAPIClient {
	return &LeagueAPIClient{
		BaseClient: clients.NewBaseClient(baseURL),
	}
}

// NewAuthenticatedClient builds a client that sends the given token on every
// request.
func NewAuthenticatedClient(baseURL, token string) *LeagueAPIClient {
	client := NewLeagueAPIClient(baseURL)
	client.SetToken(token)
	return client
}
