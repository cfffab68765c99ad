package league_api_client

import (
	"context"
	"encoding/json"
	"fmt"
)

type LoginResponse struct {
	Token    string `json:"token"`
	IsAdmin  bool   `json:"is_admin"`
	Username string `json:"username"`
}

type MeResponse struct {
	Username    string `json:"username"`
	IsStaff     bool   `json:"is_staff"`
	IsSuperuser bool   `json:"is_superuser"`
}

// IsAdmin reports whether the account has admin rights. The backend exposes
// both staff and superuser flags; either grants admin access.
func (m MeResponse) IsAdmin() bool {
	return m.IsStaff || m.IsSuperuser
}

// Login exchanges credentials for a token and admin flag. On success the
// token is installed on the client for subsequent requests.
func (c *LeagueAPIClient) Login(ctx context.Context, username, password string) (*LoginResponse, error) {
	body, err := c.PostJSON(ctx, LoginEndpoint, map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	var resp LoginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal login response: %w", err)
	}

	c.SetToken(resp.Token)
	return &resp, nil
}

// Me fetches the current account, used to re-verify the cached admin flag
// against the server.
func (c *LeagueAPIClient) Me(ctx context.Context) (*MeResponse, error) {
	body, err := c.Get(ctx, MeEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	var resp MeResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user response: %w", err)
	}
	return &resp, nil
}
