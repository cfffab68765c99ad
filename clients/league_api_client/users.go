package league_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rdjleague/debatesync/internal/models"
)

type CreateUserRequest struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	Email         string `json:"email,omitempty"`
	IsAdmin       bool   `json:"is_admin"`
	IsDebater     bool   `json:"is_debater"`
	IsAdjudicator bool   `json:"is_adjudicator"`
}

type UpdateUserRequest struct {
	Username      *string `json:"username,omitempty"`
	Email         *string `json:"email,omitempty"`
	IsAdmin       *bool   `json:"is_admin,omitempty"`
	IsDebater     *bool   `json:"is_debater,omitempty"`
	IsAdjudicator *bool   `json:"is_adjudicator,omitempty"`
}

// ListUsers fetches all accounts. Admin only.
func (c *LeagueAPIClient) ListUsers(ctx context.Context) ([]models.User, error) {
	body, err := c.Get(ctx, AdminUsersEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var users []models.User
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal users: %w", err)
	}
	return users, nil
}

// CreateUser creates an account. Admin only.
func (c *LeagueAPIClient) CreateUser(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	body, err := c.PostJSON(ctx, AdminUsersEndpoint, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// UpdateUser patches an account. Admin only.
func (c *LeagueAPIClient) UpdateUser(ctx context.Context, id int, req UpdateUserRequest) (*models.User, error) {
	body, err := c.PatchJSON(ctx, fmt.Sprintf(AdminUserEndpoint, id), req)
	if err != nil {
		return nil, fmt.Errorf("failed to update user %d: %w", id, err)
	}

	var user models.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	return &user, nil
}

// DeleteUser removes an account. Admin only.
func (c *LeagueAPIClient) DeleteUser(ctx context.Context, id int) error {
	if _, err := c.Delete(ctx, fmt.Sprintf(AdminUserEndpoint, id)); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", id, err)
	}
	return nil
}
