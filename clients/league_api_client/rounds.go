package league_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rdjleague/debatesync/internal/models"
)

type participantsResponse struct {
	Participants []models.Participant `json:"participants"`
}

type statusResponse struct {
	Status models.RoundStatus `json:"status"`
}

// GetRound fetches the full round snapshot.
func (c *LeagueAPIClient) GetRound(ctx context.Context, roundID int) (*models.Round, error) {
	body, err := c.Get(ctx, fmt.Sprintf(RoundEndpoint, roundID))
	if err != nil {
		return nil, fmt.Errorf("failed to get round %d: %w", roundID, err)
	}

	var round models.Round
	if err := json.Unmarshal(body, &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}
	return &round, nil
}

// GetRoundStatus fetches only the round's lifecycle status. This is the
// lightweight form intended for polling.
func (c *LeagueAPIClient) GetRoundStatus(ctx context.Context, roundID int) (models.RoundStatus, error) {
	body, err := c.Get(ctx, fmt.Sprintf(RoundStatusEndpoint, roundID))
	if err != nil {
		return "", fmt.Errorf("failed to get round %d status: %w", roundID, err)
	}

	var resp statusResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to unmarshal status: %w", err)
	}
	return resp.Status, nil
}

// GetParticipants fetches the round's current participant and role list. The
// backend serves either a bare array or a {"participants": [...]} wrapper
// depending on version; both shapes are accepted.
func (c *LeagueAPIClient) GetParticipants(ctx context.Context, roundID int) ([]models.Participant, error) {
	body, err := c.Get(ctx, fmt.Sprintf(RoundParticipantsEndpoint, roundID))
	if err != nil {
		return nil, fmt.Errorf("failed to get round %d participants: %w", roundID, err)
	}

	var list []models.Participant
	if err := json.Unmarshal(body, &list); err == nil {
		return list, nil
	}

	var wrapped participantsResponse
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to unmarshal participants: %w", err)
	}
	return wrapped.Participants, nil
}

// JoinRound joins the current user to a round by its join code.
func (c *LeagueAPIClient) JoinRound(ctx context.Context, roundCode string) (*models.Round, error) {
	body, err := c.PostJSON(ctx, RoundJoinEndpoint, map[string]string{"round_code": roundCode})
	if err != nil {
		return nil, fmt.Errorf("failed to join round: %w", err)
	}

	var round models.Round
	if err := json.Unmarshal(body, &round); err != nil {
		return nil, fmt.Errorf("failed to unmarshal round: %w", err)
	}
	return &round, nil
}

// SubmitAllocation submits the full role allocation for a round.
func (c *LeagueAPIClient) SubmitAllocation(ctx context.Context, roundID int, allocations []models.Allocation) error {
	_, err := c.PostJSON(ctx, fmt.Sprintf(AdminAllocateEndpoint, roundID), map[string]any{
		"allocations": allocations,
	})
	if err != nil {
		return fmt.Errorf("failed to submit allocation for round %d: %w", roundID, err)
	}
	return nil
}

// StartRound transitions a round from ALLOCATION to ACTIVE.
func (c *LeagueAPIClient) StartRound(ctx context.Context, roundID int) error {
	if _, err := c.Post(ctx, fmt.Sprintf(AdminStartEndpoint, roundID), nil); err != nil {
		return fmt.Errorf("failed to start round %d: %w", roundID, err)
	}
	return nil
}

// TerminateRound force-terminates an ACTIVE round.
func (c *LeagueAPIClient) TerminateRound(ctx context.Context, roundID int) error {
	if _, err := c.Post(ctx, fmt.Sprintf(AdminTerminateEndpoint, roundID), nil); err != nil {
		return fmt.Errorf("failed to terminate round %d: %w", roundID, err)
	}
	return nil
}
