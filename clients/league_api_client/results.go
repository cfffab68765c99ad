package league_api_client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rdjleague/debatesync/internal/models"
)

// ErrEmptySummary is returned by SubmitResults before any network call when
// the chair's summary is missing.
var ErrEmptySummary = errors.New("result summary must not be empty")

// GetResults fetches the chair adjudicator's submitted result for a round.
func (c *LeagueAPIClient) GetResults(ctx context.Context, roundID int) (*models.RoundResult, error) {
	body, err := c.Get(ctx, fmt.Sprintf(RoundResultsEndpoint, roundID))
	if err != nil {
		return nil, fmt.Errorf("failed to get results for round %d: %w", roundID, err)
	}

	var result models.RoundResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal results: %w", err)
	}
	return &result, nil
}

// SubmitResults submits the chair's summary, winning side and speaker scores.
// The summary is validated client-side so an empty form never reaches the
// backend.
func (c *LeagueAPIClient) SubmitResults(ctx context.Context, result models.RoundResult) error {
	if strings.TrimSpace(result.Summary) == "" {
		return ErrEmptySummary
	}

	_, err := c.PostJSON(ctx, fmt.Sprintf(RoundResultsEndpoint, result.RoundID), result)
	if err != nil {
		return fmt.Errorf("failed to submit results for round %d: %w", result.RoundID, err)
	}
	return nil
}
