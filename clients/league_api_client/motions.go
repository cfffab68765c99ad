package league_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/rdjleague/debatesync/internal/models"
)

// ListMotions fetches the motion catalogue.
func (c *LeagueAPIClient) ListMotions(ctx context.Context) ([]models.Motion, error) {
	return c.fetchMotions(ctx, MotionsEndpoint)
}

// Glossary fetches the motion glossary view.
func (c *LeagueAPIClient) Glossary(ctx context.Context) ([]models.Motion, error) {
	return c.fetchMotions(ctx, MotionsGlossaryEndpoint)
}

func (c *LeagueAPIClient) fetchMotions(ctx context.Context, endpoint string) ([]models.Motion, error) {
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch motions: %w", err)
	}
	return parseMotions(body), nil
}

// parseMotions normalizes the motion payload shapes the backend has been
// observed to return: a bare array, a {"motions": [...]} wrapper, or a single
// motion object. Anything else yields an empty catalogue with a warning
// rather than a failed view.
func parseMotions(body []byte) []models.Motion {
	var list []models.Motion
	if err := json.Unmarshal(body, &list); err == nil {
		return list
	}

	var wrapped struct {
		Motions []models.Motion `json:"motions"`
	}
	if err := json.Unmarshal(body, &wrapped); err == nil && wrapped.Motions != nil {
		return wrapped.Motions
	}

	var single models.Motion
	if err := json.Unmarshal(body, &single); err == nil && single.ID != 0 && single.Text != "" {
		return []models.Motion{single}
	}

	log.Warn().Msg("unexpected motions response shape")
	return nil
}

// UniqueThemes extracts the distinct themes present in a motion list,
// preserving first-seen order.
func UniqueThemes(motions []models.Motion) []models.Theme {
	seen := make(map[string]bool, len(motions))
	var themes []models.Theme
	for _, m := range motions {
		if !seen[m.Theme.Name] {
			seen[m.Theme.Name] = true
			themes = append(themes, m.Theme)
		}
	}
	return themes
}
