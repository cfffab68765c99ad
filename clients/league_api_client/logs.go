package league_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rdjleague/debatesync/internal/models"
)

// AttendanceLogs fetches the attendance activity log. Admin only.
func (c *LeagueAPIClient) AttendanceLogs(ctx context.Context) ([]models.ActivityLog, error) {
	return c.fetchLogs(ctx, AdminAttendanceLogsEndpoint)
}

// SystemLogs fetches the system activity log. Admin only.
func (c *LeagueAPIClient) SystemLogs(ctx context.Context) ([]models.ActivityLog, error) {
	return c.fetchLogs(ctx, AdminSystemLogsEndpoint)
}

func (c *LeagueAPIClient) fetchLogs(ctx context.Context, endpoint string) ([]models.ActivityLog, error) {
	body, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch logs: %w", err)
	}

	var logs []models.ActivityLog
	if err := json.Unmarshal(body, &logs); err == nil {
		return logs, nil
	}

	var wrapped struct {
		Logs []models.ActivityLog `json:"logs"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, fmt.Errorf("failed to unmarshal logs: %w", err)
	}
	return wrapped.Logs, nil
}
