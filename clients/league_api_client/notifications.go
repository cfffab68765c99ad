package league_api_client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rdjleague/debatesync/internal/models"
)

type countResponse struct {
	Count int `json:"count"`
}

// ListNotifications fetches the full notification feed, newest first.
func (c *LeagueAPIClient) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	body, err := c.Get(ctx, NotificationsEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	var list []models.Notification
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, fmt.Errorf("failed to unmarshal notifications: %w", err)
	}
	return list, nil
}

// UnreadCount fetches only the unread counter. Cheaper than ListNotifications
// and meant for frequent polling.
func (c *LeagueAPIClient) UnreadCount(ctx context.Context) (int, error) {
	body, err := c.Get(ctx, NotificationCountEndpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to get notification count: %w", err)
	}

	var resp countResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("failed to unmarshal notification count: %w", err)
	}
	return resp.Count, nil
}

// MarkRead marks one notification as read.
func (c *LeagueAPIClient) MarkRead(ctx context.Context, id int) error {
	return c.notificationAction(ctx, id, "mark_read")
}

// MarkUnread marks one notification as unread.
func (c *LeagueAPIClient) MarkUnread(ctx context.Context, id int) error {
	return c.notificationAction(ctx, id, "mark_unread")
}

func (c *LeagueAPIClient) notificationAction(ctx context.Context, id int, action string) error {
	_, err := c.PostJSON(ctx, fmt.Sprintf(NotificationEndpoint, id), map[string]string{"action": action})
	if err != nil {
		return fmt.Errorf("failed to %s notification %d: %w", action, id, err)
	}
	return nil
}

// MarkAllRead marks every notification as read.
func (c *LeagueAPIClient) MarkAllRead(ctx context.Context) error {
	_, err := c.PostJSON(ctx, NotificationActionsEndpoint, map[string]string{"action": "mark_all_read"})
	if err != nil {
		return fmt.Errorf("failed to mark all notifications read: %w", err)
	}
	return nil
}
