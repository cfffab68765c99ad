package models

import "time"

// NotificationType defines the kind of notification.
type NotificationType string

const (
	NotificationRoundStart       NotificationType = "ROUND_START"
	NotificationRoundEnd         NotificationType = "ROUND_END"
	NotificationRoleAssigned     NotificationType = "ROLE_ASSIGNED"
	NotificationResultsAvailable NotificationType = "RESULTS_AVAILABLE"
	NotificationSystem           NotificationType = "SYSTEM"
)

// Notification is a single entry in a user's notification feed. Read is a
// client-mutable projection of server truth, reconciled on the next full
// fetch.
type Notification struct {
	ID        int              `json:"id"`
	Type      NotificationType `json:"type"`
	Message   string           `json:"message"`
	Link      string           `json:"link,omitempty"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"created_at"`
}
