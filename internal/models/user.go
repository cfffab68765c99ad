package models

import "time"

// User is the admin panel's view of an account.
type User struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	Email         string `json:"email,omitempty"`
	IsAdmin       bool   `json:"is_admin"`
	IsDebater     bool   `json:"is_debater"`
	IsAdjudicator bool   `json:"is_adjudicator"`
}

// LogAction defines what an activity log entry records.
type LogAction string

const (
	LogActionJoined    LogAction = "joined"
	LogActionAllocated LogAction = "allocated"
	LogActionCompleted LogAction = "completed"
)

// ActivityLog is one attendance/system log entry exported by the admin logs
// endpoints.
type ActivityLog struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	RoundID   int       `json:"round_id"`
	Role      string    `json:"role"`
	Action    LogAction `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
