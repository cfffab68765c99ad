package models

import "time"

// WinningSide defines which bench won a round.
type WinningSide string

const (
	SideGovernment WinningSide = "GOVERNMENT"
	SideOpposition WinningSide = "OPPOSITION"
)

// SpeakerScore is one speaker's mark within a submitted result.
type SpeakerScore struct {
	UserID   int     `json:"user_id"`
	Role     string  `json:"role"`
	Score    float64 `json:"score"`
	Comments string  `json:"comments,omitempty"`
}

// RoundResult is the chair adjudicator's summary for a completed round.
type RoundResult struct {
	RoundID       int            `json:"round_id"`
	WinningSide   WinningSide    `json:"winning_side"`
	Summary       string         `json:"summary"`
	SpeakerScores []SpeakerScore `json:"speaker_scores,omitempty"`
	SubmittedBy   string         `json:"submitted_by,omitempty"`
	SubmittedAt   *time.Time     `json:"submitted_at,omitempty"`
}
