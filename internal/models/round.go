package models

import (
	"time"
)

// RoundFormat defines the debate format of a round. The wire codes come from
// the backend: ABP is British Parliamentary, PDA is Asian Parliamentary.
type RoundFormat string

const (
	FormatBritishParliamentary RoundFormat = "ABP"
	FormatAsianParliamentary   RoundFormat = "PDA"
)

// RequiredDebaters returns how many debater roles must be filled before the
// round may start: four teams of two for BP, two teams of three for AP.
func (f RoundFormat) RequiredDebaters() int {
	if f == FormatBritishParliamentary {
		return 8
	}
	return 6
}

// RoundStatus defines the lifecycle state of a round. Status is monotonic
// through SETUP -> ALLOCATION -> ACTIVE -> COMPLETED, with a side exit from
// ACTIVE to TERMINATED. The server value is authoritative; clients apply
// whatever status the last poll returned.
type RoundStatus string

const (
	RoundStatusSetup      RoundStatus = "SETUP"
	RoundStatusAllocation RoundStatus = "ALLOCATION"
	RoundStatusActive     RoundStatus = "ACTIVE"
	RoundStatusCompleted  RoundStatus = "COMPLETED"
	RoundStatusTerminated RoundStatus = "TERMINATED"
)

// Round represents one debate session.
type Round struct {
	ID              int         `json:"id"`
	Format          RoundFormat `json:"format"`
	Status          RoundStatus `json:"status"`
	Motion          *Motion     `json:"motion,omitempty"`
	RoundCode       string      `json:"round_code,omitempty"`
	MaxAdjudicators int         `json:"max_adjudicators"`
	IsActive        bool        `json:"is_active"`
	CreatedAt       time.Time   `json:"created_at"`
	StartedAt       *time.Time  `json:"started_at,omitempty"`
	CompletedAt     *time.Time  `json:"completed_at,omitempty"`
}

// Participant is one user inside a round. Role is empty until allocated;
// a participant absent from the next poll has left the round.
type Participant struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsReady  bool   `json:"is_ready"`
}

// Allocation pairs a participant with a role. A participant holds at most one
// role at a time within a round.
type Allocation struct {
	UserID int    `json:"user_id"`
	Role   string `json:"role"`
}
