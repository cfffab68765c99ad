// Package allocation derives role availability and start readiness for a
// round from its current allocation set. Everything here is pure: same
// inputs, same outputs, no I/O.
package allocation

import (
	"github.com/rdjleague/debatesync/internal/models"
)

// RoleAvailability lists the roles still open for assignment, in speaking
// order for debaters and seniority order for adjudicators.
type RoleAvailability struct {
	DebaterRoles     []string
	AdjudicatorRoles []string
}

// AvailableRoles computes which roles remain assignable given the format and
// the allocations already made. Each role name is assignable to exactly one
// participant. Chair Adjudicator disappears once held; Panelist and Trainee
// stay available until the total adjudicator count reaches maxAdjudicators.
// A maxAdjudicators of zero or less means no cap.
func AvailableRoles(format models.RoundFormat, current []models.Allocation, maxAdjudicators int) RoleAvailability {
	taken := make(map[string]bool, len(current))
	adjudicators := 0
	for _, a := range current {
		taken[a.Role] = true
		if models.IsAdjudicatorRole(a.Role) {
			adjudicators++
		}
	}

	var avail RoleAvailability
	for _, role := range models.DebaterRoles(format) {
		if !taken[role] {
			avail.DebaterRoles = append(avail.DebaterRoles, role)
		}
	}

	// The cap gates only Panelist and Trainee; the chair stays offered until
	// someone holds it, so a round filled to its cap can still seat a chair.
	capped := maxAdjudicators > 0 && adjudicators >= maxAdjudicators
	for _, role := range models.AdjudicatorRoles() {
		switch {
		case role == models.RoleChairAdjudicator:
			if !taken[role] {
				avail.AdjudicatorRoles = append(avail.AdjudicatorRoles, role)
			}
		case !capped:
			avail.AdjudicatorRoles = append(avail.AdjudicatorRoles, role)
		}
	}
	return avail
}

// CanStart reports whether the round satisfies the minimum requirements to
// start: exactly one Chair Adjudicator and every debater role for the format
// filled. Missing data is simply "not yet satisfied", never an error.
func CanStart(format models.RoundFormat, current []models.Allocation) bool {
	filled := make(map[string]bool, len(current))
	chairs := 0
	for _, a := range current {
		filled[a.Role] = true
		if a.Role == models.RoleChairAdjudicator {
			chairs++
		}
	}

	if chairs != 1 {
		return false
	}
	for _, role := range models.DebaterRoles(format) {
		if !filled[role] {
			return false
		}
	}
	return true
}
