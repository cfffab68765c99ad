package models

// Debater roles. British Parliamentary uses all eight; Asian Parliamentary
// drops the two closing-half member roles.
const (
	RolePrimeMinister            = "Prime Minister"
	RoleDeputyPrimeMinister      = "Deputy Prime Minister"
	RoleMemberOfGovernment       = "Member of Government"
	RoleGovernmentWhip           = "Government Whip"
	RoleLeaderOfOpposition       = "Leader of Opposition"
	RoleDeputyLeaderOfOpposition = "Deputy Leader of Opposition"
	RoleMemberOfOpposition       = "Member of Opposition"
	RoleOppositionWhip           = "Opposition Whip"
)

// Adjudicator and non-speaking roles.
const (
	RoleChairAdjudicator = "Chair Adjudicator"
	RolePanelist         = "Panelist"
	RoleTrainee          = "Trainee"
	RoleSpectator        = "Spectator"
)

// DebaterRoles returns the full debater role set for a format, in speaking
// order.
func DebaterRoles(format RoundFormat) []string {
	if format == FormatBritishParliamentary {
		return []string{
			RolePrimeMinister,
			RoleDeputyPrimeMinister,
			RoleMemberOfGovernment,
			RoleGovernmentWhip,
			RoleLeaderOfOpposition,
			RoleDeputyLeaderOfOpposition,
			RoleMemberOfOpposition,
			RoleOppositionWhip,
		}
	}
	return []string{
		RolePrimeMinister,
		RoleDeputyPrimeMinister,
		RoleGovernmentWhip,
		RoleLeaderOfOpposition,
		RoleDeputyLeaderOfOpposition,
		RoleOppositionWhip,
	}
}

// AdjudicatorRoles returns the adjudicator role set.
func AdjudicatorRoles() []string {
	return []string{RoleChairAdjudicator, RolePanelist, RoleTrainee}
}

// IsAdjudicatorRole reports whether role counts against the adjudicator cap.
func IsAdjudicatorRole(role string) bool {
	switch role {
	case RoleChairAdjudicator, RolePanelist, RoleTrainee:
		return true
	}
	return false
}
