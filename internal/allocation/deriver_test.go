package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdjleague/debatesync/internal/models"
)

func alloc(roles ...string) []models.Allocation {
	out := make([]models.Allocation, len(roles))
	for i, r := range roles {
		out[i] = models.Allocation{UserID: i + 1, Role: r}
	}
	return out
}

func TestAvailableRolesEmptyBP(t *testing.T) {
	avail := AvailableRoles(models.FormatBritishParliamentary, nil, 3)
	assert.Len(t, avail.DebaterRoles, 8)
	assert.Equal(t, []string{
		models.RoleChairAdjudicator,
		models.RolePanelist,
		models.RoleTrainee,
	}, avail.AdjudicatorRoles)
}

func TestAvailableRolesExcludesTakenDebaters(t *testing.T) {
	avail := AvailableRoles(models.FormatBritishParliamentary,
		alloc(models.RolePrimeMinister, models.RoleDeputyPrimeMinister), 3)

	assert.Equal(t, []string{
		models.RoleMemberOfGovernment,
		models.RoleGovernmentWhip,
		models.RoleLeaderOfOpposition,
		models.RoleDeputyLeaderOfOpposition,
		models.RoleMemberOfOpposition,
		models.RoleOppositionWhip,
	}, avail.DebaterRoles)
}

func TestAvailableRolesAPSet(t *testing.T) {
	avail := AvailableRoles(models.FormatAsianParliamentary, nil, 3)
	assert.Equal(t, []string{
		models.RolePrimeMinister,
		models.RoleDeputyPrimeMinister,
		models.RoleGovernmentWhip,
		models.RoleLeaderOfOpposition,
		models.RoleDeputyLeaderOfOpposition,
		models.RoleOppositionWhip,
	}, avail.DebaterRoles)
}

func TestAvailableRolesChairIsExclusive(t *testing.T) {
	avail := AvailableRoles(models.FormatAsianParliamentary,
		alloc(models.RoleChairAdjudicator), 3)
	assert.Equal(t, []string{models.RolePanelist, models.RoleTrainee}, avail.AdjudicatorRoles)
}

func TestAvailableRolesAdjudicatorCap(t *testing.T) {
	avail := AvailableRoles(models.FormatAsianParliamentary,
		alloc(models.RoleChairAdjudicator, models.RolePanelist, models.RoleTrainee), 3)
	assert.Empty(t, avail.AdjudicatorRoles)

	// Uncapped rounds keep Panelist and Trainee open indefinitely.
	avail = AvailableRoles(models.FormatAsianParliamentary,
		alloc(models.RoleChairAdjudicator, models.RolePanelist, models.RoleTrainee), 0)
	assert.Equal(t, []string{models.RolePanelist, models.RoleTrainee}, avail.AdjudicatorRoles)
}

func TestAvailableRolesChairSurvivesCap(t *testing.T) {
	// A round capped at two adjudicators, both filled by a Panelist and a
	// Trainee, must still offer the chair or it could never start.
	avail := AvailableRoles(models.FormatAsianParliamentary,
		alloc(models.RolePanelist, models.RoleTrainee), 2)
	assert.Equal(t, []string{models.RoleChairAdjudicator}, avail.AdjudicatorRoles)
}

func TestAvailableRolesOrderIndependent(t *testing.T) {
	forward := alloc(models.RolePrimeMinister, models.RoleOppositionWhip, models.RolePanelist)
	reversed := alloc(models.RolePanelist, models.RoleOppositionWhip, models.RolePrimeMinister)

	a := AvailableRoles(models.FormatBritishParliamentary, forward, 3)
	b := AvailableRoles(models.FormatBritishParliamentary, reversed, 3)
	assert.Equal(t, a, b)

	// Idempotent: recomputing from the same set changes nothing.
	assert.Equal(t, a, AvailableRoles(models.FormatBritishParliamentary, forward, 3))
}

func TestCanStart(t *testing.T) {
	fullBP := append(alloc(models.DebaterRoles(models.FormatBritishParliamentary)...),
		models.Allocation{UserID: 9, Role: models.RoleChairAdjudicator})
	fullAP := append(alloc(models.DebaterRoles(models.FormatAsianParliamentary)...),
		models.Allocation{UserID: 7, Role: models.RoleChairAdjudicator})

	tests := []struct {
		name   string
		format models.RoundFormat
		allocs []models.Allocation
		want   bool
	}{
		{"empty round", models.FormatBritishParliamentary, nil, false},
		{"full BP bench with chair", models.FormatBritishParliamentary, fullBP, true},
		{"full AP bench with chair", models.FormatAsianParliamentary, fullAP, true},
		{"BP missing chair", models.FormatBritishParliamentary,
			alloc(models.DebaterRoles(models.FormatBritishParliamentary)...), false},
		{"BP partial teams", models.FormatBritishParliamentary,
			alloc(models.RolePrimeMinister, models.RoleChairAdjudicator), false},
		{"AP bench only panelist", models.FormatAsianParliamentary,
			append(alloc(models.DebaterRoles(models.FormatAsianParliamentary)...),
				models.Allocation{UserID: 7, Role: models.RolePanelist}), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanStart(tt.format, tt.allocs))
		})
	}
}

func TestCanStartImpliesInvariants(t *testing.T) {
	// Whenever CanStart is true, exactly one chair is present and the debater
	// count equals the format requirement.
	allocs := append(alloc(models.DebaterRoles(models.FormatAsianParliamentary)...),
		models.Allocation{UserID: 7, Role: models.RoleChairAdjudicator},
		models.Allocation{UserID: 8, Role: models.RoleTrainee})
	require.True(t, CanStart(models.FormatAsianParliamentary, allocs))

	chairs, debaters := 0, 0
	for _, a := range allocs {
		if a.Role == models.RoleChairAdjudicator {
			chairs++
		}
		if !models.IsAdjudicatorRole(a.Role) && a.Role != models.RoleSpectator {
			debaters++
		}
	}
	assert.Equal(t, 1, chairs)
	assert.Equal(t, models.FormatAsianParliamentary.RequiredDebaters(), debaters)
}
