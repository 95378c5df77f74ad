package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateMatchup_CanonicalizesCase(t *testing.T) {
	team, opp, err := ValidateMatchup(GameValorant, "cloud9", "SENTINELS")
	require.NoError(t, err)
	assert.Equal(t, "Cloud9", team)
	assert.Equal(t, "Sentinels", opp)
}

func TestValidateMatchup_RejectsIdenticalTeams(t *testing.T) {
	_, _, err := ValidateMatchup(GameValorant, "Cloud9", "cloud9")
	require.Error(t, err)

	var matchupErr *MatchupError
	require.ErrorAs(t, err, &matchupErr)
	assert.Contains(t, matchupErr.Message, "cannot be the same")
}

func TestValidateMatchup_RejectsUnknownTeam(t *testing.T) {
	_, _, err := ValidateMatchup(GameValorant, "Garage Five", "Sentinels")
	require.Error(t, err)

	var matchupErr *MatchupError
	require.ErrorAs(t, err, &matchupErr)
	assert.Contains(t, matchupErr.Message, "not found")
	assert.Equal(t, "Garage Five", matchupErr.Team)

	// Unknown opponent is reported the same way.
	_, _, err = ValidateMatchup(GameValorant, "Cloud9", "Garage Five")
	require.ErrorAs(t, err, &matchupErr)
	assert.Contains(t, matchupErr.Message, "not found")
}

func TestFindTeam_PerGameLists(t *testing.T) {
	_, ok := FindTeam(GameLoL, "Paper Rex")
	assert.False(t, ok, "Valorant-only org should not validate for LoL")

	name, ok := FindTeam(GameLoL, "t1")
	require.True(t, ok)
	assert.Equal(t, "T1", name)
}

func TestSearchTeams(t *testing.T) {
	matches := SearchTeams(GameValorant, "sent")
	assert.Equal(t, []string{"Sentinels"}, matches)

	all := SearchTeams(GameValorant, "")
	assert.Len(t, all, len(ValorantTeams))
}

func TestValorantRoster_FallsBackToDefault(t *testing.T) {
	curated := ValorantRoster("Cloud9")
	require.Len(t, curated, 5)
	assert.Equal(t, "TenZ", curated[0].Name)

	// Valid team without a curated lineup.
	fallback := ValorantRoster("KOI")
	assert.Equal(t, DefaultValorantRoster, fallback)
}

func TestGame_PredictionsEndpoint(t *testing.T) {
	assert.Equal(t, "lol-predictions", GameLoL.PredictionsEndpoint())
	assert.Equal(t, "valorant-predictions", GameValorant.PredictionsEndpoint())
}
