package session

import (
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withTempHome(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	homedir.Reset()
	t.Cleanup(homedir.Reset)
}

func TestSettings_RoundTrip(t *testing.T) {
	withTempHome(t)

	// Missing file yields zero-value settings.
	s, err := LoadSettings()
	require.NoError(t, err)
	assert.Empty(t, s.Team)

	s.Team = "Cloud9"
	s.Opponent = "Sentinels"
	s.BackendURL = "http://10.0.0.5:8000"
	require.NoError(t, SaveSettings(s))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, s, loaded)
}

func TestResolveBaseURL_OverrideWins(t *testing.T) {
	assert.Equal(t, "http://configured:8000",
		ResolveBaseURL("http://configured:8000", Settings{}))
	assert.Equal(t, "http://override:9000",
		ResolveBaseURL("http://configured:8000", Settings{BackendURL: "http://override:9000"}))
}
