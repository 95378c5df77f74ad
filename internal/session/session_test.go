package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/aegis-c9/aegis-cli/internal/config"
	"github.com/aegis-c9/aegis-cli/internal/roster"
	"github.com/aegis-c9/aegis-cli/internal/session"
)

func testConfig() *config.Config {
	return &config.Config{
		Backend: config.BackendConfig{
			BaseURL:        "http://127.0.0.1:1", // nothing listens here
			PollInterval:   25 * time.Millisecond,
			StreamBackoff:  50 * time.Millisecond,
			RequestTimeout: 200 * time.Millisecond,
		},
		Simulation: config.SimulationConfig{
			TickInterval:    10 * time.Millisecond,
			AnomalyMinDelay: time.Hour,
			AnomalyMaxDelay: 2 * time.Hour,
			WinProbFloor:    5,
			WinProbCeiling:  95,
			AnomalyHistory:  50,
		},
	}
}

func newTestSession(t *testing.T, game roster.Game, team, opponent string) (*session.Session, error) {
	t.Helper()
	return session.New(session.Options{
		Game:     game,
		Team:     team,
		Opponent: opponent,
		BaseURL:  "http://127.0.0.1:1",
		Config:   testConfig(),
		Logger:   zaptest.NewLogger(t),
	})
}

func TestNew_RejectsInvalidMatchups(t *testing.T) {
	_, err := newTestSession(t, roster.GameValorant, "Cloud9", "cloud9")
	require.Error(t, err)
	var matchupErr *roster.MatchupError
	require.ErrorAs(t, err, &matchupErr)
	assert.Contains(t, matchupErr.Message, "cannot be the same")

	_, err = newTestSession(t, roster.GameValorant, "Nonexistent Org", "Sentinels")
	require.ErrorAs(t, err, &matchupErr)
	assert.Contains(t, matchupErr.Message, "not found")

	_, err = session.New(session.Options{Game: "chess", Team: "a", Opponent: "b",
		Config: testConfig(), Logger: zaptest.NewLogger(t)})
	require.Error(t, err)
}

func TestSession_UnreachableBackendDegradesGracefully(t *testing.T) {
	defer goleak.VerifyNone(t)

	sess, err := newTestSession(t, roster.GameValorant, "Cloud9", "Sentinels")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sess.Start(ctx)
	time.Sleep(150 * time.Millisecond)
	sess.Stop()

	snap := sess.Snapshot()
	assert.False(t, snap.Connected, "nothing answered, status must be disconnected")
	assert.GreaterOrEqual(t, snap.Game.WinProbability, 5.0)
	assert.LessOrEqual(t, snap.Game.WinProbability, 95.0)
	assert.GreaterOrEqual(t, snap.Game.Tempo, 0.0)
	assert.LessOrEqual(t, snap.Game.Tempo, 100.0)
	require.Len(t, snap.Players, 5)
}

func TestSession_StopIsIdempotent(t *testing.T) {
	sess, err := newTestSession(t, roster.GameValorant, "Cloud9", "Sentinels")
	require.NoError(t, err)

	// Stopping a never-started session is a no-op.
	sess.Stop()

	sess.Start(context.Background())
	sess.Stop()
	sess.Stop()
}

func TestSession_SetMatchupValidates(t *testing.T) {
	sess, err := newTestSession(t, roster.GameValorant, "Cloud9", "Sentinels")
	require.NoError(t, err)

	require.NoError(t, sess.SetMatchup(roster.GameValorant, "Cloud9", "Fnatic"))
	assert.Error(t, sess.SetMatchup(roster.GameValorant, "Cloud9", "Cloud9"))
}
