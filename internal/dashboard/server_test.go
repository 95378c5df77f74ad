package dashboard_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aegis-c9/aegis-cli/internal/config"
	"github.com/aegis-c9/aegis-cli/internal/dashboard"
	"github.com/aegis-c9/aegis-cli/internal/roster"
	"github.com/aegis-c9/aegis-cli/internal/session"
	"github.com/aegis-c9/aegis-cli/internal/telemetry"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	cfg := &config.Config{
		Backend: config.BackendConfig{
			BaseURL:        "http://127.0.0.1:1",
			PollInterval:   time.Hour,
			StreamBackoff:  time.Hour,
			RequestTimeout: time.Second,
		},
		Simulation: config.SimulationConfig{
			TickInterval:    time.Hour,
			AnomalyMinDelay: time.Hour,
			AnomalyMaxDelay: 2 * time.Hour,
			WinProbFloor:    5,
			WinProbCeiling:  95,
			AnomalyHistory:  50,
		},
		Dashboard: config.DashboardConfig{PushPeriod: 10 * time.Millisecond},
	}

	sess, err := session.New(session.Options{
		Game:     roster.GameLoL,
		Team:     "Cloud9",
		Opponent: "T1",
		BaseURL:  cfg.Backend.BaseURL,
		Config:   cfg,
		Logger:   zaptest.NewLogger(t),
	})
	require.NoError(t, err)

	srv := httptest.NewServer(dashboard.NewServer(sess, cfg.Dashboard, zaptest.NewLogger(t)).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func TestServer_Healthz(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestServer_SessionSnapshot(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/session")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/json", res.Header.Get("Content-Type"))

	var snap telemetry.Snapshot
	require.NoError(t, json.NewDecoder(res.Body).Decode(&snap))
	assert.False(t, snap.Connected)
	assert.InDelta(t, 52.0, snap.Game.WinProbability, 0.001)
	require.Len(t, snap.Players, 5)
	assert.Equal(t, "Zven", snap.Players[0].Name)
}

func TestServer_Players(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/api/players")
	require.NoError(t, err)
	defer res.Body.Close()
	require.Equal(t, http.StatusOK, res.StatusCode)

	var players []telemetry.PlayerState
	require.NoError(t, json.NewDecoder(res.Body).Decode(&players))
	require.Len(t, players, 5)
	for _, p := range players {
		assert.Equal(t, telemetry.StatusOptimal, p.Status)
	}
}
