package backend

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/aegis-c9/aegis-cli/internal/roster"
	"github.com/aegis-c9/aegis-cli/internal/telemetry"
)

func newTestStream(t *testing.T, baseURL string) (*StreamClient, *telemetry.MatchState) {
	t.Helper()
	state := telemetry.NewMatchState(roster.GameValorant, "Cloud9", testSimConfig())
	s := NewStreamClient(&http.Client{}, state, zaptest.NewLogger(t), baseURL, 10*time.Second)
	return s, state
}

func TestStream_MalformedLineIsSkippedNotFatal(t *testing.T) {
	s, state := newTestStream(t, "http://unused")

	s.applyLine([]byte(`{"win_prob": 61.2}`))
	assert.InDelta(t, 61.2, state.WinProbability(), 0.0001)

	s.applyLine([]byte(`{"bogus": tru`)) // malformed, skipped
	assert.InDelta(t, 61.2, state.WinProbability(), 0.0001)

	s.applyLine([]byte(`{"win_prob": 70}`))
	assert.InDelta(t, 70.0, state.WinProbability(), 0.0001)
}

func TestStream_WinProbIsClamped(t *testing.T) {
	s, state := newTestStream(t, "http://unused")

	s.applyLine([]byte(`{"win_prob": 240}`))
	assert.InDelta(t, 95.0, state.WinProbability(), 0.0001)
}

func TestStream_PredictionsUpdatePlayersByIndex(t *testing.T) {
	s, state := newTestStream(t, "http://unused")
	before := state.WinProbability()

	s.Apply(StreamEvent{
		Predictions: []StreamPrediction{
			{Name: "TenZ", HighAssistProbability: 0.85, Recommendation: "play for picks on A main"},
			{Name: "Derrek", HighAssistProbability: 0.25, Recommendation: "hold utility"},
		},
	})

	snap := state.Snapshot()
	assert.InDelta(t, 85.0, snap.Players[0].Impact, 0.0001)
	assert.Equal(t, telemetry.StatusOptimal, snap.Players[0].Status)
	assert.InDelta(t, 25.0, snap.Players[1].Impact, 0.0001)
	assert.Equal(t, telemetry.StatusCritical, snap.Players[1].Status)

	// Only the high-confidence prediction synthesizes an anomaly, appended
	// but not applied to win probability.
	require.Len(t, snap.Game.Anomalies, 1)
	a := snap.Game.Anomalies[0]
	assert.Equal(t, telemetry.AnomalyMacro, a.Category)
	assert.Equal(t, "TenZ", a.Target)
	assert.Contains(t, a.Message, "play for picks on A main")
	assert.InDelta(t, 2.5, a.Impact, 0.0001)
	assert.InDelta(t, before, snap.Game.WinProbability, 0.0001)
}

func TestStream_ExtraPredictionsBeyondRosterAreIgnored(t *testing.T) {
	s, state := newTestStream(t, "http://unused")

	preds := make([]StreamPrediction, 8) // roster has 5
	for i := range preds {
		preds[i] = StreamPrediction{Name: "x", HighAssistProbability: 0.5}
	}
	s.Apply(StreamEvent{Predictions: preds})

	snap := state.Snapshot()
	assert.Len(t, snap.Players, 5)
}

func TestStream_ConsumeAppliesEventsInArrivalOrder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		flusher, ok := w.(http.Flusher)
		require.True(t, ok)
		for _, line := range []string{
			`{"win_prob": 61.2}`,
			`{"bogus": true`,
			`{"win_prob": 70}`,
		} {
			_, _ = w.Write([]byte(line + "\n"))
			flusher.Flush()
		}
	}))
	defer srv.Close()

	s, state := newTestStream(t, srv.URL)
	err := s.consume(context.Background())

	// Server closed cleanly after its lines.
	require.NoError(t, err)
	assert.InDelta(t, 70.0, state.WinProbability(), 0.0001)
}

func TestStream_Non2xxIsATransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	s, _ := newTestStream(t, srv.URL)
	err := s.consume(context.Background())
	require.Error(t, err)
}

func TestStream_RunTerminatesOnCancelWithoutRetry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		flusher := w.(http.Flusher)
		_, _ = w.Write([]byte(`{"win_prob": 55}` + "\n"))
		flusher.Flush()
		// Hold the stream open until the client cancels.
		<-r.Context().Done()
	}))
	defer srv.Close()

	s, state := newTestStream(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	assert.Eventually(t, func() bool {
		return state.WinProbability() == 55.0
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not terminate promptly after cancellation")
	}
}

func TestStream_ReconnectsAfterCleanServerClose(t *testing.T) {
	var attempts atomic.Int32
	countCh := make(chan int32, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		countCh <- attempts.Add(1)
		_, _ = w.Write([]byte(`{"win_prob": 42}` + "\n"))
	}))
	defer srv.Close()

	s, state := newTestStream(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	// At least two attempts means the client reopened after a clean close.
	deadline := time.After(5 * time.Second)
	for seen := int32(0); seen < 2; {
		select {
		case seen = <-countCh:
		case <-deadline:
			t.Fatal("stream never reconnected after server close")
		}
	}
	assert.InDelta(t, 42.0, state.WinProbability(), 0.0001)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not stop after cancellation")
	}
}
