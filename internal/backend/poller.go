// File: internal/backend/poller.go
// Description: Keeps the session synchronized with the prediction service,
// degrading to the generator's random walk when the service is unreachable.
// Backend failures are absorbed here; nothing propagates to the caller.

package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/aegis-c9/aegis-cli/internal/roster"
	"github.com/aegis-c9/aegis-cli/internal/telemetry"
)

// Poller periodically requests prediction JSON and merges successful
// responses into the session state.
type Poller struct {
	client   *http.Client
	state    *telemetry.MatchState
	log      *zap.Logger
	baseURL  string
	game     roster.Game
	interval time.Duration

	mu       sync.Mutex
	team     string
	opponent string
	// generation invalidates in-flight requests when the matchup changes: a
	// response fetched under an old generation is never applied.
	generation uint64
}

// NewPoller wires a poller to the session state. team and opponent are the
// canonical identifiers produced by matchup validation.
func NewPoller(client *http.Client, state *telemetry.MatchState, log *zap.Logger,
	baseURL string, game roster.Game, interval time.Duration, team, opponent string) *Poller {
	return &Poller{
		client:   client,
		state:    state,
		log:      log.Named("poller"),
		baseURL:  baseURL,
		game:     game,
		interval: interval,
		team:     team,
		opponent: opponent,
	}
}

// SetMatchup swaps the team identifiers and invalidates any request already
// in flight so stale-parameter responses are dropped.
func (p *Poller) SetMatchup(team, opponent string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.team = team
	p.opponent = opponent
	p.generation++
}

func (p *Poller) matchup() (team, opponent string, gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.team, p.opponent, p.generation
}

func (p *Poller) currentGeneration() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.generation
}

// Run refreshes once immediately and then on every tick until ctx is
// cancelled.
func (p *Poller) Run(ctx context.Context) error {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh issues a single poll. All failure modes flip the session to
// disconnected and apply one random-walk step to win probability only.
func (p *Poller) Refresh(ctx context.Context) {
	team, opponent, gen := p.matchup()

	resp, err := p.fetch(ctx, team, opponent)
	if ctx.Err() != nil {
		// Teardown, not a transport failure. Apply nothing.
		return
	}
	if err != nil {
		p.log.Debug("poll failed, falling back to local simulation", zap.Error(err))
		p.state.SetConnected(false)
		p.state.AdjustWinProbability(telemetry.WinProbJitter())
		return
	}
	if p.currentGeneration() != gen {
		p.log.Debug("matchup changed mid-flight, dropping stale response",
			zap.String("team", team), zap.String("opponent", opponent))
		return
	}

	p.apply(resp)
}

func (p *Poller) fetch(ctx context.Context, team, opponent string) (*PredictionsResponse, error) {
	u := fmt.Sprintf("%s/%s?team=%s&opponent=%s",
		p.baseURL, p.game.PredictionsEndpoint(),
		url.QueryEscape(team), url.QueryEscape(opponent))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("backend returned %s", res.Status)
	}

	var out PredictionsResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode predictions response: %w", err)
	}
	return &out, nil
}

// apply merges a successful response. The server is authoritative for every
// field it sends: prediction overwrites win probability, game and anomaly
// and player lists replace the local ones wholesale.
func (p *Poller) apply(resp *PredictionsResponse) {
	p.state.SetConnected(true)

	if resp.Prediction != nil {
		p.state.SetPrediction(*resp.Prediction)
	}
	if resp.Game != nil {
		p.state.SetLiveGame(*resp.Game)
	}
	if resp.Anomalies != nil {
		anomalies := make([]telemetry.Anomaly, 0, len(resp.Anomalies))
		for _, w := range resp.Anomalies {
			anomalies = append(anomalies, w.ToAnomaly())
		}
		p.state.ReplaceAnomalies(anomalies)
	}
	if resp.FeatureImportance != nil {
		p.state.SetFeatures(resp.FeatureImportance)
	}
	if resp.Players != nil {
		p.state.ReplacePlayers(derivePlayers(resp.Players))
	}
}

// derivePlayers converts wire records into session players, re-deriving the
// UI-only fields the server does not provide (stress is seeded randomly and
// walked by the generator from there).
func derivePlayers(wire []WirePlayer) []telemetry.PlayerState {
	players := make([]telemetry.PlayerState, 0, len(wire))
	for i, w := range wire {
		id := w.ID
		if id == 0 {
			id = i + 1
		}
		stress := telemetry.ClampStress(20 + telemetry.WinProbJitter()*50)
		players = append(players, telemetry.PlayerState{
			ID:     id,
			Name:   w.Name,
			Role:   w.Role,
			Agent:  w.Agent,
			Stress: stress,
			Impact: w.Impact,
			Status: telemetry.StatusForStress(stress),
			Stats: telemetry.MatchStats{
				Kills:       w.Kills,
				Deaths:      w.Deaths,
				Assists:     w.Assists,
				Gold:        w.Gold,
				CS:          w.CS,
				VisionScore: w.VisionScore,
				ACS:         w.ACS,
				ADR:         w.ADR,
			},
		})
	}
	return players
}

// FetchSeriesStats hits the legacy /api/stats path. A response with
// status "simulated" is valid data.
func (p *Poller) FetchSeriesStats(ctx context.Context, seriesID string) (*SeriesStatsResponse, error) {
	u := fmt.Sprintf("%s/api/stats?series_id=%s", p.baseURL, url.QueryEscape(seriesID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	res, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("backend returned %s", res.Status)
	}

	var out SeriesStatsResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode series stats: %w", err)
	}
	return &out, nil
}
