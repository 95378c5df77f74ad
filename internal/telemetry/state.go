// File: internal/telemetry/state.go
package telemetry

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/aegis-c9/aegis-cli/internal/config"
	"github.com/aegis-c9/aegis-cli/internal/roster"
)

// Tempo is clamped independently of win probability.
const (
	tempoFloor   = 0
	tempoCeiling = 100
	stressFloor  = 10
	stressCap    = 100
)

// MatchState owns all mutable session state. Three concurrent activities
// (generator, poller, stream reader) mutate it; every mutator takes the lock
// and works from the latest stored value so no update path loses writes or
// escapes the clamping bounds.
type MatchState struct {
	mu sync.RWMutex

	game       GameState
	liveGame   *LiveGame
	players    []PlayerState
	prediction *Prediction
	features   []FeatureImportance
	connected  bool

	winFloor   float64
	winCeiling float64
	historyCap int
}

// NewMatchState seeds a session for the given game and roster.
func NewMatchState(g roster.Game, team string, sim config.SimulationConfig) *MatchState {
	ms := &MatchState{
		game: GameState{
			WinProbability: 52,
			Tempo:          65,
		},
		winFloor:   sim.WinProbFloor,
		winCeiling: sim.WinProbCeiling,
		historyCap: sim.AnomalyHistory,
	}

	if g == roster.GameValorant {
		for i, seat := range roster.ValorantRoster(team) {
			ms.players = append(ms.players, PlayerState{
				ID:     i + 1,
				Name:   seat.Name,
				Role:   seat.Role,
				Agent:  seat.Agent,
				Stress: 20 + rand.Float64()*10,
				Impact: 90 + rand.Float64()*8,
				Status: StatusOptimal,
			})
		}
		return ms
	}

	// The LoL dashboard seeds a fixed starting five with known baselines.
	seeds := []struct {
		stress, impact float64
	}{
		{20, 98}, {25, 95}, {30, 92}, {22, 96}, {28, 94},
	}
	for i, seat := range roster.LoLStartingRoster {
		ms.players = append(ms.players, PlayerState{
			ID:     i + 1,
			Name:   seat.Name,
			Role:   seat.Role,
			Stress: seeds[i].stress,
			Impact: seeds[i].impact,
			Status: StatusOptimal,
		})
	}
	return ms
}

// Snapshot returns a deep copy of the current state.
func (ms *MatchState) Snapshot() Snapshot {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	snap := Snapshot{
		Game: GameState{
			WinProbability: ms.game.WinProbability,
			Tempo:          ms.game.Tempo,
			Anomalies:      append([]Anomaly(nil), ms.game.Anomalies...),
		},
		Players:   append([]PlayerState(nil), ms.players...),
		Connected: ms.connected,
		Taken:     time.Now(),
	}
	if ms.prediction != nil {
		p := *ms.prediction
		snap.Prediction = &p
	}
	if ms.liveGame != nil {
		lg := *ms.liveGame
		snap.LiveGame = &lg
	}
	if ms.features != nil {
		snap.Features = append([]FeatureImportance(nil), ms.features...)
	}
	return snap
}

// WinProbability returns the current clamped value.
func (ms *MatchState) WinProbability() float64 {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.game.WinProbability
}

// SetWinProbability overwrites win probability. Both the poller and the
// stream call this; last write wins by design.
func (ms *MatchState) SetWinProbability(v float64) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.game.WinProbability = clamp(v, ms.winFloor, ms.winCeiling)
}

// AdjustWinProbability applies a signed delta relative to the latest value.
func (ms *MatchState) AdjustWinProbability(delta float64) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.game.WinProbability = clamp(ms.game.WinProbability+delta, ms.winFloor, ms.winCeiling)
}

// AdjustTempo applies a signed delta to tempo.
func (ms *MatchState) AdjustTempo(delta float64) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.game.Tempo = clamp(ms.game.Tempo+delta, tempoFloor, tempoCeiling)
}

// Connected reports whether the most recent backend interaction succeeded.
func (ms *MatchState) Connected() bool {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return ms.connected
}

// SetConnected records the outcome of the most recent backend interaction.
func (ms *MatchState) SetConnected(v bool) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.connected = v
}

// AppendAnomaly appends a to the bounded history. Re-appending the trailing
// anomaly (same id as the last stored one) is a no-op so replayed events do
// not duplicate. Oldest entries are evicted first once the cap is hit.
func (ms *MatchState) AppendAnomaly(a Anomaly) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.appendAnomalyLocked(a)
}

func (ms *MatchState) appendAnomalyLocked(a Anomaly) {
	if n := len(ms.game.Anomalies); n > 0 && ms.game.Anomalies[n-1].ID == a.ID {
		return
	}
	ms.game.Anomalies = append(ms.game.Anomalies, a)
	if over := len(ms.game.Anomalies) - ms.historyCap; over > 0 {
		ms.game.Anomalies = append([]Anomaly(nil), ms.game.Anomalies[over:]...)
	}
}

// ApplyAnomaly applies a's impact to win probability, appends it to history,
// and bumps the target player's error count and stress. One lock hold so the
// generator's whole anomaly step is atomic with respect to the other writers.
func (ms *MatchState) ApplyAnomaly(a Anomaly) {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.game.WinProbability = clamp(ms.game.WinProbability+a.Impact, ms.winFloor, ms.winCeiling)
	ms.appendAnomalyLocked(a)

	for i := range ms.players {
		if ms.players[i].Name == a.Target {
			ms.players[i].RecentErrors++
			ms.players[i].Stress = clamp(ms.players[i].Stress+10, stressFloor, stressCap)
			ms.players[i].Status = StatusForStress(ms.players[i].Stress)
			break
		}
	}
}

// ReplaceAnomalies installs a server-authoritative anomaly list wholesale.
// The cap still applies.
func (ms *MatchState) ReplaceAnomalies(list []Anomaly) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if over := len(list) - ms.historyCap; over > 0 {
		list = list[over:]
	}
	ms.game.Anomalies = append([]Anomaly(nil), list...)
}

// ReplacePlayers installs a server-authoritative player list wholesale.
func (ms *MatchState) ReplacePlayers(players []PlayerState) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.players = append([]PlayerState(nil), players...)
}

// UpdatePlayers runs fn over each player under the lock. fn sees and mutates
// the latest stored value, composing with the other writers.
func (ms *MatchState) UpdatePlayers(fn func(p *PlayerState)) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	for i := range ms.players {
		fn(&ms.players[i])
	}
}

// UpdatePlayerAt mutates the player at index i, if present.
func (ms *MatchState) UpdatePlayerAt(i int, fn func(p *PlayerState)) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if i >= 0 && i < len(ms.players) {
		fn(&ms.players[i])
	}
}

// PlayerCount returns the current roster size.
func (ms *MatchState) PlayerCount() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	return len(ms.players)
}

// SetPrediction stores the latest model metadata and makes its win
// probability authoritative.
func (ms *MatchState) SetPrediction(p Prediction) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.prediction = &p
	ms.game.WinProbability = clamp(p.WinProbability, ms.winFloor, ms.winCeiling)
}

// SetLiveGame replaces the locally held match snapshot wholesale.
func (ms *MatchState) SetLiveGame(lg LiveGame) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.liveGame = &lg
}

// SetFeatures stores the latest feature-importance ranking.
func (ms *MatchState) SetFeatures(features []FeatureImportance) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.features = append([]FeatureImportance(nil), features...)
}

// ClampStress bounds a stress value to its valid range.
func ClampStress(v float64) float64 {
	return clamp(v, stressFloor, stressCap)
}
