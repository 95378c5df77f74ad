// File: internal/telemetry/generator.go
// Description: Produces a continuous, locally plausible illusion of live
// match telemetry when no real backend is feeding the session.

package telemetry

import (
	"context"
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aegis-c9/aegis-cli/internal/config"
)

// Per-tick perturbation ranges.
const (
	winProbStep = 0.2 // win probability moves by at most ±0.2 per tick
	tempoStep   = 1.0
)

// anomalyMessages are the tactical event templates the generator draws from.
var anomalyMessages = []string{
	"Missed Smite on Baron Nashor",
	"Failed Flash over Dragon pit wall",
	"Overextended in bottom lane without vision",
	"Poor ultimate timing in teamfight",
	"Missed Cannon minion under pressure",
	"Inefficient Jungle pathing detected",
	"Late TP response to top side skirmish",
	"Vision denial failure in Baron area",
}

// WinProbJitter returns one random-walk step for win probability. The poller
// uses the same step as its offline fallback so degraded sessions keep the
// generator's motion profile.
func WinProbJitter() float64 {
	return rand.Float64()*2*winProbStep - winProbStep
}

// Generator drives the random-walk ticks and the self-rescheduling anomaly
// timer against a MatchState.
type Generator struct {
	state *MatchState
	cfg   config.SimulationConfig
	log   *zap.Logger
}

// NewGenerator wires a generator to the session's state.
func NewGenerator(state *MatchState, cfg config.SimulationConfig, log *zap.Logger) *Generator {
	return &Generator{
		state: state,
		cfg:   cfg,
		log:   log.Named("generator"),
	}
}

// Run drives both timers until ctx is cancelled. The anomaly timer
// reschedules itself with a fresh jittered delay after every fire; the
// irregular cadence is deliberate, a fixed interval reads as mechanical on
// the feed.
func (g *Generator) Run(ctx context.Context) error {
	ticker := time.NewTicker(g.cfg.TickInterval)
	defer ticker.Stop()

	anomaly := time.NewTimer(g.nextAnomalyDelay())
	defer anomaly.Stop()

	g.log.Debug("generator started",
		zap.Duration("tick", g.cfg.TickInterval),
		zap.Duration("anomaly_min", g.cfg.AnomalyMinDelay),
		zap.Duration("anomaly_max", g.cfg.AnomalyMaxDelay))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			g.Tick()
		case <-anomaly.C:
			g.FireAnomaly()
			anomaly.Reset(g.nextAnomalyDelay())
		}
	}
}

// Tick applies one small symmetric perturbation to the match metrics and a
// decay-biased one to each player's stress.
func (g *Generator) Tick() {
	g.state.AdjustWinProbability(WinProbJitter())
	g.state.AdjustTempo(rand.Float64()*2*tempoStep - tempoStep)

	g.state.UpdatePlayers(func(p *PlayerState) {
		// Biased slightly upward: uniform over (-0.8, +1.2).
		p.Stress = ClampStress(p.Stress + (rand.Float64()*2 - 0.8))
		p.Status = StatusForStress(p.Stress)
	})
}

// FireAnomaly fabricates one tactical event and applies it: win probability
// takes the signed impact, the history gains the event, the target player's
// error count and stress rise.
func (g *Generator) FireAnomaly() {
	snap := g.state.Snapshot()
	if len(snap.Players) == 0 {
		return
	}
	target := snap.Players[rand.IntN(len(snap.Players))].Name

	category := AnomalyMicro
	if rand.Float64() > 0.7 {
		category = AnomalyMacro
	}

	a := Anomaly{
		ID:        uuid.NewString(),
		Category:  category,
		Message:   anomalyMessages[rand.IntN(len(anomalyMessages))],
		Impact:    -math.Round((rand.Float64()*4+1)*10) / 10, // -1.0% to -5.0%
		Timestamp: time.Now(),
		Target:    target,
	}
	g.state.ApplyAnomaly(a)

	g.log.Debug("anomaly fired",
		zap.String("target", a.Target),
		zap.Float64("impact", a.Impact),
		zap.String("category", string(a.Category)))
}

// nextAnomalyDelay picks a fresh randomized delay in the configured window.
func (g *Generator) nextAnomalyDelay() time.Duration {
	window := g.cfg.AnomalyMaxDelay - g.cfg.AnomalyMinDelay
	if window <= 0 {
		return g.cfg.AnomalyMinDelay
	}
	return g.cfg.AnomalyMinDelay + time.Duration(rand.Int64N(int64(window)))
}
