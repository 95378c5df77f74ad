// File: internal/session/session.go
// Description: Manages the lifecycle of one coaching session. Owns the match
// state and the three concurrent activities feeding it (generator, poller,
// stream reader), constructed per session so concurrent sessions never share
// state. Grounds every activity in a shared context: Stop cancels it, and no
// activity applies results after cancellation.

package session

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/aegis-c9/aegis-cli/internal/backend"
	"github.com/aegis-c9/aegis-cli/internal/config"
	"github.com/aegis-c9/aegis-cli/internal/roster"
	"github.com/aegis-c9/aegis-cli/internal/telemetry"
)

// Options parameterize a session.
type Options struct {
	Game     roster.Game
	Team     string
	Opponent string
	// BaseURL is the resolved backend root (override already applied).
	BaseURL string
	Config  *config.Config
	Logger  *zap.Logger
	// Persist controls whether the validated matchup is written to the
	// settings file. Tests leave it off.
	Persist bool
}

// Session is the owning object for one live coaching view.
type Session struct {
	state     *telemetry.MatchState
	generator *telemetry.Generator
	poller    *backend.Poller
	stream    *backend.StreamClient
	log       *zap.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	eg     *errgroup.Group
}

// New validates the matchup and assembles a stopped session. Validation
// failures are the one error class surfaced to the user; the session is not
// started until they are corrected.
func New(opts Options) (*Session, error) {
	if !opts.Game.Valid() {
		return nil, errors.New("game must be \"lol\" or \"valorant\"")
	}
	team, opponent, err := roster.ValidateMatchup(opts.Game, opts.Team, opts.Opponent)
	if err != nil {
		return nil, err
	}

	if opts.Persist {
		settings, loadErr := LoadSettings()
		if loadErr == nil {
			settings.Team = team
			settings.Opponent = opponent
			if saveErr := SaveSettings(settings); saveErr != nil {
				opts.Logger.Warn("could not persist matchup", zap.Error(saveErr))
			}
		}
	}

	log := opts.Logger.Named("session")
	state := telemetry.NewMatchState(opts.Game, team, opts.Config.Simulation)

	pollClient := backend.NewHTTPClient(opts.Config.Backend)
	streamClient := backend.NewStreamHTTPClient()

	return &Session{
		state:     state,
		generator: telemetry.NewGenerator(state, opts.Config.Simulation, log),
		poller: backend.NewPoller(pollClient, state, log, opts.BaseURL, opts.Game,
			opts.Config.Backend.PollInterval, team, opponent),
		stream: backend.NewStreamClient(streamClient, state, log, opts.BaseURL,
			opts.Config.Backend.StreamBackoff),
		log: log,
	}, nil
}

// Start launches the generator, poller and stream reader. They run until
// Stop is called or the parent context is cancelled.
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return // already running
	}

	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	eg, egCtx := errgroup.WithContext(runCtx)
	eg.Go(func() error { return s.generator.Run(egCtx) })
	eg.Go(func() error { return s.poller.Run(egCtx) })
	eg.Go(func() error { return s.stream.Run(egCtx) })
	s.eg = eg

	s.log.Info("session started")
}

// Stop cancels all activities and waits for them to exit. Safe to call more
// than once.
func (s *Session) Stop() {
	s.mu.Lock()
	cancel, eg := s.cancel, s.eg
	s.cancel, s.eg = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	if eg != nil {
		// The activities exit with context.Canceled; that is teardown, not
		// failure.
		if err := eg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			s.log.Warn("session activity exited with error", zap.Error(err))
		}
	}
	s.log.Info("session stopped")
}

// Snapshot returns a point-in-time copy of the session state.
func (s *Session) Snapshot() telemetry.Snapshot {
	return s.state.Snapshot()
}

// State exposes the underlying match state for components that feed it.
func (s *Session) State() *telemetry.MatchState {
	return s.state
}

// SetMatchup swaps the polled team identifiers mid-session, invalidating any
// request in flight.
func (s *Session) SetMatchup(game roster.Game, team, opponent string) error {
	canonTeam, canonOpp, err := roster.ValidateMatchup(game, team, opponent)
	if err != nil {
		return err
	}
	s.poller.SetMatchup(canonTeam, canonOpp)
	return nil
}
