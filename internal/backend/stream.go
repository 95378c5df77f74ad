// File: internal/backend/stream.go
// Description: Consumes the long-lived newline-delimited JSON telemetry feed
// and applies each event to the session state in arrival order. The loop
// survives malformed lines, server closes and transport errors; only context
// cancellation terminates it.

package backend

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/aegis-c9/aegis-cli/internal/telemetry"
)

const (
	// streamBufferMax bounds a single event line; telemetry events are small.
	streamBufferMax = 1 << 20

	// highConfidence is the assist probability above which a streamed
	// prediction synthesizes a coaching anomaly.
	highConfidence = 0.8

	// streamAnomalyImpact is the fixed positive impact such an anomaly
	// carries on the feed.
	streamAnomalyImpact = 2.5
)

// StreamClient owns one streaming connection per attempt and retries for the
// life of the session.
type StreamClient struct {
	client  *http.Client
	state   *telemetry.MatchState
	log     *zap.Logger
	baseURL string
	backoff time.Duration

	// limiter paces reconnects after clean server closes so an immediately
	// closing server cannot drive a tight loop.
	limiter *rate.Limiter
}

// NewStreamClient wires a stream client to the session state.
func NewStreamClient(client *http.Client, state *telemetry.MatchState, log *zap.Logger,
	baseURL string, backoff time.Duration) *StreamClient {
	return &StreamClient{
		client:  client,
		state:   state,
		log:     log.Named("stream"),
		baseURL: baseURL,
		backoff: backoff,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Run keeps one stream open until ctx is cancelled. A clean server close
// reconnects immediately (paced by the limiter); a transport error waits the
// configured backoff first. Cancellation is never treated as a failure.
func (s *StreamClient) Run(ctx context.Context) error {
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return err
		}

		err := s.consume(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err == nil {
			s.log.Debug("telemetry stream closed by server, reconnecting")
			continue
		}

		s.log.Warn("telemetry stream error, retrying after backoff",
			zap.Error(err), zap.Duration("backoff", s.backoff))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.backoff):
		}
	}
}

// consume opens one stream attempt and applies events until the body ends.
// A nil return means the server closed the stream cleanly.
func (s *StreamClient) consume(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/stream-telemetry", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/x-ndjson")

	res, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4096))
		return fmt.Errorf("stream endpoint returned %s", res.Status)
	}

	s.log.Info("telemetry stream open")

	scanner := bufio.NewScanner(res.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), streamBufferMax)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		s.applyLine(line)
	}
	return scanner.Err()
}

// applyLine parses one event. A parse failure is logged and skipped; it must
// never abort the stream.
func (s *StreamClient) applyLine(line []byte) {
	var ev StreamEvent
	if err := json.Unmarshal(line, &ev); err != nil {
		s.log.Debug("skipping malformed stream line", zap.Error(err))
		return
	}
	s.Apply(ev)
}

// Apply folds one event into the session state, in arrival order.
func (s *StreamClient) Apply(ev StreamEvent) {
	if ev.WinProb != nil {
		s.state.SetWinProbability(*ev.WinProb)
	}
	if len(ev.Predictions) == 0 {
		return
	}

	count := s.state.PlayerCount()
	for i, pred := range ev.Predictions {
		if i >= count {
			break
		}
		prob := pred.HighAssistProbability
		s.state.UpdatePlayerAt(i, func(p *telemetry.PlayerState) {
			p.Impact = prob * 100
			p.Status = telemetry.StatusForProbability(prob)
		})

		if prob > highConfidence {
			s.state.AppendAnomaly(telemetry.Anomaly{
				ID:        uuid.NewString(),
				Category:  telemetry.AnomalyMacro,
				Message:   fmt.Sprintf("Model calls for %s: %s", pred.Name, pred.Recommendation),
				Impact:    streamAnomalyImpact,
				Timestamp: time.Now(),
				Target:    pred.Name,
			})
		}
	}
}
