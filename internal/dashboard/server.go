// File: internal/dashboard/server.go
// Description: Embedded HTTP/WebSocket surface the dashboard frontends read
// session state from. The server only ever hands out snapshots; all mutation
// stays with the session's own activities.

package dashboard

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	json "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/aegis-c9/aegis-cli/internal/config"
	"github.com/aegis-c9/aegis-cli/internal/session"
)

// Server serves one session to any number of dashboard clients.
type Server struct {
	sess *session.Session
	cfg  config.DashboardConfig
	log  *zap.Logger
}

// NewServer builds the serving surface for a session.
func NewServer(sess *session.Session, cfg config.DashboardConfig, log *zap.Logger) *Server {
	return &Server{
		sess: sess,
		cfg:  cfg,
		log:  log.Named("dashboard"),
	}
}

// Routes builds the router with the session injected.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealthz)
	r.Get("/api/session", s.handleSession)
	r.Get("/api/players", s.handlePlayers)
	r.Get("/ws", s.handleWS)
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("dashboard listening", zap.String("addr", s.cfg.ListenAddr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) handleSession(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.sess.Snapshot())
}

func (s *Server) handlePlayers(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.sess.Snapshot().Players)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Debug("encode response failed", zap.Error(err))
	}
}

// handleWS pushes a snapshot every push period until the client goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close(websocket.StatusNormalClosure, "bye")

	ctx := r.Context()
	ticker := time.NewTicker(s.cfg.PushPeriod)
	defer ticker.Stop()

	for {
		payload, err := json.Marshal(s.sess.Snapshot())
		if err != nil {
			return
		}
		writeCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err = conn.Write(writeCtx, websocket.MessageText, payload)
		cancel()
		if err != nil {
			return
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
