// File: cmd/session.go
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/aegis-c9/aegis-cli/internal/dashboard"
	"github.com/aegis-c9/aegis-cli/internal/observability"
	"github.com/aegis-c9/aegis-cli/internal/roster"
	"github.com/aegis-c9/aegis-cli/internal/session"
)

// newSessionCmd creates and configures the `session` command.
func newSessionCmd() *cobra.Command {
	var (
		game     string
		team     string
		opponent string
		serve    bool
	)

	sessionCmd := &cobra.Command{
		Use:   "session",
		Short: "Starts a live coaching session for a matchup",
		Long: `Starts a live coaching session: local telemetry simulation plus polling
and streaming against the prediction backend. Team names default to the ones
persisted from the previous session. Runs until interrupted.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if err := viper.BindPFlag("dashboard.enabled", cmd.Flags().Lookup("serve")); err != nil {
				return err
			}
			return viper.BindPFlag("dashboard.listen_addr", cmd.Flags().Lookup("listen"))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := observability.GetLogger()

			if err := viper.Unmarshal(&cfg); err != nil {
				return fmt.Errorf("failed to re-unmarshal config with flag overrides: %w", err)
			}

			settings, err := session.LoadSettings()
			if err != nil {
				logger.Warn("could not load persisted settings", zap.Error(err))
			}
			if team == "" {
				team = settings.Team
			}
			if opponent == "" {
				opponent = settings.Opponent
			}
			if team == "" || opponent == "" {
				return errors.New("both --team and --opponent are required for a first session")
			}

			sess, err := session.New(session.Options{
				Game:     roster.Game(game),
				Team:     team,
				Opponent: opponent,
				BaseURL:  session.ResolveBaseURL(cfg.Backend.BaseURL, settings),
				Config:   &cfg,
				Logger:   logger,
				Persist:  true,
			})
			if err != nil {
				// Matchup validation is the one user-surfaced error path.
				var matchupErr *roster.MatchupError
				if errors.As(err, &matchupErr) {
					return fmt.Errorf("cannot start session: %s", matchupErr.Message)
				}
				return err
			}

			sess.Start(ctx)
			defer sess.Stop()

			logger.Info("coaching session live",
				zap.String("game", game),
				zap.String("team", team),
				zap.String("opponent", opponent))

			if cfg.Dashboard.Enabled {
				srv := dashboard.NewServer(sess, cfg.Dashboard, logger)
				if err := srv.Run(ctx); err != nil && !errors.Is(err, ctx.Err()) {
					return err
				}
				return nil
			}

			<-ctx.Done()
			return nil
		},
	}

	sessionCmd.Flags().StringVarP(&game, "game", "g", "lol", `game mode: "lol" or "valorant"`)
	sessionCmd.Flags().StringVarP(&team, "team", "t", "", "your team (must exist in the team database)")
	sessionCmd.Flags().StringVarP(&opponent, "opponent", "o", "", "opposing team")
	sessionCmd.Flags().BoolVar(&serve, "serve", false, "expose the session over HTTP/WebSocket")
	sessionCmd.Flags().String("listen", ":8090", "dashboard listen address")

	return sessionCmd
}

func init() {
	rootCmd.AddCommand(newSessionCmd())
}
