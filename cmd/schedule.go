package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

func newScheduleCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run the usage sync on the configured cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// The scheduled job goes straight to the sync runner; the
			// lifecycle router only serves host-driven events.
			runner := cron.New()
			_, err := runner.AddFunc(app.cfg.Sync.Schedule, func() {
				if !app.usage.RunAndLogErrors(ctx) {
					app.logger.Warn().Msg("scheduled usage sync finished with failures")
				}
			})
			if err != nil {
				return fmt.Errorf("parse sync schedule %q: %w", app.cfg.Sync.Schedule, err)
			}

			app.logger.Info().
				Str("schedule", app.cfg.Sync.Schedule).
				Msg("usage sync scheduler started")

			runner.Start()
			<-ctx.Done()

			// Let an in-flight run finish before exiting.
			<-runner.Stop().Done()

			return nil
		},
	}
}
