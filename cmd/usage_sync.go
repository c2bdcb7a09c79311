package cmd

import (
	"errors"
	"fmt"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/spf13/cobra"
)

func newUsageSyncCmd(app *app) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "usage-sync",
		Short: "Sync bandwidth usage for every linked service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if status {
				return printSyncStatus(cmd, app)
			}

			outcome := app.router.Handle(cmd.Context(), domain.EventUsageSync, domain.Account{})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), outcome)
			return err
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "print the last recorded sync run instead of syncing")

	return cmd
}

func printSyncStatus(cmd *cobra.Command, app *app) error {
	report, err := app.syncState.Last(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoSyncReport) {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "no usage sync has been recorded yet")
			return err
		}
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "started:   %s\n", report.StartedAt.Format("2006-01-02 15:04:05 MST"))
	_, _ = fmt.Fprintf(out, "finished:  %s\n", report.FinishedAt.Format("2006-01-02 15:04:05 MST"))
	_, _ = fmt.Fprintf(out, "processed: %d\n", report.Processed)
	_, _ = fmt.Fprintf(out, "failures:  %d\n", len(report.Failures))
	for _, failure := range report.Failures {
		_, _ = fmt.Fprintf(out, "  %s\t%s\n", failure.BillingID, failure.Error)
	}

	return nil
}
