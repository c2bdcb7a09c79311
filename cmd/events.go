package cmd

import (
	"fmt"

	"github.com/scp-tools/billing-bridge/internal/domain"
	"github.com/spf13/cobra"
)

func newProvisionCmd(app *app) *cobra.Command {
	return newEventCmd(app, domain.EventProvision, "Create the panel client and grant it access to its server")
}

func newSuspendCmd(app *app) *cobra.Command {
	return newEventCmd(app, domain.EventSuspend, "Suspend the server's sub-clients and open an escalation ticket")
}

func newUnsuspendCmd(app *app) *cobra.Command {
	return newEventCmd(app, domain.EventUnsuspend, "Lift the suspension on the server's sub-clients")
}

func newTerminateCmd(app *app) *cobra.Command {
	return newEventCmd(app, domain.EventTerminate, "Terminate the server (disabled; reports why)")
}

// newEventCmd builds one lifecycle command. The outcome string goes to
// stdout and the command exits zero either way; only wiring and flag errors
// produce a non-zero exit, matching how the billing host consumes module
// results.
func newEventCmd(app *app, event domain.LifecycleEvent, short string) *cobra.Command {
	var billingID, clientID, hostname string

	cmd := &cobra.Command{
		Use:   string(event),
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			outcome := app.router.Handle(cmd.Context(), event, domain.Account{
				BillingID: billingID,
				ClientID:  clientID,
				Hostname:  hostname,
			})
			_, err := fmt.Fprintln(cmd.OutOrStdout(), outcome)
			return err
		},
	}

	cmd.Flags().StringVar(&billingID, "billing-id", "", "billing service ID")
	cmd.Flags().StringVar(&clientID, "client-id", "", "billing client ID that owns the service")
	cmd.Flags().StringVar(&hostname, "hostname", "", "service hostname")
	_ = cmd.MarkFlagRequired("billing-id")

	return cmd
}
