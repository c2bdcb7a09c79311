package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bridge",
		Short:         "Bridge between a billing host and its remote control panel",
		Long:          "bridge routes billing lifecycle events (provision, suspend, unsuspend, terminate) to a remote control panel and syncs bandwidth usage back into the billing database.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newProvisionCmd(app),
		newSuspendCmd(app),
		newUnsuspendCmd(app),
		newTerminateCmd(app),
		newUsageSyncCmd(app),
		newScheduleCmd(app),
	)

	return rootCmd
}
