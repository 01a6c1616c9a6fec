package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "ledgerline",
		Short:         "ledgerline: a branching money story played in the terminal",
		Long:          "ledgerline walks a slide-based story about budgeting, saving and credit. Choices move money between checking and savings, and a synthetic credit score reacts to how the ledger looks.",
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

	rootCmd.PersistentPostRun = func(_ *cobra.Command, _ []string) {
		_ = app.logger.Sync()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newPlayCmd(app),
		newReplayCmd(app),
		newSlidesCmd(app),
		newTipsCmd(app),
		newCreditCmd(),
	)

	return rootCmd
}
