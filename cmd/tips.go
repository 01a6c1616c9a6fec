package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTipsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tips",
		Short: "List the tips a session can unlock",
		RunE: func(cmd *cobra.Command, _ []string) error {
			entries, err := app.service.ListAchievements(cmd.Context())
			if err != nil {
				return err
			}

			for _, entry := range entries {
				trigger := "-"
				if entry.Milestone != nil {
					trigger = fmt.Sprintf("milestone %d", *entry.Milestone)
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", entry.ID, entry.Title, trigger)
			}

			return nil
		},
	}
}
