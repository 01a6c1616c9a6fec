package cmd

import (
	"fmt"

	"github.com/bnema/ledgerline/internal/adapters/render/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPlayCmd(app *app) *cobra.Command {
	var instant bool

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the story in an interactive terminal UI",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := app.engineConfig()
			if instant {
				cfg.RevealInterval = 0
			}

			screen := tui.NewScreen()
			engine, err := app.service.NewSession(cmd.Context(), screen, cfg)
			if err != nil {
				return err
			}

			model := tui.New(engine, screen, tui.Options{FlashDuration: app.config.FlashDuration})
			p := tea.NewProgram(
				model,
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run terminal ui: %w", err)
			}

			app.logger.Info("Session ended", zap.Stringer("sessionID", engine.ID()), zap.String("slideID", engine.Snapshot().SlideID))
			return nil
		},
	}

	cmd.Flags().BoolVar(&instant, "instant", false, "Show dialogue at once instead of typing it out")

	return cmd
}
