package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/bnema/ledgerline/internal/adapters/render/summary"
	"github.com/bnema/ledgerline/internal/adapters/render/transcript"
	"github.com/bnema/ledgerline/internal/application"
	"github.com/spf13/cobra"
)

func newReplayCmd(app *app) *cobra.Command {
	var steps string
	var asJSON bool
	var hideTips bool

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run a scripted session and print its transcript",
		Long:  "Replay feeds a step script to a fresh session: c continues, d dismisses the open popup and a number picks that choice. Steps are separated by commas or spaces.",
		Example: `  ledgerline replay --steps "1,c,c,1"
  ledgerline replay --steps "1 c c 1" --json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed, err := application.ParseSteps(steps)
			if err != nil {
				return err
			}

			// Keep stdout machine-readable when JSON is requested.
			var out io.Writer = cmd.OutOrStdout()
			if asJSON {
				out = cmd.ErrOrStderr()
			}
			sink := transcript.New(out)

			cfg := app.engineConfig()
			cfg.RevealInterval = 0
			engine, err := app.service.NewSession(cmd.Context(), sink, cfg)
			if err != nil {
				return err
			}

			if err := engine.Start(); err != nil {
				return err
			}
			if err := engine.Replay(parsed); err != nil {
				return err
			}
			if err := sink.Err(); err != nil {
				return fmt.Errorf("write transcript: %w", err)
			}

			snapshot := engine.Snapshot()
			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(snapshot)
			}

			rendered, err := app.summaryRenderer(snapshot, engine.Achievements(), summary.RenderOptions{HideTips: hideTips})
			if err != nil {
				return fmt.Errorf("render summary: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "\n"+rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&steps, "steps", "", "Step script, e.g. \"1,c,c,2,d\"")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the final session snapshot as JSON")
	cmd.Flags().BoolVar(&hideTips, "hide-tips", false, "Leave the tips list out of the summary")

	return cmd
}
