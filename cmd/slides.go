package cmd

import (
	"fmt"
	"strings"

	tomlrepo "github.com/bnema/ledgerline/internal/adapters/repo/toml"
	"github.com/bnema/ledgerline/internal/domain"
	"github.com/spf13/cobra"
)

func newSlidesCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slides",
		Short: "Inspect the story content",
	}

	cmd.AddCommand(
		newSlidesListCmd(app),
		newSlidesValidateCmd(app),
		newSlidesExportCmd(app),
	)

	return cmd
}

func newSlidesListCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List slides in content order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			slides, err := app.service.ListSlides(cmd.Context())
			if err != nil {
				return err
			}

			for _, slide := range slides {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", slide.ID, slideTargets(slide))
			}

			return nil
		},
	}
}

func newSlidesValidateCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that every referenced slide and tip exists",
		RunE: func(cmd *cobra.Command, _ []string) error {
			content, err := app.service.ValidateContent(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "ok: %d slides, %d tips (%s)\n", content.Slides.Len(), len(content.Achievements), app.repo.Source())
			return err
		},
	}
}

func newSlidesExportCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the current content to a TOML file for editing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := app.service.LoadContent(cmd.Context())
			if err != nil {
				return err
			}

			target, err := tomlrepo.NewFileRepository(args[0])
			if err != nil {
				return err
			}
			if err := target.Save(cmd.Context(), content); err != nil {
				return fmt.Errorf("export content: %w", err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "exported %d slides to %s\n", content.Slides.Len(), target.Source())
			return err
		},
	}
}

// slideTargets describes where a slide can lead.
func slideTargets(slide domain.Slide) string {
	if len(slide.Choices) == 0 {
		if slide.Next == "" {
			return "(end)"
		}
		return "-> " + string(slide.Next)
	}

	targets := make([]string, 0, len(slide.Choices))
	for _, choice := range slide.Choices {
		switch {
		case choice.Locked:
			targets = append(targets, "locked")
		case choice.Next == "":
			targets = append(targets, "-")
		default:
			targets = append(targets, string(choice.Next))
		}
	}
	return "-> [" + strings.Join(targets, ", ") + "]"
}
