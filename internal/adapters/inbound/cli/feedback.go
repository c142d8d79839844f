package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/foliokit/templint/internal/adapters/outbound/tui"
	"github.com/foliokit/templint/internal/application"
)

func newFeedbackCmd() *cobra.Command {
	var (
		jsonOutput  bool
		markdownOut bool
		rev         string
	)

	cmd := &cobra.Command{
		Use:   "feedback [path]",
		Short: "Get actionable feedback on a template",
		Long:  "Validate the repository and turn the findings into categorized fixes, quick wins, and an ordered plan with time estimates.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			accessor, err := newAccessor(absPath, rev, false)
			if err != nil {
				return err
			}

			svc := application.NewFeedbackService(application.NewValidateService(accessor))
			fb, _, err := svc.GenerateFeedback(cmd.Context(), rev)
			if err != nil {
				return fmt.Errorf("feedback failed: %w", err)
			}

			switch {
			case jsonOutput:
				return renderJSON(cmd, fb)
			case markdownOut:
				fmt.Fprint(cmd.OutOrStdout(), tui.FeedbackMarkdown(fb))
				return nil
			default:
				out, err := tui.RenderFeedback(fb)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), out)
				return nil
			}
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the feedback as JSON")
	cmd.Flags().BoolVar(&markdownOut, "markdown", false, "Output the raw markdown document")
	cmd.Flags().StringVar(&rev, "rev", "", "Analyze a committed revision (branch, tag, or hash) instead of the working tree")

	return cmd
}
