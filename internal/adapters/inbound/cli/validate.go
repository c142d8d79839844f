package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/foliokit/templint/internal/adapters/outbound/history"
	"github.com/foliokit/templint/internal/adapters/outbound/tui"
	"github.com/foliokit/templint/internal/application"
	"github.com/foliokit/templint/internal/domain"
)

func newValidateCmd() *cobra.Command {
	var (
		jsonOutput  bool
		ciMode      bool
		minScore    int
		rev         string
		showHistory bool
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "validate [path]",
		Short: "Validate a repository as a portfolio template",
		Long:  "Check the repository's structure, manifest, content files, and platform compatibility, and score the result out of 100.",
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

			hist := history.New()
			if showHistory {
				entries, err := hist.Load(absPath)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			accessor, err := newAccessor(absPath, rev, noCache)
			if err != nil {
				return err
			}

			svc := application.NewValidateService(accessor)
			report, err := svc.ValidateTemplate(cmd.Context(), rev)
			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			stampCommit(report, absPath, rev)

			entry := domain.HistoryEntry{
				Timestamp:  time.Now().Format(time.RFC3339),
				CommitHash: report.CommitHash,
				Score:      report.Score,
				Grade:      report.Grade,
				Valid:      report.OverallValid,
			}
			_ = hist.Save(absPath, entry) // best-effort

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode {
				if minScore > 0 && report.Score < minScore {
					return fmt.Errorf("score %d is below minimum %d", report.Score, minScore)
				}
				if minScore == 0 && !report.OverallValid {
					return fmt.Errorf("template is not compatible (score %d, %d errors)", report.Score, len(report.Errors))
				}
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 when the template fails the gate")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode (default: require a passing template)")
	cmd.Flags().StringVar(&rev, "rev", "", "Validate a committed revision (branch, tag, or hash) instead of the working tree")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show the validation history")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "Disable per-run repository caching")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
