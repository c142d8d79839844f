package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/foliokit/templint/internal/domain/feedback"
)

// RenderFeedback renders the feedback report as styled terminal
// markdown.
func RenderFeedback(fb *feedback.Report) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(FeedbackMarkdown(fb))
	if err != nil {
		return "", fmt.Errorf("rendering feedback: %w", err)
	}
	return out, nil
}

// FeedbackMarkdown builds the raw markdown document behind the styled
// output; `feedback --markdown` emits it unrendered for piping.
func FeedbackMarkdown(fb *feedback.Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Template Feedback\n\n")
	fmt.Fprintf(&b, "**%s** — score %d/100 (%s), complexity %s\n\n",
		fb.Summary.Status, fb.Summary.Score, fb.Summary.Grade, fb.Summary.Complexity)
	fmt.Fprintf(&b, "%s\n", fb.Summary.Headline)

	if len(fb.Sections) > 0 {
		b.WriteString("\n## Sections\n\n")
		for _, s := range fb.Sections {
			mark := "✓"
			if !s.Passed {
				mark = "✗"
			}
			fmt.Fprintf(&b, "- %s **%s** %d/%d\n", mark, s.Name, s.Score, s.MaxScore)
			for _, w := range s.Weaknesses {
				fmt.Fprintf(&b, "  - %s\n", w)
			}
		}
	}

	writeItems(&b, "Critical", fb.Critical)
	writeItems(&b, "Warnings", fb.Warnings)
	writeItems(&b, "Suggestions", fb.Suggestions)

	if len(fb.QuickWins) > 0 {
		b.WriteString("\n## Quick wins\n\n")
		for _, q := range fb.QuickWins {
			fmt.Fprintf(&b, "- %s _(%s)_\n", q.Title, q.Estimate)
		}
	}

	if len(fb.NextSteps) > 0 {
		fmt.Fprintf(&b, "\n## Plan (%s)\n\n", fb.TotalEstimate)
		for _, s := range fb.NextSteps {
			fmt.Fprintf(&b, "%d. %s _(%s)_\n", s.Order, s.Action, s.Estimate)
		}
	}

	if len(fb.Resources) > 0 {
		b.WriteString("\n## Resources\n\n")
		for _, r := range fb.Resources {
			fmt.Fprintf(&b, "- [%s](%s)\n", r.Title, r.URL)
		}
	}

	return b.String()
}

func writeItems(b *strings.Builder, title string, items []feedback.Item) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, it := range items {
		fmt.Fprintf(b, "- **%s** `%s`\n", it.Message, it.Category)
		if it.Suggestion != "" {
			fmt.Fprintf(b, "  - %s\n", it.Suggestion)
		}
		for _, step := range it.Steps {
			fmt.Fprintf(b, "  1. %s\n", step)
		}
		if it.Example != "" {
			b.WriteString("\n  ```\n")
			for _, line := range strings.Split(it.Example, "\n") {
				fmt.Fprintf(b, "  %s\n", line)
			}
			b.WriteString("  ```\n")
		}
	}
}
