package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/foliokit/templint/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A": success,
		"B": lipgloss.Color("#A3E635"), // lime
		"C": warning,
		"D": lipgloss.Color("#FB923C"), // orange
		"F": danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	hintTagStyle  = lipgloss.NewStyle().Foreground(info)
	pathStyle     = lipgloss.NewStyle().Foreground(dim)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a validation report for terminal output.
func RenderReport(r *domain.CompatibilityReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("templint")
	subtitle := dimStyle.Render("Template Compatibility")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(r.Grade)).
		Render(fmt.Sprintf("%d / 100", r.Score))
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(r.Grade)).
		Render(r.Grade)
	verdict := failStyle.Render("not compatible")
	if r.OverallValid {
		verdict = passStyle.Render("compatible")
	}

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + gradeStyled + "\n" + verdict))
	b.WriteString("\n\n")

	// ── Sections ──
	for _, s := range r.Sections {
		renderSection(&b, s)
	}

	b.WriteString("\n  ")
	meta := fmt.Sprintf("complexity: %s", r.Complexity)
	if r.CommitHash != "" {
		meta += "  commit: " + shortHash(r.CommitHash)
	}
	b.WriteString(dimStyle.Render(meta))
	b.WriteString("\n\n  " + separatorLine + "\n\n")

	// ── Issues ──
	total := r.ErrorCount() + r.WarningCount() + len(r.Suggestions)
	if total == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
	} else {
		b.WriteString("  " + titleStyle.Render("Issues") + "  ")
		if r.ErrorCount() > 0 {
			b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", r.ErrorCount())) + "  ")
		}
		if r.WarningCount() > 0 {
			b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", r.WarningCount())) + "  ")
		}
		if len(r.Suggestions) > 0 {
			b.WriteString(hintTagStyle.Render(fmt.Sprintf("%d suggestions", len(r.Suggestions))))
		}
		b.WriteString("\n\n")

		for _, iss := range r.Errors {
			renderIssue(&b, iss, errorTagStyle.Render("error"))
		}
		for _, iss := range r.Warnings {
			renderIssue(&b, iss, warnTagStyle.Render("warn "))
		}
		for _, iss := range r.Suggestions {
			renderIssue(&b, iss, hintTagStyle.Render("hint "))
		}
	}

	// ── Recommendations ──
	if len(r.Recommendations) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Recommendations") + "\n\n")
		for _, rec := range r.Recommendations {
			b.WriteString("    " + dimStyle.Render("• "+rec) + "\n")
		}
	}

	b.WriteString("\n")
	return b.String()
}

func renderSection(b *strings.Builder, s domain.SectionResult) {
	pct := 0
	if s.MaxScore > 0 {
		pct = s.Score * 100 / s.MaxScore
	}

	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(pct)).
		Render(fmt.Sprintf("%d/%d", s.Score, s.MaxScore))
	bar := coloredBar(pct, 20)
	status := passStyle.Render("✓")
	if !s.Valid {
		status = failStyle.Render("✗")
	}

	name := sectionStyle.Render(padRight(s.Name, 16))
	fmt.Fprintf(b, "  %s %s %s  %s\n", status, name, bar, scoreText)
}

func renderIssue(b *strings.Builder, iss domain.ValidationIssue, tag string) {
	if iss.Path != "" {
		fmt.Fprintf(b, "    %s %s\n", tag, pathStyle.Render(iss.Path))
		fmt.Fprintf(b, "         %s\n", dimStyle.Render(iss.Message))
	} else {
		fmt.Fprintf(b, "    %s %s\n", tag, dimStyle.Render(iss.Message))
	}
	if iss.Suggestion != "" {
		fmt.Fprintf(b, "         %s\n", faintStyle.Render("→ "+iss.Suggestion))
	}
}

// RenderHistory formats the validation history for terminal output.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No validation history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Validation History") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, e := range entries {
		hash := shortHash(e.CommitHash)
		if hash == "" {
			hash = "·······"
		}

		date := e.Timestamp
		if len(date) > 10 {
			date = date[:10]
		}

		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(e.Score)).
			Render(fmt.Sprintf("%d/100", e.Score))

		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(date),
			faintStyle.Render(hash),
			scoreStyled,
			e.Grade,
		)

		if i > 0 {
			diff := e.Score - entries[i-1].Score
			if diff > 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↑%d", diff))
			} else if diff < 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↓%d", -diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

func coloredBar(pct, width int) string {
	filled := max(0, min(pct*width/100, width))
	empty := width - filled

	color := scoreColor(pct)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(pct int) lipgloss.Color {
	switch {
	case pct >= 80:
		return success
	case pct >= 60:
		return lipgloss.Color("#A3E635") // lime
	case pct >= 40:
		return warning
	default:
		return danger
	}
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
