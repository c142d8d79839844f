// Package feedback turns a finished CompatibilityReport into an
// actionable report for template authors: categorized issues, quick
// wins, and an ordered plan with time estimates. Generation is a pure
// function over the report and never fails; items without a known
// remedy simply carry less enrichment.
package feedback

import (
	"fmt"

	"github.com/foliokit/templint/internal/domain"
)

// Summary statuses, from best to worst.
const (
	StatusExcellent    = "excellent"
	StatusGood         = "good"
	StatusNeedsWork    = "needs-work"
	StatusImprovements = "improvements-needed"
)

// Report is a read-only view derived from one CompatibilityReport.
type Report struct {
	Summary       Summary          `json:"summary"`
	Sections      []SectionReview  `json:"sections"`
	Critical      []Item           `json:"critical,omitempty"`
	Warnings      []Item           `json:"warnings,omitempty"`
	Suggestions   []Item           `json:"suggestions,omitempty"`
	QuickWins     []Recommendation `json:"quick_wins,omitempty"`
	LongTerm      []Recommendation `json:"long_term,omitempty"`
	NextSteps     []Step           `json:"next_steps"`
	TotalEstimate string           `json:"total_estimate"`
	Resources     []Resource       `json:"resources"`
}

type Summary struct {
	Status     string `json:"status"`
	Headline   string `json:"headline"`
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
	Valid      bool   `json:"valid"`
	ErrorCount int    `json:"error_count"`
	Complexity string `json:"complexity"`
}

// SectionReview is the per-section pass/fail breakdown.
type SectionReview struct {
	Name       string   `json:"name"`
	Passed     bool     `json:"passed"`
	Score      int      `json:"score"`
	MaxScore   int      `json:"max_score"`
	Strengths  []string `json:"strengths,omitempty"`
	Weaknesses []string `json:"weaknesses,omitempty"`
}

// Item is one issue enriched with a category and, when a remedy is
// known, concrete steps and an example document.
type Item struct {
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Path       string   `json:"path,omitempty"`
	Category   string   `json:"category"`
	Steps      []string `json:"steps,omitempty"`
	Example    string   `json:"example,omitempty"`
}

// Recommendation is a remediation sized by effort and impact.
type Recommendation struct {
	Title    string `json:"title"`
	Effort   string `json:"effort"`
	Impact   string `json:"impact"`
	Estimate string `json:"estimate"`
}

// Step is one entry of the ordered next-steps plan.
type Step struct {
	Order    int    `json:"order"`
	Action   string `json:"action"`
	Severity string `json:"severity,omitempty"`
	Estimate string `json:"estimate"`
}

type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Generate derives the feedback report. The input report is never
// mutated.
func Generate(r *domain.CompatibilityReport) *Report {
	fb := &Report{
		Summary:   buildSummary(r),
		Sections:  reviewSections(r),
		Resources: resources(),
	}

	fb.Critical = enrich(r.Errors)
	fb.Warnings = enrich(r.Warnings)
	fb.Suggestions = enrich(r.Suggestions)

	fb.QuickWins, fb.LongTerm = splitRecommendations(fb)
	fb.NextSteps, fb.TotalEstimate = buildPlan(r)

	return fb
}

func buildSummary(r *domain.CompatibilityReport) Summary {
	status := StatusImprovements
	switch {
	case r.Score >= 90 && r.ErrorCount() == 0:
		status = StatusExcellent
	case r.Score >= 70 && r.ErrorCount() == 0:
		status = StatusGood
	case r.Score >= 50:
		status = StatusNeedsWork
	}

	return Summary{
		Status:     status,
		Headline:   headline(status, r),
		Score:      r.Score,
		Grade:      r.Grade,
		Valid:      r.OverallValid,
		ErrorCount: r.ErrorCount(),
		Complexity: r.Complexity,
	}
}

func headline(status string, r *domain.CompatibilityReport) string {
	switch status {
	case StatusExcellent:
		return fmt.Sprintf("Excellent: the template scores %d/100 and is ready for the platform.", r.Score)
	case StatusGood:
		return fmt.Sprintf("Good: the template scores %d/100 and passes validation; a few touches would polish it.", r.Score)
	case StatusNeedsWork:
		return fmt.Sprintf("Needs work: the template scores %d/100; resolve the findings below before publishing.", r.Score)
	default:
		return fmt.Sprintf("Improvements needed: the template scores %d/100 with %d blocking error(s).", r.Score, r.ErrorCount())
	}
}

func reviewSections(r *domain.CompatibilityReport) []SectionReview {
	var reviews []SectionReview
	for _, s := range r.Sections {
		review := SectionReview{
			Name:     s.Name,
			Passed:   s.Valid,
			Score:    s.Score,
			MaxScore: s.MaxScore,
		}

		if s.Score == s.MaxScore {
			review.Strengths = append(review.Strengths,
				fmt.Sprintf("Full %s score (%d/%d)", s.Name, s.Score, s.MaxScore))
		} else if s.Valid {
			review.Strengths = append(review.Strengths,
				fmt.Sprintf("No blocking %s errors", s.Name))
		}
		for _, iss := range worstIssues(s.Issues, 3) {
			review.Weaknesses = append(review.Weaknesses, iss.Message)
		}

		reviews = append(reviews, review)
	}
	return reviews
}

// worstIssues picks up to n issues, errors before warnings before
// suggestions, preserving the original order within a severity.
func worstIssues(issues []domain.ValidationIssue, n int) []domain.ValidationIssue {
	var picked []domain.ValidationIssue
	for _, sev := range []string{domain.SeverityError, domain.SeverityWarning, domain.SeveritySuggestion} {
		for _, iss := range issues {
			if iss.Severity != sev || len(picked) >= n {
				continue
			}
			picked = append(picked, iss)
		}
	}
	return picked
}

func enrich(issues []domain.ValidationIssue) []Item {
	var items []Item
	for _, iss := range issues {
		item := Item{
			Message:    iss.Message,
			Suggestion: iss.Suggestion,
			Path:       iss.Path,
			Category:   Categorize(iss),
		}
		if rem, ok := remedyFor(iss); ok {
			item.Steps = rem.Steps
			item.Example = rem.Example
		}
		items = append(items, item)
	}
	return items
}

// splitRecommendations separates low-effort, at-least-medium-impact
// items (quick wins) from the rest (long-term).
func splitRecommendations(fb *Report) (quick, longTerm []Recommendation) {
	add := func(items []Item, severity string) {
		for _, it := range items {
			rec := Recommendation{
				Title:    recommendationTitle(it),
				Effort:   effortFor(it, severity),
				Impact:   impactFor(severity),
				Estimate: formatDuration(estimateMinutes(severity)),
			}
			if rec.Effort == "low" && rec.Impact != "low" {
				quick = append(quick, rec)
			} else {
				longTerm = append(longTerm, rec)
			}
		}
	}

	add(fb.Critical, domain.SeverityError)
	add(fb.Warnings, domain.SeverityWarning)
	add(fb.Suggestions, domain.SeveritySuggestion)
	return quick, longTerm
}

func recommendationTitle(it Item) string {
	if it.Suggestion != "" {
		return it.Suggestion
	}
	return it.Message
}

// effortFor sizes an item: issues with a known step-by-step remedy are
// low effort regardless of severity; bare errors take real work.
func effortFor(it Item, severity string) string {
	if len(it.Steps) > 0 {
		return "low"
	}
	if severity == domain.SeverityError {
		return "medium"
	}
	return "low"
}

func impactFor(severity string) string {
	switch severity {
	case domain.SeverityError:
		return "high"
	case domain.SeverityWarning:
		return "medium"
	default:
		return "low"
	}
}

// buildPlan orders the work errors first, then warnings, then
// suggestions, closing with a re-validation step.
func buildPlan(r *domain.CompatibilityReport) ([]Step, string) {
	var steps []Step
	total := 0

	appendSteps := func(issues []domain.ValidationIssue, severity string) {
		for _, iss := range issues {
			minutes := estimateMinutes(severity)
			total += minutes
			steps = append(steps, Step{
				Order:    len(steps) + 1,
				Action:   stepAction(iss),
				Severity: severity,
				Estimate: formatDuration(minutes),
			})
		}
	}

	appendSteps(r.Errors, domain.SeverityError)
	appendSteps(r.Warnings, domain.SeverityWarning)
	appendSteps(r.Suggestions, domain.SeveritySuggestion)

	total += revalidateMinutes
	steps = append(steps, Step{
		Order:    len(steps) + 1,
		Action:   "Re-run validation and confirm the template passes",
		Estimate: formatDuration(revalidateMinutes),
	})

	return steps, formatDuration(total)
}

func stepAction(iss domain.ValidationIssue) string {
	if iss.Suggestion != "" {
		return iss.Suggestion
	}
	return "Resolve: " + iss.Message
}

// Per-issue time estimates in minutes, by severity.
const (
	errorMinutes      = 15
	warningMinutes    = 10
	suggestionMinutes = 5
	revalidateMinutes = 2
)

func estimateMinutes(severity string) int {
	switch severity {
	case domain.SeverityError:
		return errorMinutes
	case domain.SeverityWarning:
		return warningMinutes
	default:
		return suggestionMinutes
	}
}

func formatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("~%d min", minutes)
	}
	h, m := minutes/60, minutes%60
	if m == 0 {
		return fmt.Sprintf("~%d h", h)
	}
	return fmt.Sprintf("~%d h %d min", h, m)
}

func resources() []Resource {
	return []Resource{
		{Title: "Template manifest reference", URL: "https://docs.foliokit.dev/templates/manifest"},
		{Title: "Field schema guide", URL: "https://docs.foliokit.dev/templates/schema"},
		{Title: "Publishing checklist", URL: "https://docs.foliokit.dev/templates/publishing"},
	}
}
