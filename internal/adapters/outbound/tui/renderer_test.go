package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/foliokit/templint/internal/adapters/outbound/tui"
	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/feedback"
)

func sampleReport() *domain.CompatibilityReport {
	warn := domain.ValidationIssue{
		Severity:   domain.SeverityWarning,
		Message:    "no preview image found",
		Suggestion: "Add a preview.png",
	}
	return &domain.CompatibilityReport{
		OverallValid:     true,
		Score:            92,
		Grade:            "A",
		Complexity:       domain.ComplexitySimple,
		HasRequiredFiles: true,
		CommitHash:       "0123456789abcdef0123456789abcdef01234567",
		Sections: []domain.SectionResult{
			{Name: domain.SectionStructure, Valid: true, Score: 25, MaxScore: 30, Issues: []domain.ValidationIssue{warn}},
			{Name: domain.SectionConfig, Valid: true, Score: 25, MaxScore: 25},
			{Name: domain.SectionContent, Valid: true, Score: 25, MaxScore: 25},
			{Name: domain.SectionCompatibility, Valid: true, Score: 17, MaxScore: 20},
		},
		Warnings:        []domain.ValidationIssue{warn},
		Recommendations: []string{"Add a preview.png"},
	}
}

func TestRenderReport(t *testing.T) {
	out := tui.RenderReport(sampleReport())

	assert.Contains(t, out, "templint")
	assert.Contains(t, out, "92 / 100")
	assert.Contains(t, out, "compatible")
	assert.Contains(t, out, domain.SectionStructure)
	assert.Contains(t, out, "25/30")
	assert.Contains(t, out, "no preview image found")
	assert.Contains(t, out, "1 warnings")
	// Commit hashes render abbreviated.
	assert.Contains(t, out, "0123456")
	assert.NotContains(t, out, "0123456789abcdef")
}

func TestRenderReport_NoIssues(t *testing.T) {
	r := sampleReport()
	r.Warnings = nil
	r.Recommendations = nil
	r.Sections[0].Issues = nil

	out := tui.RenderReport(r)
	assert.Contains(t, out, "No issues found.")
}

func TestRenderHistory(t *testing.T) {
	entries := []domain.HistoryEntry{
		{Timestamp: "2026-08-24T10:00:00Z", Score: 70, Grade: "C"},
		{Timestamp: "2026-08-25T10:00:00Z", Score: 92, Grade: "A", CommitHash: "abcdef1234567890"},
	}

	out := tui.RenderHistory(entries)

	assert.Contains(t, out, "Validation History")
	assert.Contains(t, out, "2026-08-24")
	assert.Contains(t, out, "70/100")
	assert.Contains(t, out, "92/100")
	assert.Contains(t, out, "abcdef1")
	assert.Contains(t, out, "↑22")
}

func TestRenderHistory_Empty(t *testing.T) {
	out := tui.RenderHistory(nil)
	assert.Contains(t, out, "No validation history")
}

func TestFeedbackMarkdown(t *testing.T) {
	fb := &feedback.Report{
		Summary: feedback.Summary{
			Status:     feedback.StatusGood,
			Headline:   "Good: the template scores 85/100.",
			Score:      85,
			Grade:      "B",
			Complexity: domain.ComplexitySimple,
		},
		Sections: []feedback.SectionReview{
			{Name: domain.SectionStructure, Passed: true, Score: 25, MaxScore: 30, Weaknesses: []string{"no preview image found"}},
		},
		Warnings: []feedback.Item{{
			Message:  "no preview image found",
			Category: feedback.CategoryCompatibility,
			Steps:    []string{"Take a screenshot", "Save it as preview.png"},
		}},
		NextSteps: []feedback.Step{
			{Order: 1, Action: "Add a preview.png", Estimate: "~10 min"},
			{Order: 2, Action: "Re-run validation", Estimate: "~2 min"},
		},
		TotalEstimate: "~12 min",
		Resources:     []feedback.Resource{{Title: "Docs", URL: "https://docs.foliokit.dev"}},
	}

	md := tui.FeedbackMarkdown(fb)

	assert.Contains(t, md, "# Template Feedback")
	assert.Contains(t, md, "score 85/100")
	assert.Contains(t, md, "## Warnings")
	assert.Contains(t, md, "Save it as preview.png")
	assert.Contains(t, md, "## Plan (~12 min)")
	assert.Contains(t, md, "[Docs](https://docs.foliokit.dev)")
}
