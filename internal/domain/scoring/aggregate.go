package scoring

import (
	"github.com/foliokit/templint/internal/domain"
)

// Complexity buckets a template by a weighted heuristic: content files
// weigh double, then every observed file and schema node counts once.
func Complexity(contentFiles, totalFiles, schemaNodes int) string {
	score := 2*contentFiles + totalFiles + schemaNodes
	switch {
	case score < 10:
		return domain.ComplexitySimple
	case score < 25:
		return domain.ComplexityModerate
	default:
		return domain.ComplexityComplex
	}
}

// maxRecommendations keeps the report's top-level recommendation list
// skimmable; the feedback generator covers the long tail.
const maxRecommendations = 5

// Aggregate folds the section results into a fresh CompatibilityReport.
// Sections are never mutated; a fail-fast run passes only the structure
// section and the report carries no deductions for the skipped stages.
func Aggregate(sections []domain.SectionResult, hasRequiredFiles bool, complexity string) *domain.CompatibilityReport {
	report := &domain.CompatibilityReport{
		HasRequiredFiles: hasRequiredFiles,
		Complexity:       complexity,
		Sections:         sections,
	}

	total := 0
	for _, s := range sections {
		total += s.Score
		for _, iss := range s.Issues {
			switch iss.Severity {
			case domain.SeverityError:
				report.Errors = append(report.Errors, iss)
			case domain.SeverityWarning:
				report.Warnings = append(report.Warnings, iss)
			default:
				report.Suggestions = append(report.Suggestions, iss)
			}
		}
	}
	if total < 0 {
		total = 0
	}

	report.Score = total
	report.Grade = domain.GradeFor(total)
	report.OverallValid = total >= PassThreshold && len(report.Errors) == 0
	report.Recommendations = topRecommendations(report)

	return report
}

// topRecommendations surfaces the first distinct suggestions attached to
// errors and warnings, worst first.
func topRecommendations(r *domain.CompatibilityReport) []string {
	seen := make(map[string]bool)
	var recs []string

	collect := func(issues []domain.ValidationIssue) {
		for _, iss := range issues {
			if iss.Suggestion == "" || seen[iss.Suggestion] {
				continue
			}
			if len(recs) >= maxRecommendations {
				return
			}
			seen[iss.Suggestion] = true
			recs = append(recs, iss.Suggestion)
		}
	}

	collect(r.Errors)
	collect(r.Warnings)
	return recs
}
