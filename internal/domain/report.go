package domain

// ValidationIssue represents a single finding against a template.
// Severity is fixed at creation and never changes afterwards.
type ValidationIssue struct {
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Path       string `json:"path,omitempty"`
}

const (
	SeverityError      = "error"
	SeverityWarning    = "warning"
	SeveritySuggestion = "suggestion"
)

// Validation section names, in pipeline order.
const (
	SectionStructure     = "structure"
	SectionConfig        = "config"
	SectionContent       = "content"
	SectionCompatibility = "compatibility"
)

// SectionResult holds the outcome of one validation stage. A section
// starts at MaxScore and only loses points; it is never negative.
type SectionResult struct {
	Name     string            `json:"name"`
	Valid    bool              `json:"valid"`
	Score    int               `json:"score"`
	MaxScore int               `json:"max_score"`
	Issues   []ValidationIssue `json:"issues,omitempty"`
}

// Complexity buckets for a template.
const (
	ComplexitySimple   = "simple"
	ComplexityModerate = "moderate"
	ComplexityComplex  = "complex"
)

// CompatibilityReport aggregates all section results into the final
// verdict for a template. A new validation run always produces a new
// report; reports are never mutated after aggregation, and two runs on
// an unchanged snapshot produce identical reports. The commit hash is
// an adapter concern, stamped after the pipeline runs.
type CompatibilityReport struct {
	OverallValid     bool              `json:"overall_valid"`
	Score            int               `json:"score"`
	Grade            string            `json:"grade"`
	Complexity       string            `json:"complexity"`
	HasRequiredFiles bool              `json:"has_required_files"`
	Sections         []SectionResult   `json:"sections"`
	Errors           []ValidationIssue `json:"errors,omitempty"`
	Warnings         []ValidationIssue `json:"warnings,omitempty"`
	Suggestions      []ValidationIssue `json:"suggestions,omitempty"`
	Recommendations  []string          `json:"recommendations,omitempty"`
	CommitHash       string            `json:"commit_hash,omitempty"`
}

func (r *CompatibilityReport) ErrorCount() int   { return len(r.Errors) }
func (r *CompatibilityReport) WarningCount() int { return len(r.Warnings) }

// Section returns the named section result, or nil if the stage did not
// run (fail-fast reports only carry the structure section).
func (r *CompatibilityReport) Section(name string) *SectionResult {
	for i := range r.Sections {
		if r.Sections[i].Name == name {
			return &r.Sections[i]
		}
	}
	return nil
}

// GradeFor maps a 0-100 score to its letter grade.
func GradeFor(score int) string {
	switch {
	case score >= 90:
		return "A"
	case score >= 80:
		return "B"
	case score >= 70:
		return "C"
	case score >= 60:
		return "D"
	default:
		return "F"
	}
}

// HistoryEntry is one recorded validation outcome for a template.
type HistoryEntry struct {
	Timestamp  string `json:"timestamp"`
	CommitHash string `json:"commit_hash,omitempty"`
	Score      int    `json:"score"`
	Grade      string `json:"grade"`
	Valid      bool   `json:"valid"`
}
