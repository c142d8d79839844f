package scoring

import "github.com/foliokit/templint/internal/domain"

// section accumulates issues for one pipeline stage and turns them into
// an immutable SectionResult. Every issue is priced through the
// deduction table at append time; the score floors at zero.
type section struct {
	name     string
	maxScore int
	score    int
	issues   []domain.ValidationIssue
}

func newSection(name string, maxScore int) *section {
	return &section{name: name, maxScore: maxScore, score: maxScore}
}

func (s *section) add(category string, iss domain.ValidationIssue) {
	s.score -= DeductionFor(category)
	s.issues = append(s.issues, iss)
}

func (s *section) result() domain.SectionResult {
	score := s.score
	if score < 0 {
		score = 0
	}
	valid := true
	for _, iss := range s.issues {
		if iss.Severity == domain.SeverityError {
			valid = false
			break
		}
	}
	return domain.SectionResult{
		Name:     s.name,
		Valid:    valid,
		Score:    score,
		MaxScore: s.maxScore,
		Issues:   s.issues,
	}
}
