package application

import (
	"context"
	"fmt"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/feedback"
)

// FeedbackService runs a validation and derives author-facing feedback
// from the resulting report.
type FeedbackService struct {
	validate *ValidateService
}

func NewFeedbackService(validate *ValidateService) *FeedbackService {
	return &FeedbackService{validate: validate}
}

// GenerateFeedback validates the repository at the given revision and
// returns the feedback report alongside the underlying validation
// report.
func (s *FeedbackService) GenerateFeedback(ctx context.Context, revision string) (*feedback.Report, *domain.CompatibilityReport, error) {
	report, err := s.validate.ValidateTemplate(ctx, revision)
	if err != nil {
		return nil, nil, fmt.Errorf("validating template: %w", err)
	}
	return feedback.Generate(report), report, nil
}
