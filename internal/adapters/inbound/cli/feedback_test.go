package cli_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/templint/internal/domain/feedback"
)

func TestFeedback_Markdown(t *testing.T) {
	out, err := runCommand(t, "feedback", fixturePath(t, "broken"), "--markdown")
	require.NoError(t, err)

	assert.Contains(t, out, "# Template Feedback")
	assert.Contains(t, out, "## Critical")
	assert.Contains(t, out, "missing required field")
	assert.Contains(t, out, "## Plan")
}

func TestFeedback_JSON(t *testing.T) {
	out, err := runCommand(t, "feedback", fixturePath(t, "perfect"), "--json")
	require.NoError(t, err)

	var fb feedback.Report
	require.NoError(t, json.Unmarshal([]byte(out), &fb))
	assert.Equal(t, feedback.StatusExcellent, fb.Summary.Status)
	assert.Empty(t, fb.Critical)
	assert.NotEmpty(t, fb.NextSteps)
}

func TestFeedback_MissingPath(t *testing.T) {
	_, err := runCommand(t, "feedback", "/no/such/template")
	assert.Error(t, err)
}
