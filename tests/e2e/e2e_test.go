package e2e_test

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/templint/internal/domain"
)

var binaryPath string

func TestMain(m *testing.M) {
	// Build binary before running tests
	dir, err := os.MkdirTemp("", "templint-e2e")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	binaryPath = filepath.Join(dir, "templint")
	cmd := exec.Command("go", "build", "-o", binaryPath, "../../cmd/templint")
	if out, err := cmd.CombinedOutput(); err != nil {
		panic("build failed: " + string(out))
	}

	os.Exit(m.Run())
}

func fixturePath(name string) string {
	abs, _ := filepath.Abs(filepath.Join("../../testdata/templates", name))
	return abs
}

func cleanupHistory(fixture string) {
	os.RemoveAll(filepath.Join(fixture, ".templint"))
}

func run(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(binaryPath, args...)
	out, err := cmd.CombinedOutput()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}
	return string(out), exitCode
}

// --- Validate ---

func TestE2E_ValidatePerfect(t *testing.T) {
	fixture := fixturePath("perfect")
	defer cleanupHistory(fixture)

	out, code := run(t, "validate", fixture)
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "templint")
	assert.Contains(t, out, "100 / 100")
	assert.Contains(t, out, "compatible")
}

func TestE2E_ValidateJSON(t *testing.T) {
	fixture := fixturePath("perfect")
	defer cleanupHistory(fixture)

	out, code := run(t, "validate", fixture, "--json")
	assert.Equal(t, 0, code)

	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, "A", report.Grade)
	assert.True(t, report.OverallValid)
	assert.Len(t, report.Sections, 4)
}

func TestE2E_ValidateBroken(t *testing.T) {
	fixture := fixturePath("broken")
	defer cleanupHistory(fixture)

	out, code := run(t, "validate", fixture, "--json")
	assert.Equal(t, 0, code, "reporting an invalid template is not a command failure")

	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.OverallValid)
	assert.NotEmpty(t, report.Errors)
	assert.Less(t, report.Score, 70)
}

func TestE2E_ValidateNoManifest(t *testing.T) {
	fixture := fixturePath("noconfig")
	defer cleanupHistory(fixture)

	out, code := run(t, "validate", fixture, "--json")
	assert.Equal(t, 0, code)

	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.HasRequiredFiles)
	assert.Len(t, report.Sections, 1, "pipeline halts after structure without a manifest")
}

func TestE2E_ValidateWildcard(t *testing.T) {
	fixture := fixturePath("wildcard")
	defer cleanupHistory(fixture)

	out, code := run(t, "validate", fixture, "--json")
	assert.Equal(t, 0, code)

	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.OverallValid)
	assert.Empty(t, report.Errors)
}

func TestE2E_ValidateCI(t *testing.T) {
	fixture := fixturePath("broken")
	defer cleanupHistory(fixture)

	_, code := run(t, "validate", fixture, "--ci")
	assert.Equal(t, 1, code, "invalid template should fail the CI gate")

	perfect := fixturePath("perfect")
	defer cleanupHistory(perfect)

	_, code = run(t, "validate", perfect, "--ci", "--min", "90")
	assert.Equal(t, 0, code)

	_, code = run(t, "validate", perfect, "--ci", "--min", "101")
	assert.Equal(t, 1, code, "should exit 1 when below minimum")
}

func TestE2E_ValidateHistory(t *testing.T) {
	fixture := fixturePath("perfect")
	defer cleanupHistory(fixture)

	_, code := run(t, "validate", fixture)
	require.Equal(t, 0, code)

	out, code := run(t, "validate", fixture, "--history")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Validation History")
	assert.Contains(t, out, "100/100")
}

// --- Feedback ---

func TestE2E_FeedbackMarkdown(t *testing.T) {
	fixture := fixturePath("broken")
	defer cleanupHistory(fixture)

	out, code := run(t, "feedback", fixture, "--markdown")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "# Template Feedback")
	assert.Contains(t, out, "## Critical")
	assert.Contains(t, out, "## Plan")
}

func TestE2E_FeedbackJSON(t *testing.T) {
	fixture := fixturePath("perfect")
	defer cleanupHistory(fixture)

	out, code := run(t, "feedback", fixture, "--json")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"status": "excellent"`)
}

// --- Init ---

func TestE2E_InitThenValidate(t *testing.T) {
	dir := t.TempDir()

	out, code := run(t, "init", dir, "--type", "hybrid")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Created template.json")

	jsonOut, code := run(t, "validate", dir, "--json")
	assert.Equal(t, 0, code)

	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(jsonOut), &report))
	assert.True(t, report.OverallValid, "scaffold should pass validation")
	assert.Empty(t, report.Errors)
}

// --- Version ---

func TestE2E_Version(t *testing.T) {
	out, code := run(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, out, "templint")
}
