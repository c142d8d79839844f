package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foliokit/templint/internal/adapters/inbound/cli"
	"github.com/foliokit/templint/internal/domain"
)

func fixturePath(t *testing.T, name string) string {
	t.Helper()
	abs, err := filepath.Abs(filepath.Join("../../../../testdata/templates", name))
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(filepath.Join(abs, ".templint")) })
	return abs
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmdForTest()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestValidate_PerfectTemplate(t *testing.T) {
	out, err := runCommand(t, "validate", fixturePath(t, "perfect"))
	require.NoError(t, err)

	assert.Contains(t, out, "templint")
	assert.Contains(t, out, "100 / 100")
	assert.Contains(t, out, "compatible")
	assert.Contains(t, out, "No issues found.")
}

func TestValidate_JSON(t *testing.T) {
	out, err := runCommand(t, "validate", fixturePath(t, "perfect"), "--json")
	require.NoError(t, err)

	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 100, report.Score)
	assert.Equal(t, "A", report.Grade)
	assert.True(t, report.OverallValid)
	assert.Len(t, report.Sections, 4)
}

func TestValidate_NoManifestFailsFast(t *testing.T) {
	out, err := runCommand(t, "validate", fixturePath(t, "noconfig"), "--json")
	require.NoError(t, err)

	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.False(t, report.HasRequiredFiles)
	assert.False(t, report.OverallValid)
	assert.Len(t, report.Sections, 1)
}

func TestValidate_Wildcard(t *testing.T) {
	out, err := runCommand(t, "validate", fixturePath(t, "wildcard"), "--json")
	require.NoError(t, err)

	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.True(t, report.OverallValid)
	assert.Empty(t, report.Errors)
}

func TestValidate_CIGate(t *testing.T) {
	// An invalid template fails the default gate.
	_, err := runCommand(t, "validate", fixturePath(t, "broken"), "--ci")
	assert.Error(t, err)

	// A passing template clears an explicit minimum.
	_, err = runCommand(t, "validate", fixturePath(t, "perfect"), "--ci", "--min", "90")
	assert.NoError(t, err)

	// An impossible minimum fails.
	_, err = runCommand(t, "validate", fixturePath(t, "perfect"), "--ci", "--min", "101")
	assert.Error(t, err)
}

func TestValidate_History(t *testing.T) {
	fixture := fixturePath(t, "perfect")

	_, err := runCommand(t, "validate", fixture)
	require.NoError(t, err)

	out, err := runCommand(t, "validate", fixture, "--history")
	require.NoError(t, err)
	assert.Contains(t, out, "Validation History")
	assert.Contains(t, out, "100/100")
}

func TestValidate_CommitStamp(t *testing.T) {
	dir := t.TempDir()
	gitInit(t, dir)
	manifest := `{
  "version": "1.0.0",
  "templateType": "json",
  "contentFiles": [
    {"path": "data.json", "schema": {"type": "object", "fields": {"title": {"type": "string", "label": "Title"}}}}
  ]
}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "template.json"), []byte(manifest), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(`{"title": "Hi"}`), 0644))
	gitRun(t, dir, "add", ".")
	gitRun(t, dir, "commit", "-m", "add template")
	// Dirty working tree; its findings belong to no commit.
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte(`{broken`), 0644))

	out, err := runCommand(t, "validate", dir, "--json")
	require.NoError(t, err)
	var report domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Empty(t, report.CommitHash, "working-tree reports carry no commit hash")

	out, err = runCommand(t, "validate", dir, "--rev", "HEAD", "--json")
	require.NoError(t, err)
	var revReport domain.CompatibilityReport
	require.NoError(t, json.Unmarshal([]byte(out), &revReport))
	assert.Len(t, revReport.CommitHash, 40)
	assert.Empty(t, revReport.Errors, "committed snapshot has the clean data.json")
}

func gitInit(t *testing.T, dir string) {
	t.Helper()
	gitRun(t, dir, "init")
	gitRun(t, dir, "config", "user.email", "test@test.com")
	gitRun(t, dir, "config", "user.name", "Test")
}

func gitRun(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, string(out))
}

func TestValidate_MissingPath(t *testing.T) {
	_, err := runCommand(t, "validate", filepath.Join(t.TempDir(), "absent"))
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "templint")
}
