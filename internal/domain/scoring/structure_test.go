package scoring_test

import (
	"testing"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rootFile(name string) domain.RepositoryEntry {
	return domain.RepositoryEntry{Name: name, Path: name, Kind: domain.EntryFile}
}

func rootDir(name string) domain.RepositoryEntry {
	return domain.RepositoryEntry{Name: name, Path: name, Kind: domain.EntryDirectory}
}

func TestAnalyzeStructure_AllArtifactsPresent(t *testing.T) {
	root := []domain.RepositoryEntry{
		rootFile("template.json"),
		rootFile("preview.png"),
		rootFile("README.md"),
		rootDir("components"),
	}

	res := scoring.AnalyzeStructure(root)

	assert.True(t, res.HasRequiredFiles)
	require.NotNil(t, res.ManifestEntry)
	assert.Equal(t, "template.json", res.ManifestEntry.Name)
	assert.True(t, res.Section.Valid)
	assert.Equal(t, scoring.MaxStructure, res.Section.Score)
	assert.Empty(t, res.Section.Issues)
}

func TestAnalyzeStructure_ManifestMissing(t *testing.T) {
	root := []domain.RepositoryEntry{rootFile("README.md"), rootFile("preview.png")}

	res := scoring.AnalyzeStructure(root)

	assert.False(t, res.HasRequiredFiles)
	assert.Nil(t, res.ManifestEntry)
	assert.False(t, res.Section.Valid)
	assert.Equal(t, scoring.MaxStructure-scoring.DeductionFor(scoring.CatManifestMissing), res.Section.Score)

	var hasError bool
	for _, iss := range res.Section.Issues {
		if iss.Severity == domain.SeverityError {
			hasError = true
		}
	}
	assert.True(t, hasError)
}

func TestAnalyzeStructure_YAMLManifestAccepted(t *testing.T) {
	root := []domain.RepositoryEntry{rootFile("template.yaml")}

	res := scoring.AnalyzeStructure(root)

	assert.True(t, res.HasRequiredFiles)
	require.NotNil(t, res.ManifestEntry)
	assert.Equal(t, "template.yaml", res.ManifestEntry.Name)
}

func TestAnalyzeStructure_JSONManifestPreferredOverYAML(t *testing.T) {
	root := []domain.RepositoryEntry{rootFile("template.yml"), rootFile("template.json")}

	res := scoring.AnalyzeStructure(root)

	require.NotNil(t, res.ManifestEntry)
	assert.Equal(t, "template.json", res.ManifestEntry.Name)
}

func TestAnalyzeStructure_RecommendedArtifactsMissing(t *testing.T) {
	root := []domain.RepositoryEntry{rootFile("template.json"), rootDir("src")}

	res := scoring.AnalyzeStructure(root)

	assert.True(t, res.HasRequiredFiles)
	assert.True(t, res.Section.Valid) // warnings only
	expected := scoring.MaxStructure -
		scoring.DeductionFor(scoring.CatPreviewMissing) -
		scoring.DeductionFor(scoring.CatReadmeMissing)
	assert.Equal(t, expected, res.Section.Score)
}

func TestAnalyzeStructure_ConventionalDirAbsenceIsFreeSuggestion(t *testing.T) {
	root := []domain.RepositoryEntry{
		rootFile("template.json"),
		rootFile("preview.jpeg"),
		rootFile("readme.md"),
	}

	res := scoring.AnalyzeStructure(root)

	assert.Equal(t, scoring.MaxStructure, res.Section.Score)
	require.Len(t, res.Section.Issues, 1)
	assert.Equal(t, domain.SeveritySuggestion, res.Section.Issues[0].Severity)
}

func TestAnalyzeStructure_EmptyRepository(t *testing.T) {
	res := scoring.AnalyzeStructure(nil)

	assert.False(t, res.HasRequiredFiles)
	assert.GreaterOrEqual(t, res.Section.Score, 0)
}

func TestAnalyzeStructure_DirectoryNamedLikeManifestIgnored(t *testing.T) {
	root := []domain.RepositoryEntry{rootDir("template.json")}

	res := scoring.AnalyzeStructure(root)

	assert.False(t, res.HasRequiredFiles)
}
