package schema_test

import (
	"strings"
	"testing"

	"github.com/foliokit/templint/internal/domain"
	"github.com/foliokit/templint/internal/domain/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func TestWalk_ValidLeafField(t *testing.T) {
	f := &schema.Field{
		Name:  "title",
		Kind:  schema.KindString,
		Label: "Title",
		Constraints: schema.Constraints{
			MinLength: intPtr(1),
			MaxLength: intPtr(120),
		},
	}

	res := schema.Walk(f, "title")

	assert.Empty(t, res.Issues)
	assert.Equal(t, 1, res.Nodes)
	assert.Equal(t, []string{"title"}, res.Paths)
}

func TestWalk_UnsupportedKindIsError(t *testing.T) {
	f := &schema.Field{Name: "avatar", Kind: "blob", Label: "Avatar"}

	res := schema.Walk(f, "avatar")

	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.SeverityError, res.Issues[0].Severity)
	assert.Contains(t, res.Issues[0].Message, `"blob"`)
	assert.Equal(t, "avatar", res.Issues[0].Path)
}

func TestWalk_MissingKindIsError(t *testing.T) {
	f := &schema.Field{Name: "bio", Label: "Bio"}

	res := schema.Walk(f, "bio")

	require.NotEmpty(t, res.Issues)
	assert.Equal(t, domain.SeverityError, res.Issues[0].Severity)
	assert.Contains(t, res.Issues[0].Message, "no type")
}

func TestWalk_BadNameIsWarning(t *testing.T) {
	f := &schema.Field{Name: "job-title", Kind: schema.KindString, Label: "Job"}

	res := schema.Walk(f, "job-title")

	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.SeverityWarning, res.Issues[0].Severity)
	assert.Contains(t, res.Issues[0].Message, "identifier-like")
}

func TestWalk_ConstraintViolationsAreWarnings(t *testing.T) {
	f := &schema.Field{
		Name:  "summary",
		Kind:  schema.KindText,
		Label: "Summary",
		Constraints: schema.Constraints{
			MinLength: intPtr(-1),
			Pattern:   "([unclosed",
		},
	}

	res := schema.Walk(f, "summary")

	require.Len(t, res.Issues, 2)
	for _, iss := range res.Issues {
		assert.Equal(t, domain.SeverityWarning, iss.Severity)
	}
}

func TestWalk_MinMaxConsistency(t *testing.T) {
	f := &schema.Field{
		Name:  "years",
		Kind:  schema.KindNumber,
		Label: "Years",
		Constraints: schema.Constraints{
			Min: floatPtr(10),
			Max: floatPtr(2),
		},
	}

	res := schema.Walk(f, "years")

	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.SeverityWarning, res.Issues[0].Severity)
	assert.Contains(t, res.Issues[0].Message, "exceeds max")
}

func TestWalk_SelectWithoutOptions(t *testing.T) {
	f := &schema.Field{Name: "theme", Kind: schema.KindSelect, Label: "Theme"}

	res := schema.Walk(f, "theme")

	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0].Message, "no options")
}

func TestWalk_MissingLabelIsSuggestion(t *testing.T) {
	f := &schema.Field{Name: "jobTitle", Kind: schema.KindString}

	res := schema.Walk(f, "jobTitle")

	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.SeveritySuggestion, res.Issues[0].Severity)
	assert.Contains(t, res.Issues[0].Suggestion, "Job Title")
}

func TestWalk_NestedObjectPaths(t *testing.T) {
	f := &schema.Field{
		Name: "profile",
		Kind: schema.KindObject,
		Label: "Profile",
		Children: map[string]*schema.Field{
			"name": {Name: "name", Kind: schema.KindString, Label: "Name"},
			"links": {
				Name:  "links",
				Kind:  schema.KindArray,
				Label: "Links",
				Item:  &schema.Field{Name: "link", Kind: schema.KindURL, Label: "Link"},
			},
		},
	}

	res := schema.Walk(f, "profile")

	assert.Empty(t, res.Issues)
	assert.Equal(t, 4, res.Nodes)
	assert.ElementsMatch(t, []string{
		"profile", "profile.name", "profile.links", "profile.links[]",
	}, res.Paths)
}

// Every node of a depth-n tree is visited exactly once, and the path of
// each issue reflects its nesting depth.
func TestWalk_DepthQualifiedPaths(t *testing.T) {
	leaf := &schema.Field{Name: "deep", Kind: "bogus", Label: "Deep"}
	mid := &schema.Field{
		Name: "mid", Kind: schema.KindObject, Label: "Mid",
		Children: map[string]*schema.Field{"deep": leaf},
	}
	root := &schema.Field{
		Name: "root", Kind: schema.KindObject, Label: "Root",
		Children: map[string]*schema.Field{"mid": mid},
	}

	res := schema.Walk(root, "root")

	assert.Equal(t, 3, res.Nodes)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "root.mid.deep", res.Issues[0].Path)
	assert.Equal(t, 3, len(strings.Split(res.Issues[0].Path, ".")))
}

func TestWalk_EmptyObjectWarns(t *testing.T) {
	f := &schema.Field{Name: "meta", Kind: schema.KindObject, Label: "Meta"}

	res := schema.Walk(f, "meta")

	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.SeverityWarning, res.Issues[0].Severity)
	assert.Contains(t, res.Issues[0].Message, "no child fields")
}

func TestWalk_ArrayWithoutItemWarns(t *testing.T) {
	f := &schema.Field{Name: "tags", Kind: schema.KindArray, Label: "Tags"}

	res := schema.Walk(f, "tags")

	require.Len(t, res.Issues, 1)
	assert.Contains(t, res.Issues[0].Message, "no item schema")
}

func TestWalk_NilFieldIsError(t *testing.T) {
	res := schema.Walk(nil, "broken")

	require.Len(t, res.Issues, 1)
	assert.Equal(t, domain.SeverityError, res.Issues[0].Severity)
	assert.Equal(t, 0, res.Nodes)
}

func TestIsSupported(t *testing.T) {
	for _, k := range schema.SupportedKinds {
		assert.True(t, schema.IsSupported(k), string(k))
	}
	assert.False(t, schema.IsSupported("file"))
	assert.False(t, schema.IsSupported(""))
}
