// Package wildcard resolves content-file patterns like "content/*.md"
// against repository listings. The pattern language is the platform's
// own single-star dialect: at most one "*" segment, no character
// classes, and a star never crosses a "/" boundary.
package wildcard

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/foliokit/templint/internal/domain"
)

// Has reports whether the path contains a wildcard segment.
func Has(pattern string) bool {
	return strings.Contains(pattern, "*")
}

// Split separates a wildcard pattern into its fixed directory prefix and
// the wildcard segment. For "content/*.md" it returns ("content", "*.md").
func Split(pattern string) (dir, segment string) {
	dir = path.Dir(pattern)
	if dir == "." {
		dir = ""
	}
	return dir, path.Base(pattern)
}

// Compile turns one wildcard segment into a full-match predicate. Every
// non-star character is escaped as a literal; "*" matches zero or more
// characters within the segment.
func Compile(segment string) (*regexp.Regexp, error) {
	if strings.Contains(segment, "/") {
		return nil, fmt.Errorf("wildcard segment %q must not contain a path separator", segment)
	}
	expr := "^" + strings.ReplaceAll(regexp.QuoteMeta(segment), `\*`, ".*") + "$"
	return regexp.Compile(expr)
}

// Resolve returns the file entries whose name matches the pattern's
// wildcard segment, preserving the original listing order. Directories
// never match. A pattern that fails to compile matches nothing.
func Resolve(pattern string, entries []domain.RepositoryEntry) []domain.RepositoryEntry {
	_, segment := Split(pattern)
	re, err := Compile(segment)
	if err != nil {
		return nil
	}

	var matches []domain.RepositoryEntry
	for _, e := range entries {
		if e.IsFile() && re.MatchString(e.Name) {
			matches = append(matches, e)
		}
	}
	return matches
}
