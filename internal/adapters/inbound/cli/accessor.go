package cli

import (
	"fmt"

	"github.com/foliokit/templint/internal/adapters/outbound/repocache"
	"github.com/foliokit/templint/internal/adapters/outbound/repofs"
	"github.com/foliokit/templint/internal/adapters/outbound/repogit"
	"github.com/foliokit/templint/internal/domain"
)

// newAccessor builds the repository accessor for a command invocation.
// With --rev the committed snapshot is read through git; otherwise the
// working tree is read directly. The memoizing decorator wraps either
// unless caching was switched off.
func newAccessor(absPath, rev string, noCache bool) (domain.RepositoryAccessor, error) {
	var accessor domain.RepositoryAccessor

	if rev != "" {
		acc, err := repogit.Open(absPath)
		if err != nil {
			return nil, fmt.Errorf("--rev requires a git repository: %w", err)
		}
		accessor = acc
	} else {
		acc, err := repofs.New(absPath)
		if err != nil {
			return nil, err
		}
		accessor = acc
	}

	if noCache {
		return accessor, nil
	}
	return repocache.Wrap(accessor), nil
}

// stampCommit attaches the validated commit hash to a --rev report.
// Working-tree runs stay unstamped: the tree may hold changes no commit
// contains. Best-effort: a bare directory simply goes unstamped.
func stampCommit(report *domain.CompatibilityReport, absPath, rev string) {
	if rev == "" {
		return
	}
	acc, err := repogit.Open(absPath)
	if err != nil {
		return
	}
	if hash, err := acc.CommitHash(rev); err == nil {
		report.CommitHash = hash
	}
}
