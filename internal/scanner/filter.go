package scanner

import (
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// AngularExcludes are the directory names dropped by the Angular preset
var AngularExcludes = []string{".vscode", "node_modules", ".git"}

// Verdict is the outcome of evaluating a predicate against a candidate
type Verdict int

const (
	// Keep renders and counts the entry
	Keep Verdict = iota
	// Skip hides the entry but still descends into it when it is a directory
	Skip
	// Prune hides the entry and its whole subtree
	Prune
)

// Candidate is the uniform value every predicate inspects
type Candidate struct {
	Entry
	// Segments is the path relative to the walk root, one element per component
	Segments []string
	// Ignore holds the gitignore rules in scope for the candidate, or nil
	Ignore gitignore.Matcher
}

// Predicate decides whether a candidate survives
type Predicate func(Candidate) Verdict

// Chain is an ordered conjunction of predicates
type Chain []Predicate

// Evaluate runs the predicates in order and returns the first non-Keep verdict
func (c Chain) Evaluate(candidate Candidate) Verdict {
	for _, predicate := range c {
		if verdict := predicate(candidate); verdict != Keep {
			return verdict
		}
	}
	return Keep
}

// NewChain builds the predicate chain for opts. The order is fixed: hidden names,
// the Angular preset, configured ignore dirs, gitignore rules, then dirs-only.
func NewChain(opts Options) Chain {
	var chain Chain
	if !opts.ShowHidden {
		chain = append(chain, HiddenRule)
	}
	if opts.Angular {
		chain = append(chain, ExcludeDirsRule(AngularExcludes))
	}
	if len(opts.IgnoreDirs) > 0 {
		chain = append(chain, ExcludeDirsRule(opts.IgnoreDirs))
	}
	if opts.Gitignore {
		chain = append(chain, GitignoreRule)
	}
	if opts.DirsOnly {
		chain = append(chain, DirsOnlyRule)
	}
	return chain
}

// HiddenRule prunes entries whose own name starts with a dot
func HiddenRule(c Candidate) Verdict {
	if strings.HasPrefix(c.Name, ".") {
		return Prune
	}
	return Keep
}

// ExcludeDirsRule prunes directories whose name is in names. Files never match.
func ExcludeDirsRule(names []string) Predicate {
	// Create a map for faster lookups
	excluded := make(map[string]bool, len(names))
	for _, name := range names {
		excluded[name] = true
	}
	return func(c Candidate) Verdict {
		if c.IsDir() && excluded[c.Name] {
			return Prune
		}
		return Keep
	}
}

// GitignoreRule prunes entries matched by the gitignore rules in scope
func GitignoreRule(c Candidate) Verdict {
	if c.Ignore != nil && c.Ignore.Match(c.Segments, c.IsDir()) {
		return Prune
	}
	return Keep
}

// DirsOnlyRule hides everything that is not a directory
func DirsOnlyRule(c Candidate) Verdict {
	if !c.IsDir() {
		return Skip
	}
	return Keep
}
