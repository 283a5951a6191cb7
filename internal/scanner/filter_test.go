package scanner

import (
	"testing"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

func candidate(name string, typ EntryType) Candidate {
	return Candidate{
		Entry:    Entry{Path: "/root/" + name, Name: name, Type: typ, Depth: 1},
		Segments: []string{name},
	}
}

func TestHiddenRule(t *testing.T) {
	tests := []struct {
		name string
		want Verdict
	}{
		{".git", Prune},
		{".env", Prune},
		{"src", Keep},
		{"file.txt", Keep},
		{"dot.inside", Keep},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HiddenRule(candidate(tt.name, TypeDirectory)); got != tt.want {
				t.Errorf("HiddenRule(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestExcludeDirsRule(t *testing.T) {
	rule := ExcludeDirsRule(AngularExcludes)
	tests := []struct {
		name string
		typ  EntryType
		want Verdict
	}{
		{".git", TypeDirectory, Prune},
		{"node_modules", TypeDirectory, Prune},
		{".vscode", TypeDirectory, Prune},
		{".vscode", TypeFile, Keep},
		{"node_modules", TypeOther, Keep},
		{"node_modules2", TypeDirectory, Keep},
		{"src", TypeDirectory, Keep},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.typ.String(), func(t *testing.T) {
			if got := rule(candidate(tt.name, tt.typ)); got != tt.want {
				t.Errorf("rule(%q, %v) = %v, want %v", tt.name, tt.typ, got, tt.want)
			}
		})
	}
}

func TestDirsOnlyRule(t *testing.T) {
	tests := []struct {
		typ  EntryType
		want Verdict
	}{
		{TypeDirectory, Keep},
		{TypeFile, Skip},
		{TypeOther, Skip},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			if got := DirsOnlyRule(candidate("x", tt.typ)); got != tt.want {
				t.Errorf("DirsOnlyRule(%v) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}

func TestGitignoreRule(t *testing.T) {
	matcher := gitignore.NewMatcher([]gitignore.Pattern{
		gitignore.ParsePattern("dist/", nil),
		gitignore.ParsePattern("*.tmp", nil),
	})

	tests := []struct {
		name string
		typ  EntryType
		want Verdict
	}{
		{"dist", TypeDirectory, Prune},
		{"dist", TypeFile, Keep},
		{"scratch.tmp", TypeFile, Prune},
		{"main.go", TypeFile, Keep},
	}

	for _, tt := range tests {
		t.Run(tt.name+"/"+tt.typ.String(), func(t *testing.T) {
			c := candidate(tt.name, tt.typ)
			c.Ignore = matcher
			if got := GitignoreRule(c); got != tt.want {
				t.Errorf("GitignoreRule(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}

	if got := GitignoreRule(candidate("scratch.tmp", TypeFile)); got != Keep {
		t.Errorf("GitignoreRule without matcher = %v, want Keep", got)
	}
}

func TestChainShortCircuitsInOrder(t *testing.T) {
	var calls []string
	record := func(name string, v Verdict) Predicate {
		return func(Candidate) Verdict {
			calls = append(calls, name)
			return v
		}
	}

	chain := Chain{record("first", Keep), record("second", Prune), record("third", Skip)}
	if got := chain.Evaluate(candidate("x", TypeFile)); got != Prune {
		t.Errorf("Evaluate() = %v, want Prune", got)
	}
	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("calls = %v, want [first second]", calls)
	}

	if got := (Chain{}).Evaluate(candidate("x", TypeFile)); got != Keep {
		t.Errorf("empty chain = %v, want Keep", got)
	}
}

func TestNewChain(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		c    Candidate
		want Verdict
		size int
	}{
		{"defaults hide dot files", Options{}, candidate(".env", TypeFile), Prune, 1},
		{"show hidden keeps dot files", Options{ShowHidden: true}, candidate(".env", TypeFile), Keep, 0},
		{"hidden rule runs before dirs-only", Options{DirsOnly: true}, candidate(".env", TypeFile), Prune, 2},
		{"dirs-only skips files", Options{ShowHidden: true, DirsOnly: true}, candidate("a.txt", TypeFile), Skip, 1},
		{"angular prunes git dir", Options{ShowHidden: true, Angular: true}, candidate(".git", TypeDirectory), Prune, 1},
		{"ignore dirs", Options{IgnoreDirs: []string{"vendor"}}, candidate("vendor", TypeDirectory), Prune, 2},
		{"all rules", Options{Angular: true, Gitignore: true, DirsOnly: true, IgnoreDirs: []string{"x"}}, candidate("src", TypeDirectory), Keep, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewChain(tt.opts)
			if len(chain) != tt.size {
				t.Errorf("len(chain) = %d, want %d", len(chain), tt.size)
			}
			if got := chain.Evaluate(tt.c); got != tt.want {
				t.Errorf("Evaluate(%q) = %v, want %v", tt.c.Name, got, tt.want)
			}
		})
	}
}
