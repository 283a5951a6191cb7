package scanner

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ThandieOps/dirtree/internal/logger"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/spf13/afero"
)

// ErrNotDirectory is returned when the walk root exists but is not a directory
var ErrNotDirectory = errors.New("not a directory")

// EntryType tags a visited filesystem node
type EntryType int

const (
	TypeFile EntryType = iota
	TypeDirectory
	TypeOther
)

func (t EntryType) String() string {
	switch t {
	case TypeDirectory:
		return "directory"
	case TypeFile:
		return "file"
	default:
		return "other"
	}
}

// Options holds the traversal settings for a single walk.
// It is built once from flags and config and never mutated afterwards.
type Options struct {
	Root       string   `json:"root"`
	ShowHidden bool     `json:"show_hidden"`
	DirsOnly   bool     `json:"dirs_only"`
	Angular    bool     `json:"angular"`
	Gitignore  bool     `json:"gitignore"`
	IgnoreDirs []string `json:"ignore_dirs,omitempty"`
}

// Entry is a filesystem node retained by the walk.
// Depth counts path segments below the root, so direct children are depth 1.
type Entry struct {
	Path  string
	Name  string
	Type  EntryType
	Depth int
	// Last reports whether the entry is the final retained child of its parent
	Last bool
}

// IsDir reports whether the entry is a directory
func (e Entry) IsDir() bool {
	return e.Type == TypeDirectory
}

// VisitFunc receives retained entries in depth-first, parent-first order.
// Returning an error stops the walk.
type VisitFunc func(Entry) error

// pending is a node waiting on the walk stack
type pending struct {
	entry    Entry
	segments []string
	emit     bool
	// patterns are the gitignore rules in scope for this node's children
	patterns []gitignore.Pattern
}

type walker struct {
	fs    afero.Fs
	opts  Options
	chain Chain
}

// Walk traverses the tree under opts.Root and calls visit for every entry that
// passes the filter chain. Unreadable descendants are skipped; only a missing or
// non-directory root is reported as an error, and that happens before any visit.
func Walk(fsys afero.Fs, opts Options, visit VisitFunc) error {
	root := filepath.Clean(opts.Root)
	info, err := fsys.Stat(root)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", root, ErrNotDirectory)
	}

	w := &walker{
		fs:    fsys,
		opts:  opts,
		chain: NewChain(opts),
	}

	stack := w.children(pending{
		entry: Entry{Path: root, Name: info.Name(), Type: TypeDirectory},
	})
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if next.emit {
			if err := visit(next.entry); err != nil {
				return err
			}
		}
		if next.entry.IsDir() {
			stack = append(stack, w.children(next)...)
		}
	}
	return nil
}

// children lists parent once, filters the listing and returns the surviving
// nodes in reverse order so the caller can pop them first-to-last.
func (w *walker) children(parent pending) []pending {
	infos, err := afero.ReadDir(w.fs, parent.entry.Path)
	if err != nil {
		logger.Debug("skipping unreadable directory", "path", parent.entry.Path, "error", err)
		return nil
	}

	patterns := parent.patterns
	if w.opts.Gitignore {
		local, err := readIgnoreFile(w.fs, parent.entry.Path, parent.segments)
		if err != nil {
			logger.Debug("skipping unreadable .gitignore", "dir", parent.entry.Path, "error", err)
		}
		if len(local) > 0 {
			patterns = append(append([]gitignore.Pattern{}, patterns...), local...)
		}
	}
	var matcher gitignore.Matcher
	if len(patterns) > 0 {
		matcher = gitignore.NewMatcher(patterns)
	}

	var kept []pending
	lastEmitted := -1
	for _, info := range infos {
		segments := append(append([]string{}, parent.segments...), info.Name())
		candidate := Candidate{
			Entry: Entry{
				Path:  filepath.Join(parent.entry.Path, info.Name()),
				Name:  info.Name(),
				Type:  typeOf(info),
				Depth: parent.entry.Depth + 1,
			},
			Segments: segments,
			Ignore:   matcher,
		}

		verdict := w.chain.Evaluate(candidate)
		if verdict == Prune {
			continue
		}
		if verdict == Keep {
			lastEmitted = len(kept)
		}
		kept = append(kept, pending{
			entry:    candidate.Entry,
			segments: segments,
			emit:     verdict == Keep,
			patterns: patterns,
		})
	}
	if lastEmitted >= 0 {
		kept[lastEmitted].entry.Last = true
	}

	for i, j := 0, len(kept)-1; i < j; i, j = i+1, j-1 {
		kept[i], kept[j] = kept[j], kept[i]
	}
	return kept
}

// typeOf maps file info to an entry type. Symlinks are reported as other
// and are never followed.
func typeOf(info os.FileInfo) EntryType {
	mode := info.Mode()
	switch {
	case mode.IsDir():
		return TypeDirectory
	case mode.IsRegular():
		return TypeFile
	default:
		return TypeOther
	}
}
