package scanner

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
	"github.com/spf13/afero"
)

const (
	gitignoreFileName = ".gitignore"
	commentPrefix     = "#"
)

// readIgnoreFile parses dir/.gitignore into patterns scoped to domain, the
// directory's path relative to the walk root. A missing file yields no patterns.
func readIgnoreFile(fsys afero.Fs, dir string, domain []string) ([]gitignore.Pattern, error) {
	data, err := afero.ReadFile(fsys, filepath.Join(dir, gitignoreFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var patterns []gitignore.Pattern
	lines := bufio.NewScanner(bytes.NewReader(data))
	for lines.Scan() {
		line := strings.TrimSuffix(lines.Text(), "\r")
		if strings.HasPrefix(line, commentPrefix) || strings.TrimSpace(line) == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, domain))
	}
	return patterns, lines.Err()
}
