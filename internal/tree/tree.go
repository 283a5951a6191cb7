// Package tree runs the render pipeline: walk the filesystem, count
// directories per depth, print tree lines and the closing report.
package tree

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ThandieOps/dirtree/internal/scanner"
	"github.com/spf13/afero"
)

// Generate walks opts.Root on fsys, writes the tree followed by the report to w
// and returns the counts. If the root cannot be opened nothing is written.
func Generate(fsys afero.Fs, opts scanner.Options, w io.Writer) (Summary, error) {
	summary := NewSummary()
	out := bufio.NewWriter(w)

	err := scanner.Walk(fsys, opts, func(e scanner.Entry) error {
		summary.Add(e)
		_, err := fmt.Fprintln(out, FormatLine(e))
		return err
	})
	if err != nil {
		return Summary{}, err
	}

	if err := WriteReport(out, summary); err != nil {
		return Summary{}, fmt.Errorf("failed to write report: %w", err)
	}
	if err := out.Flush(); err != nil {
		return Summary{}, fmt.Errorf("failed to write output: %w", err)
	}
	return summary, nil
}
