package tree

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ThandieOps/dirtree/internal/scanner"
)

const (
	indentUnit   = "    "
	branchMiddle = "├── "
	branchLast   = "└── "

	separator     = "――――――――――――――――――――――――――――"
	summaryHeader = "[Summary]"
	totalFormat   = "Total directories: %d\n"
	depthHeader   = "Directories per depth:"
	depthFormat   = "  depth %2d: %d\n"
)

// FormatLine renders one tree line for e, without the trailing newline
func FormatLine(e scanner.Entry) string {
	var b strings.Builder
	if e.Depth > 1 {
		b.WriteString(strings.Repeat(indentUnit, e.Depth-1))
	}
	if e.Last {
		b.WriteString(branchLast)
	} else {
		b.WriteString(branchMiddle)
	}
	b.WriteString(e.Name)
	return b.String()
}

// WriteReport writes the summary block that follows the tree: a blank line,
// the separator, the total and one line per depth in increasing order.
func WriteReport(w io.Writer, s Summary) error {
	out := bufio.NewWriter(w)
	fmt.Fprintln(out)
	fmt.Fprintln(out, separator)
	fmt.Fprintln(out, summaryHeader)
	fmt.Fprintf(out, totalFormat, s.Total)
	fmt.Fprintln(out, depthHeader)
	for _, depth := range s.ByDepth.Depths() {
		fmt.Fprintf(out, depthFormat, depth, s.ByDepth[depth])
	}
	return out.Flush()
}
