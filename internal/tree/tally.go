package tree

import (
	"sort"

	"github.com/ThandieOps/dirtree/internal/scanner"
)

// DepthCounts maps a depth to the number of directories rendered at it
type DepthCounts map[int]int

// Depths returns the recorded depths in increasing order
func (d DepthCounts) Depths() []int {
	depths := make([]int, 0, len(d))
	for depth := range d {
		depths = append(depths, depth)
	}
	sort.Ints(depths)
	return depths
}

// Summary aggregates directory counts for one run
type Summary struct {
	Total   int         `json:"total"`
	ByDepth DepthCounts `json:"by_depth"`
}

// NewSummary returns an empty summary ready for Add
func NewSummary() Summary {
	return Summary{ByDepth: DepthCounts{}}
}

// Add records e when it is a directory; other entries are ignored
func (s *Summary) Add(e scanner.Entry) {
	if !e.IsDir() {
		return
	}
	if s.ByDepth == nil {
		s.ByDepth = DepthCounts{}
	}
	s.Total++
	s.ByDepth[e.Depth]++
}
