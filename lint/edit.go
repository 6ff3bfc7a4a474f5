package lint

import (
	"fmt"
	"sort"
)

// TextEdit represents a single text replacement in a file.
type TextEdit struct {
	// Start is the byte index where the edit begins (inclusive).
	Start int
	// End is the byte index where the edit ends (exclusive).
	// Start == End is a pure insertion.
	End int
	// NewText is the replacement text.
	NewText string
}

// ApplyEdits applies a set of non-overlapping edits to src and returns the
// rewritten source. Edits are applied in a single pass so the paired
// insertions produced by fixable rules land together or not at all.
func ApplyEdits(src []byte, edits []TextEdit) ([]byte, error) {
	sorted := make([]TextEdit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].End < sorted[j].End
	})

	for i, e := range sorted {
		if e.Start < 0 || e.End < e.Start || e.End > len(src) {
			return nil, fmt.Errorf("edit out of range: [%d,%d) in %d bytes", e.Start, e.End, len(src))
		}
		if i > 0 && e.Start < sorted[i-1].End {
			return nil, fmt.Errorf("overlapping edits at offset %d", e.Start)
		}
	}

	var out []byte
	last := 0
	for _, e := range sorted {
		out = append(out, src[last:e.Start]...)
		out = append(out, e.NewText...)
		last = e.End
	}
	out = append(out, src[last:]...)
	return out, nil
}
