package bidi

// computeVisualOrder implements L2 for a single line: find the maximum
// level H and the minimum odd level present, then for each level from H
// down to that minimum, reverse every maximal sub-slice whose (fixed,
// original) levels are all >= that level. The result is a permutation of
// [0, len(levels)) giving the visual order of the line's local positions.
//
// Ported from: UAX #9 L2.
func computeVisualOrder(levels []Level) []int {
	n := len(levels)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if n == 0 {
		return order
	}

	maxLevel := levels[0]
	minOdd := Level(-1)
	for _, l := range levels {
		if l > maxLevel {
			maxLevel = l
		}
		if l%2 == 1 && (minOdd == -1 || l < minOdd) {
			minOdd = l
		}
	}
	if minOdd == -1 {
		return order // no odd level present: nothing to reverse
	}

	for lvl := maxLevel; lvl >= minOdd; lvl-- {
		for i := 0; i < n; {
			if levels[i] < lvl {
				i++
				continue
			}
			j := i
			for j < n && levels[j] >= lvl {
				j++
			}
			reverseInts(order[i:j])
			i = j
		}
	}
	return order
}

func reverseInts(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}

// lineRange is one caller-supplied line, as a half-open range of original
// logical positions.
type lineRange struct {
	start, end int
}

// splitLines turns the caller-supplied, ordered, exclusive line-end
// positions into contiguous [start, end) ranges covering [0, n). An empty
// lineBreaks means a single line spanning the whole paragraph (spec.md §6).
func splitLines(n int, lineBreaks []int) []lineRange {
	if len(lineBreaks) == 0 {
		return []lineRange{{0, n}}
	}
	ranges := make([]lineRange, 0, len(lineBreaks)+1)
	start := 0
	for _, end := range lineBreaks {
		ranges = append(ranges, lineRange{start, end})
		start = end
	}
	if start < n {
		ranges = append(ranges, lineRange{start, n})
	}
	return ranges
}

// levelsForLine copies levels[start:end] into a freshly sized buffer. A
// prior version of this copy (spec.md §9) reused a destination-offset copy
// into a shared backing array sized for the whole paragraph, which is
// incorrect for per-line slicing; each line gets its own buffer here.
func levelsForLine(levels []Level, start, end int) []Level {
	out := make([]Level, end-start)
	copy(out, levels[start:end])
	return out
}

// reorderParagraph implements L2 across every caller-supplied line and
// concatenates the per-line visual permutations in line order, producing a
// single permutation of [0, len(levels)) over the whole paragraph.
func reorderParagraph(levels []Level, lineBreaks []int) []int {
	n := len(levels)
	ranges := splitLines(n, lineBreaks)

	result := make([]int, 0, n)
	for _, lr := range ranges {
		lineLevels := levelsForLine(levels, lr.start, lr.end)
		order := computeVisualOrder(lineLevels)
		for _, localIdx := range order {
			result = append(result, lr.start+localIdx)
		}
	}
	return result
}
