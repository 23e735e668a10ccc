package bidi

// isTrailingWhitespaceLike reports whether t is one of the classes L1's
// trailing-run scan absorbs: WS, FSI, LRI, RLI, PDI. A prior version of
// this scan (spec.md §9) tested FSI twice instead of including PDI; the
// full five-member set is checked here.
func isTrailingWhitespaceLike(t BidiClass) bool {
	switch t {
	case WS, FSI, LRI, RLI, PDI:
		return true
	}
	return false
}

// resolveLineLevels implements L1. origTypes are the classes assigned by
// the classifier before any resolution rule touched them (not the
// post-W/N, not even the post-X6-override, types); levels is mutated in
// place. lineBreaks are the caller-supplied exclusive line-end positions
// (spec.md §6); the end of the paragraph is always treated as an implicit
// final line end for the trailing-run scan.
//
// Ported from: UAX #9 L1.
func resolveLineLevels(origTypes []BidiClass, levels []Level, paragraphLevel Level, lineBreaks []int) {
	n := len(origTypes)

	for i := 0; i < n; i++ {
		if origTypes[i] != S && origTypes[i] != B {
			continue
		}
		levels[i] = paragraphLevel
		for j := i - 1; j >= 0 && isTrailingWhitespaceLike(origTypes[j]); j-- {
			levels[j] = paragraphLevel
		}
	}

	ends := lineBreaks
	if len(ends) == 0 || ends[len(ends)-1] != n {
		ends = append(append([]int(nil), lineBreaks...), n)
	}
	for _, end := range ends {
		for j := end - 1; j >= 0 && j < n && isTrailingWhitespaceLike(origTypes[j]); j-- {
			levels[j] = paragraphLevel
		}
	}
}
