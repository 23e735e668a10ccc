package bidi

// detectParagraphLevel implements P2/P3 over the half-open range [lo, hi) of
// the original (pre-X9) types, skipping isolated content via matchingPDI.
// It returns 1 if the first strong character found is R or AL, 0 if it is L
// or no strong character is found before hi.
//
// Ported from: UAX #9 P2/P3. Reused verbatim by the explicit-level resolver
// to settle an FSI into LRI or RLI (X5c): that call passes the range between
// the FSI and its matching PDI.
func detectParagraphLevel(types []BidiClass, matchingPDI []int, lo, hi int) int {
	for i := lo; i < hi; i++ {
		switch {
		case types[i].isIsolateInitiator():
			if m := matchingPDI[i]; m != -1 {
				i = m // skip to the matching PDI; loop's i++ lands past it
				continue
			}
		case types[i] == L:
			return 0
		case types[i] == R || types[i] == AL:
			return 1
		}
	}
	return 0
}
