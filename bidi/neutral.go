package bidi

// resolveNeutral applies N0-N2, in order, to one isolating run sequence.
// runes gives access to the original code points for N0's bracket pairing;
// it is indexed the same way as seq.indices (runes[k] is the code point at
// seq.indices[k]).
//
// Ported from: UAX #9 N0-N2.
func resolveNeutral(seq *IsolatingRunSequence, runes []rune) {
	resolveN0(seq, runes)
	resolveN1(seq)
	resolveN2(seq)
}

// bracketPair is one matched (open, close) position pair within a sequence,
// as found by the BD16 stack algorithm.
type bracketPair struct {
	open, close int // indices into seq.types/seq.indices
}

// resolveN0 implements paired-bracket resolution (BD14-BD16, N0). This rule
// is listed in spec.md §9 as a known gap in the source this package was
// distilled from ("NOT IMPLEMENTED... a conformant re-implementation must
// add it"); it is implemented here since the classifier dependency already
// wired in (golang.org/x/text/unicode/bidi) exposes the bracket properties
// N0 needs at no extra cost (see SPEC_FULL.md §13).
func resolveN0(seq *IsolatingRunSequence, runes []rune) {
	pairs := findBracketPairs(seq, runes)
	embedDir := directionOf(seq.level)

	for _, p := range pairs {
		dir, ok := n0PairDirection(seq, p, embedDir)
		if !ok {
			continue
		}
		seq.types[p.open] = dir
		seq.types[p.close] = dir
		n0ResolveNSMAfter(seq, runes, p.open)
		n0ResolveNSMAfter(seq, runes, p.close)
	}
}

// findBracketPairs implements BD16: a fixed-size (63 entry) stack of open
// bracket positions, matched against closing brackets in the same
// isolating run sequence. Only positions still classed as ON (i.e. not yet
// resolved by W1-W7) can participate, matching BD14/BD15's restriction to
// characters of type ON.
func findBracketPairs(seq *IsolatingRunSequence, runes []rune) []bracketPair {
	const maxBracketStack = 63

	type stackEntry struct {
		rune rune
		pos  int
	}
	var stack []stackEntry
	var pairs []bracketPair

	for i, t := range seq.types {
		if t != ON {
			continue
		}
		isBracket, isOpening := bracketProps(runes[i])
		if !isBracket {
			continue
		}
		if isOpening {
			if len(stack) >= maxBracketStack {
				break
			}
			stack = append(stack, stackEntry{rune: runes[i], pos: i})
			continue
		}
		// Closing bracket: search the stack top-down for a canonical match.
		for k := len(stack) - 1; k >= 0; k-- {
			if bracketsMatch(stack[k].rune, runes[i]) {
				pairs = append(pairs, bracketPair{open: stack[k].pos, close: i})
				stack = stack[:k]
				break
			}
		}
	}

	sortBracketPairs(pairs)
	return pairs
}

// bracketsMatch reports whether a closing bracket canonically matches an
// open bracket. This covers the common ASCII and general-punctuation pairs;
// it is a deliberate simplification of BidiBrackets.txt's full canonical-
// equivalence table (see DESIGN.md).
func bracketsMatch(open, close rune) bool {
	want, ok := commonBracketPairs[open]
	return ok && want == close
}

var commonBracketPairs = map[rune]rune{
	'(': ')',
	'[': ']',
	'{': '}',
	'〈': '〉', // angle brackets, canonically equivalent to U+2329/U+232A
	'《': '》', // double angle brackets
	'「': '」', // corner brackets
	'『': '』', // white corner brackets
	'【': '】', // black lenticular brackets
	'⁅': '⁆', // square bracket with quill
	'（': '）', // fullwidth parens
	'［': '］', // fullwidth square brackets
	'｛': '｝', // fullwidth curly brackets
}

// sortBracketPairs orders pairs by opening position, ascending (BD16's
// final step, needed because the stack produces them out of order when
// brackets nest).
func sortBracketPairs(pairs []bracketPair) {
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && pairs[j-1].open > pairs[j].open; j-- {
			pairs[j-1], pairs[j] = pairs[j], pairs[j-1]
		}
	}
}

// n0PairDirection implements N0's classification of a bracket pair's
// content. ok is false when N0 does not apply (no strong type inside).
func n0PairDirection(seq *IsolatingRunSequence, p bracketPair, embedDir BidiClass) (dir BidiClass, ok bool) {
	sawEmbedDir := false
	sawOppositeDir := false

	for i := p.open + 1; i < p.close; i++ {
		d, strong := strongDirectionOf(seq.types[i])
		if !strong {
			continue
		}
		if d == embedDir {
			sawEmbedDir = true
		} else {
			sawOppositeDir = true
		}
	}

	switch {
	case sawEmbedDir:
		return embedDir, true
	case sawOppositeDir:
		// N0 (c): the only strong type inside is opposite the embedding
		// direction. Check the context preceding the bracket pair: if it
		// is also opposite, that establishes context and the pair takes
		// the opposite direction; otherwise the pair falls back to the
		// embedding direction.
		if preceding, strong := precedingStrongDirection(seq, p.open); strong && preceding != embedDir {
			return preceding, true
		}
		return embedDir, true
	default:
		return 0, false // no strong type inside: N0 does not apply
	}
}

// strongDirectionOf maps a (possibly already-EN/AN-resolved) type to a
// strong L/R value for N0's purposes, coercing AN/EN to R as N1 does.
func strongDirectionOf(t BidiClass) (dir BidiClass, ok bool) {
	switch t {
	case L:
		return L, true
	case R, AN, EN:
		return R, true
	default:
		return 0, false
	}
}

// precedingStrongDirection scans backward from before the opening bracket
// for the nearest strong direction, falling back to sos.
func precedingStrongDirection(seq *IsolatingRunSequence, openPos int) (dir BidiClass, ok bool) {
	for i := openPos - 1; i >= 0; i-- {
		if d, strong := strongDirectionOf(seq.types[i]); strong {
			return d, true
		}
	}
	return strongDirectionOf(seq.sos)
}

// n0ResolveNSMAfter propagates a just-resolved bracket's direction onto any
// NSM sequence immediately following it (N0's final clause). W1 has already
// rewritten those NSMs (to ON, the bracket's type at that point), so they are
// recognised by the original class of their code point.
func n0ResolveNSMAfter(seq *IsolatingRunSequence, runes []rune, pos int) {
	for i := pos + 1; i < len(seq.types) && classify(runes[i : i+1])[0] == NSM; i++ {
		seq.types[i] = seq.types[pos]
	}
}

// resolveN1 rewrites each maximal run of NI characters to L or R when the
// nearest non-BN character before and after it resolve (with AN/EN coerced
// to R) to the same strong direction. BN is invisible here exactly as it is
// in W1-W7: a BN bordering the NI run is skipped in favor of whatever
// non-BN character is next.
func resolveN1(seq *IsolatingRunSequence) {
	n := len(seq.types)
	for i := 0; i < n; {
		if !seq.types[i].isNI() {
			i++
			continue
		}
		j := i
		for j < n && seq.types[j].isNI() {
			j++
		}

		lead := precedingNonBN(seq.types, i-1, seq.sos)
		trail := followingNonBN(seq.types, j, seq.eos)
		leadDir, leadOK := coerceToStrong(lead)
		trailDir, trailOK := coerceToStrong(trail)

		if leadOK && trailOK && leadDir == trailDir {
			for k := i; k < j; k++ {
				seq.types[k] = leadDir
			}
		}
		i = j
	}
}

// coerceToStrong maps L to L, and R/AN/EN to R, per N1; any other type (a
// neutral that failed to resolve, which should not occur at this point)
// reports ok=false.
func coerceToStrong(t BidiClass) (dir BidiClass, ok bool) {
	switch t {
	case L:
		return L, true
	case R, AN, EN:
		return R, true
	default:
		return 0, false
	}
}

// resolveN2 assigns the embedding direction to any NI character N1 left
// unresolved.
func resolveN2(seq *IsolatingRunSequence) {
	embedDir := directionOf(seq.level)
	for i, t := range seq.types {
		if t.isNI() {
			seq.types[i] = embedDir
		}
	}
}
