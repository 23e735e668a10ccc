// Package bidi implements the Unicode Bidirectional Algorithm (UAX #9,
// revision 28): it takes a paragraph of text in logical (memory) order and
// produces the permutation required to display it in visual (left-to-right
// glyph layout) order, honoring explicit embedding/override/isolate controls
// and the weak, neutral and implicit resolution rules.
//
// Ported from: UAX #9 (https://www.unicode.org/reports/tr9/), following the
// staged pipeline described in the design document for this module.
package bidi

import "golang.org/x/text/unicode/bidi"

// BidiClass is one of the 23 Unicode-defined bidirectional character
// categories. Every code point carries exactly one class at classification
// time; resolution rules rewrite it in place as the algorithm proceeds.
type BidiClass uint8

const (
	L   BidiClass = iota // LeftToRight
	LRE                  // LeftToRightEmbedding
	LRO                  // LeftToRightOverride
	R                    // RightToLeft
	AL                   // ArabicLetter
	RLE                  // RightToLeftEmbedding
	RLO                  // RightToLeftOverride
	PDF                  // PopDirectionalFormat
	EN                   // EuropeanNumber
	ES                   // EuropeanSeparator
	ET                   // EuropeanTerminator
	AN                   // ArabicNumber
	CS                   // CommonSeparator
	NSM                  // NonspacingMark
	BN                   // BoundaryNeutral
	B                    // ParagraphSeparator
	S                    // SegmentSeparator
	WS                   // WhiteSpace
	ON                   // OtherNeutral
	LRI                  // LeftToRightIsolate
	RLI                  // RightToLeftIsolate
	FSI                  // FirstStrongIsolate
	PDI                  // PopDirectionalIsolate
)

var classNames = [...]string{
	L: "L", LRE: "LRE", LRO: "LRO", R: "R", AL: "AL", RLE: "RLE", RLO: "RLO",
	PDF: "PDF", EN: "EN", ES: "ES", ET: "ET", AN: "AN", CS: "CS", NSM: "NSM",
	BN: "BN", B: "B", S: "S", WS: "WS", ON: "ON", LRI: "LRI", RLI: "RLI",
	FSI: "FSI", PDI: "PDI",
}

func (c BidiClass) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "?"
}

// isStrong reports whether c is one of the three strong classes (P2/P3,
// W2/W7 backward scans).
func (c BidiClass) isStrong() bool {
	return c == L || c == R || c == AL
}

// isIsolateInitiator reports whether c opens an isolate (BD8).
func (c BidiClass) isIsolateInitiator() bool {
	return c == LRI || c == RLI || c == FSI
}

// isNI reports whether c is a neutral-or-isolate class, subject to N1/N2.
func (c BidiClass) isNI() bool {
	switch c {
	case B, S, WS, ON, LRI, RLI, FSI, PDI:
		return true
	}
	return false
}

// fromUnicodeBidi translates golang.org/x/text/unicode/bidi's Class into
// this package's closed BidiClass enum. golang.org/x/text/unicode/bidi is
// used strictly as classifier data (its generated trie covers the full UCD
// repertoire); none of its own paragraph/run resolution logic is used here.
func fromUnicodeBidi(c bidi.Class) BidiClass {
	switch c {
	case bidi.L:
		return L
	case bidi.R:
		return R
	case bidi.EN:
		return EN
	case bidi.ES:
		return ES
	case bidi.ET:
		return ET
	case bidi.AN:
		return AN
	case bidi.CS:
		return CS
	case bidi.B:
		return B
	case bidi.S:
		return S
	case bidi.WS:
		return WS
	case bidi.ON:
		return ON
	case bidi.BN:
		return BN
	case bidi.NSM:
		return NSM
	case bidi.AL:
		return AL
	case bidi.LRO:
		return LRO
	case bidi.RLO:
		return RLO
	case bidi.LRE:
		return LRE
	case bidi.RLE:
		return RLE
	case bidi.PDF:
		return PDF
	case bidi.LRI:
		return LRI
	case bidi.RLI:
		return RLI
	case bidi.FSI:
		return FSI
	case bidi.PDI:
		return PDI
	default:
		// A class outside the 23 handled above falls back to Other Neutral
		// rather than failing (spec: classifier table miss is not an error).
		// Every class the table assigns, unassigned code points included,
		// is one of those 23, so this branch is defensive.
		return ON
	}
}

// classify maps a sequence of runes to their bidi classes (spec.md §4.1).
// The table lookup itself is provided data sourced from
// golang.org/x/text/unicode/bidi; this function is the only place that
// dependency is consulted.
func classify(runes []rune) []BidiClass {
	types := make([]BidiClass, len(runes))
	for i, r := range runes {
		props, _ := bidi.LookupRune(r)
		types[i] = fromUnicodeBidi(props.Class())
	}
	return types
}

// bracketProps reports whether r is a bracket and, if so, whether it opens
// (true) or closes (false) a pair. Used by N0 (neutral.go). Backed by the
// same classifier dependency as classify.
func bracketProps(r rune) (isBracket, isOpening bool) {
	props, _ := bidi.LookupRune(r)
	return props.IsBracket(), props.IsOpeningBracket()
}
