package bidi

// ParagraphDirection names the resolved base direction of a paragraph.
type ParagraphDirection int

const (
	// DirectionLTR is paragraph level 0.
	DirectionLTR ParagraphDirection = iota
	// DirectionRTL is paragraph level 1.
	DirectionRTL
)

// Paragraph holds the fully-resolved bidi state for one paragraph: the
// per-character embedding levels after I1/I2, and the paragraph level
// picked by P2/P3. All of its arrays are owned by this value and are never
// shared with another Paragraph (spec.md §3, "Lifetime").
//
// Ported from: the staged pipeline in spec.md §2; this is the structure
// that stages 1-7 populate and stages 8-10 consume.
type Paragraph struct {
	runes          []rune
	origTypes      []BidiClass // classifier output, untouched by any rule
	levels         []Level     // post I1/I2, pre-L1
	paragraphLevel Level
}

// NewParagraph runs stages 1-7 of the pipeline (classification through
// I1/I2) over text and returns the resolved paragraph. The function is
// total: every input, including the empty string, produces a valid
// Paragraph.
func NewParagraph(text string) *Paragraph {
	runes := []rune(text)
	origTypes := classify(runes)
	types := append([]BidiClass(nil), origTypes...)

	matchingPDI, matchingInitiator := matchIsolates(types)
	paragraphLevel := Level(detectParagraphLevel(types, matchingPDI, 0, len(types)))

	levels := resolveExplicit(types, matchingPDI, paragraphLevel)
	neutralizeFormattingCodes(types)

	sequences := buildIsolatingRunSequences(types, levels, matchingPDI, matchingInitiator, paragraphLevel)
	for _, seq := range sequences {
		seqRunes := make([]rune, len(seq.indices))
		for k, idx := range seq.indices {
			seqRunes[k] = runes[idx]
		}

		resolveWeak(seq)
		resolveNeutral(seq, seqRunes)
		resolveImplicit(seq)

		for k, idx := range seq.indices {
			types[idx] = seq.types[k]
			levels[idx] = seq.resolvedLevels[k]
		}
	}

	return &Paragraph{
		runes:          runes,
		origTypes:      origTypes,
		levels:         levels,
		paragraphLevel: paragraphLevel,
	}
}

// Len returns the number of runes in the paragraph.
func (p *Paragraph) Len() int { return len(p.runes) }

// Direction reports the resolved base direction (P2/P3).
func (p *Paragraph) Direction() ParagraphDirection {
	if p.paragraphLevel == 1 {
		return DirectionRTL
	}
	return DirectionLTR
}

// ParagraphLevel returns 0 or 1, the base level picked by P2/P3.
func (p *Paragraph) ParagraphLevel() Level { return p.paragraphLevel }

// Levels returns the per-character embedding level after I1/I2, before L1's
// line-boundary adjustments. The returned slice is owned by the caller.
func (p *Paragraph) Levels() []Level {
	out := make([]Level, len(p.levels))
	copy(out, p.levels)
	return out
}

// Order computes the visual-order permutation of rune indices for the given
// line breaks (stages 8-9, L1 then L2). lineBreaks is an ordered sequence
// of exclusive line-end positions; nil or empty means a single line
// spanning the whole paragraph. Order returns ErrInvalidLineBreaks if
// lineBreaks is not strictly increasing or contains a position outside
// (0, p.Len()].
func (p *Paragraph) Order(lineBreaks []int) ([]int, error) {
	if err := validateLineBreaks(lineBreaks, len(p.runes)); err != nil {
		return nil, err
	}

	levels := make([]Level, len(p.levels))
	copy(levels, p.levels)
	resolveLineLevels(p.origTypes, levels, p.paragraphLevel, lineBreaks)

	return reorderParagraph(levels, lineBreaks), nil
}

// Reorder runs the full pipeline through the projector (stage 10) and
// returns the visual-order string for the given line breaks.
func (p *Paragraph) Reorder(lineBreaks []int) (string, error) {
	order, err := p.Order(lineBreaks)
	if err != nil {
		return "", err
	}
	out := make([]rune, len(order))
	for i, idx := range order {
		out[i] = p.runes[idx]
	}
	return string(out), nil
}

// Reorder is the package's primary operation (spec.md §6): it transforms
// text, a single paragraph in logical order, into its visual-order string
// given an optional set of line breaks. A nil or empty lineBreaks treats
// the whole paragraph as one line.
func Reorder(text string, lineBreaks []int) (string, error) {
	return NewParagraph(text).Reorder(lineBreaks)
}
