package bidi

// Level is an embedding level: X1-X8 assign levels in [0, maxDepth], and
// I1/I2 can raise a resolved level to maxDepth+1. Even levels are
// left-to-right, odd levels are right-to-left.
type Level int

// maxDepth is the deepest embedding level UAX #9 allows explicit formatting
// characters to reach (X1). The directional-status stack is therefore
// bounded at maxDepth+2 frames: the base frame plus one push per level.
const maxDepth = 125

// directionalStatus is one frame of the X1-X8 state machine: the embedding
// level in effect, the override in force (L, R, or ON for "no override"),
// and whether this frame was pushed by an isolate initiator.
//
// Ported from: UAX #9 X1, "directional status stack".
type directionalStatus struct {
	level    Level
	override BidiClass // L, R, or ON
	isolate  bool
}

// explicitResolver runs X1-X8 over a paragraph, producing a level for every
// character and rewriting types under an active override (X6).
type explicitResolver struct {
	types        []BidiClass // mutated in place under override status
	levels       []Level
	matchingPDI  []int
	paragraphLvl Level

	stack             []directionalStatus
	overflowIsolate   int
	overflowEmbedding int
	validIsolate      int
}

// resolveExplicit implements X1-X8 and returns the per-character levels.
// types is mutated in place: characters under an active override (X6) have
// their class rewritten to that override's direction.
//
// Ported from: UAX #9 X1-X8.
func resolveExplicit(types []BidiClass, matchingPDI []int, paragraphLevel Level) []Level {
	r := &explicitResolver{
		types:        types,
		levels:       make([]Level, len(types)),
		matchingPDI:  matchingPDI,
		paragraphLvl: paragraphLevel,
		stack:        make([]directionalStatus, 1, maxDepth+2),
	}
	r.stack[0] = directionalStatus{level: paragraphLevel, override: ON, isolate: false}

	for i := 0; i < len(types); i++ {
		r.step(i)
	}
	return r.levels
}

func (r *explicitResolver) top() directionalStatus {
	return r.stack[len(r.stack)-1]
}

func (r *explicitResolver) push(level Level, override BidiClass, isolate bool) {
	r.stack = append(r.stack, directionalStatus{level: level, override: override, isolate: isolate})
}

func (r *explicitResolver) pop() {
	r.stack = r.stack[:len(r.stack)-1]
}

// leastGreaterOdd/leastGreaterEven: the smallest level strictly greater than
// base that has the requested parity (X2-X5).
func leastGreaterOdd(base Level) Level {
	if base%2 == 0 {
		return base + 1
	}
	return base + 2
}

func leastGreaterEven(base Level) Level {
	if base%2 == 0 {
		return base + 2
	}
	return base + 1
}

func (r *explicitResolver) step(i int) {
	t := r.types[i]

	switch t {
	case RLE, LRE, RLO, LRO, RLI, LRI, FSI:
		r.explicitFormatOrIsolate(i, t)
	case PDI:
		r.pdi(i)
	case PDF:
		r.pdf(i)
	case B:
		r.paragraphSeparator(i)
	default:
		r.other(i)
	}
}

// explicitFormatOrIsolate handles X2-X5c: RLE, LRE, RLO, LRO, RLI, LRI, FSI.
func (r *explicitResolver) explicitFormatOrIsolate(i int, t BidiClass) {
	isIsolate := t == RLI || t == LRI || t == FSI

	// Every embedding/override/isolate initiator takes the level of the
	// run it sits in, before any push this character causes (X2-X5c: "the
	// given level" for the character itself comes from the stack as found,
	// not the level it pushes).
	r.levels[i] = r.top().level

	if t == FSI {
		// X5c: resolve FSI to RLI or LRI using P2/P3 over the isolated
		// content, then proceed as if it were that control.
		hi := r.matchingPDI[i]
		if hi == -1 || hi > len(r.types) {
			hi = len(r.types)
		}
		if detectParagraphLevel(r.types, r.matchingPDI, i+1, hi) == 1 {
			t = RLI
		} else {
			t = LRI
		}
	}

	var newLevel Level
	var override BidiClass
	switch t {
	case RLE:
		newLevel, override = leastGreaterOdd(r.top().level), ON
	case LRE:
		newLevel, override = leastGreaterEven(r.top().level), ON
	case RLO:
		newLevel, override = leastGreaterOdd(r.top().level), R
	case LRO:
		newLevel, override = leastGreaterEven(r.top().level), L
	case RLI:
		newLevel, override = leastGreaterOdd(r.top().level), ON
	case LRI:
		newLevel, override = leastGreaterEven(r.top().level), ON
	}

	if newLevel <= maxDepth && r.overflowIsolate == 0 && r.overflowEmbedding == 0 {
		r.push(newLevel, override, isIsolate)
		if isIsolate {
			r.validIsolate++
		}
		return
	}

	// Overflow (X5a/X5b/X5c last bullet, X2-X5 last bullet).
	if isIsolate {
		if r.overflowIsolate == 0 {
			r.overflowIsolate++
		}
	} else {
		if r.overflowIsolate == 0 {
			r.overflowEmbedding++
		}
	}
}

// pdi implements X6a.
func (r *explicitResolver) pdi(i int) {
	switch {
	case r.overflowIsolate > 0:
		r.overflowIsolate--
	case r.validIsolate == 0:
		// no matching isolate initiator: do nothing to the stack
	default:
		r.overflowEmbedding = 0
		for !r.top().isolate {
			r.pop()
		}
		r.pop()
		r.validIsolate--
	}
	r.levels[i] = r.top().level
}

// pdf implements X7. Like PDI (X6a), PDF itself takes the level in effect
// after whatever pop it triggers, not the level it closes.
func (r *explicitResolver) pdf(i int) {
	switch {
	case r.overflowIsolate > 0:
		// do nothing
	case r.overflowEmbedding > 0:
		r.overflowEmbedding--
	case !r.top().isolate && len(r.stack) > 1:
		r.pop()
	}
	r.levels[i] = r.top().level
}

// paragraphSeparator implements X8: B resets all state and takes the
// paragraph level. The standard paragraph-terminating B never actually
// reaches here since callers split paragraphs at B (spec.md §6), but an
// embedded B (e.g. mid-line separator) is handled per the rule.
func (r *explicitResolver) paragraphSeparator(i int) {
	r.stack = r.stack[:1]
	r.stack[0] = directionalStatus{level: r.paragraphLvl, override: ON, isolate: false}
	r.overflowIsolate = 0
	r.overflowEmbedding = 0
	r.validIsolate = 0
	r.levels[i] = r.paragraphLvl
}

// other implements X6: every class not otherwise handled above.
func (r *explicitResolver) other(i int) {
	top := r.top()
	r.levels[i] = top.level
	if top.override != ON {
		r.types[i] = top.override
	}
}
