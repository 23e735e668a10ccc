package bidi

// resolveWeak applies W1-W7, in order, to one isolating run sequence. It
// mutates seq.types and uses seq.sos/seq.eos as the boundary pseudo-types.
//
// Ported from: UAX #9 W1-W7.
func resolveWeak(seq *IsolatingRunSequence) {
	w1(seq)
	w2(seq)
	w3(seq)
	w4(seq)
	w5(seq)
	w6(seq)
	w7(seq)
}

// w1: NSM takes the type of the preceding character (sos at position 0). If
// that type is an isolate initiator or PDI, the NSM becomes ON instead. BN
// is invisible here (X9): a run of BN before an NSM is skipped, so "prev"
// only ever advances past a non-BN resolution.
func w1(seq *IsolatingRunSequence) {
	prev := seq.sos
	for i, t := range seq.types {
		if t == BN {
			continue
		}
		if t == NSM {
			if prev.isIsolateInitiator() || prev == PDI {
				seq.types[i] = ON
			} else {
				seq.types[i] = prev
			}
		}
		prev = seq.types[i]
	}
}

// precedingNonBN scans backward from start (inclusive) for the first
// non-BN type, falling back to sos if every position up to the start of
// the sequence is BN. BN is invisible (X9) to every rule that looks at a
// "preceding character", not just W1's NSM rule.
func precedingNonBN(types []BidiClass, start int, sos BidiClass) BidiClass {
	for k := start; k >= 0; k-- {
		if types[k] != BN {
			return types[k]
		}
	}
	return sos
}

// followingNonBN scans forward from start (inclusive) for the first
// non-BN type, falling back to eos if every remaining position is BN.
func followingNonBN(types []BidiClass, start int, eos BidiClass) BidiClass {
	for k := start; k < len(types); k++ {
		if types[k] != BN {
			return types[k]
		}
	}
	return eos
}

// w2: EN becomes AN when the nearest preceding strong type is AL.
func w2(seq *IsolatingRunSequence) {
	lastStrong := seq.sos
	for i, t := range seq.types {
		switch t {
		case L, R, AL:
			lastStrong = t
		case EN:
			if lastStrong == AL {
				seq.types[i] = AN
			}
		}
	}
}

// w3: every AL becomes R.
func w3(seq *IsolatingRunSequence) {
	for i, t := range seq.types {
		if t == AL {
			seq.types[i] = R
		}
	}
}

// w4: a single ES between two ENs becomes EN; a single CS between two ENs,
// or between two ANs, becomes that type. The neighbors on either side are
// the nearest non-BN types, since an intervening BN (e.g. a collapsed
// LRE/PDF pair) is invisible rather than a character in its own right.
func w4(seq *IsolatingRunSequence) {
	for i, t := range seq.types {
		if t != ES && t != CS {
			continue
		}
		before := precedingNonBN(seq.types, i-1, seq.sos)
		after := followingNonBN(seq.types, i+1, seq.eos)
		if t == ES && before == EN && after == EN {
			seq.types[i] = EN
		} else if t == CS && before == after && (before == EN || before == AN) {
			seq.types[i] = before
		}
	}
}

// w5: a maximal run of ET adjacent (on either side) to an EN becomes EN.
// "Adjacent" is measured past any intervening BN, same as w4.
func w5(seq *IsolatingRunSequence) {
	n := len(seq.types)
	for i := 0; i < n; {
		if seq.types[i] != ET {
			i++
			continue
		}
		j := i
		for j < n && seq.types[j] == ET {
			j++
		}
		before := precedingNonBN(seq.types, i-1, seq.sos)
		after := followingNonBN(seq.types, j, seq.eos)
		if before == EN || after == EN {
			for k := i; k < j; k++ {
				seq.types[k] = EN
			}
		}
		i = j
	}
}

// w6: any remaining ES, ET or CS becomes ON.
func w6(seq *IsolatingRunSequence) {
	for i, t := range seq.types {
		if t == ES || t == ET || t == CS {
			seq.types[i] = ON
		}
	}
}

// w7: a remaining EN becomes L when the nearest preceding strong type is L
// (sos counts as the boundary's strong type at the start of the sequence).
//
// The type is written after the nearest-strong lookup for the current
// character has been determined, using a single forward pass that tracks
// the most recently seen strong type — not an inner backward scan that
// mutates types while it is still walking toward the boundary, which would
// make the outcome depend on scan order instead of only on the nearest
// strong type (spec.md §9 flags that in-scan mutation as a known defect).
func w7(seq *IsolatingRunSequence) {
	lastStrong := seq.sos
	for i, t := range seq.types {
		switch t {
		case L, R:
			lastStrong = t
		case EN:
			if lastStrong == L {
				seq.types[i] = L
			}
		}
	}
}
