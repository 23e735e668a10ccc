package bidi

// resolveImplicit applies I1-I2, computing seq.resolvedLevels from seq.types
// and seq.level. BN characters are transparent: they keep seq.level itself
// rather than level+delta, since X1-X8 already assigned them their ambient
// level and I1/I2 must not perturb it.
//
// Ported from: UAX #9 I1-I2.
func resolveImplicit(seq *IsolatingRunSequence) {
	seq.resolvedLevels = make([]Level, len(seq.types))
	even := seq.level%2 == 0

	for i, t := range seq.types {
		if t == BN {
			seq.resolvedLevels[i] = seq.level
			continue
		}
		var delta Level
		if even {
			switch t {
			case L:
				delta = 0
			case R:
				delta = 1
			case AN, EN:
				delta = 2
			}
		} else {
			switch t {
			case R:
				delta = 0
			case L, AN, EN:
				delta = 1
			}
		}
		seq.resolvedLevels[i] = seq.level + delta
	}
}
