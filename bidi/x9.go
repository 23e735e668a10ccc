package bidi

// neutralizeFormattingCodes implements X9: every remaining LRE/RLE/LRO/RLO/PDF
// is rewritten to BN so later rules never see it as anything but an
// invisible, BN-transparent character. BN characters keep the level X1-X8
// gave them; they are filtered out of strong/weak/neutral lookups by name
// wherever those rules need it.
func neutralizeFormattingCodes(types []BidiClass) {
	for i, t := range types {
		switch t {
		case LRE, RLE, LRO, RLO, PDF:
			types[i] = BN
		}
	}
}
