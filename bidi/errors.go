package bidi

import (
	"errors"
	"fmt"
)

// ErrInvalidLineBreaks is returned (wrapped) when the caller-supplied line
// break positions are not strictly increasing or fall outside the
// paragraph's length. This is the one recoverable-by-the-caller error
// condition the algorithm has (spec.md §7): everything inside the
// resolution pipeline itself is total over any input.
var ErrInvalidLineBreaks = errors.New("bidi: invalid line break positions")

// validateLineBreaks checks that lineBreaks is strictly increasing and
// every position lies in (0, n].
func validateLineBreaks(lineBreaks []int, n int) error {
	prev := 0
	for _, pos := range lineBreaks {
		if pos <= prev {
			return fmt.Errorf("%w: position %d is not strictly greater than the previous break %d", ErrInvalidLineBreaks, pos, prev)
		}
		if pos > n {
			return fmt.Errorf("%w: position %d exceeds paragraph length %d", ErrInvalidLineBreaks, pos, n)
		}
		prev = pos
	}
	return nil
}
