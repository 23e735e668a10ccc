package bidi

import "testing"

func TestIsTrailingWhitespaceLikeCoversAllFiveClasses(t *testing.T) {
	for _, c := range []BidiClass{WS, FSI, LRI, RLI, PDI} {
		if !isTrailingWhitespaceLike(c) {
			t.Errorf("%v should be trailing-whitespace-like", c)
		}
	}
	if isTrailingWhitespaceLike(L) {
		t.Error("L should not be trailing-whitespace-like")
	}
}

func TestResolveLineLevelsForcesSegmentSeparator(t *testing.T) {
	origTypes := []BidiClass{R, S, R}
	levels := []Level{1, 1, 1}
	resolveLineLevels(origTypes, levels, 0, nil)
	if levels[1] != 0 {
		t.Errorf("levels[1] = %d, want 0 (S forced to paragraph level)", levels[1])
	}
}

func TestResolveLineLevelsForcesPrecedingTrailingWhitespace(t *testing.T) {
	origTypes := []BidiClass{R, WS, WS, S}
	levels := []Level{1, 1, 1, 1}
	resolveLineLevels(origTypes, levels, 0, nil)
	for i := 1; i < 4; i++ {
		if levels[i] != 0 {
			t.Errorf("levels[%d] = %d, want 0", i, levels[i])
		}
	}
	if levels[0] != 1 {
		t.Errorf("levels[0] = %d, want unchanged 1", levels[0])
	}
}

func TestResolveLineLevelsForcesEndOfLineTrailingRun(t *testing.T) {
	// Two lines: [0,3) and [3,5). Trailing WS/PDI before each line end must
	// be forced to paragraph level even with no S/B present.
	origTypes := []BidiClass{R, WS, PDI, R, FSI}
	levels := []Level{1, 1, 1, 1, 1}
	resolveLineLevels(origTypes, levels, 0, []int{3, 5})
	if levels[1] != 0 || levels[2] != 0 {
		t.Errorf("levels = %v, want trailing run before first line end forced to 0", levels)
	}
	if levels[4] != 0 {
		t.Errorf("levels[4] = %d, want 0 (trailing FSI before end of last line)", levels[4])
	}
	if levels[0] != 1 || levels[3] != 1 {
		t.Errorf("non-trailing positions should stay unchanged, got %v", levels)
	}
}

func TestResolveLineLevelsStopsAtNonWhitespace(t *testing.T) {
	origTypes := []BidiClass{R, L, WS, S}
	levels := []Level{1, 1, 1, 1}
	resolveLineLevels(origTypes, levels, 0, nil)
	if levels[1] != 1 {
		t.Errorf("levels[1] = %d, want unchanged 1 (L stops the trailing scan)", levels[1])
	}
	if levels[2] != 0 || levels[3] != 0 {
		t.Errorf("levels = %v, want WS and S forced to 0", levels)
	}
}
