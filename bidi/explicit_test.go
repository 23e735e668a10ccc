package bidi

import "testing"

func TestResolveExplicitPlainText(t *testing.T) {
	types := []BidiClass{L, L, L}
	_, init := matchIsolates(types)
	levels := resolveExplicit(types, init, 0)
	for i, l := range levels {
		if l != 0 {
			t.Errorf("levels[%d] = %d, want 0", i, l)
		}
	}
}

func TestResolveExplicitRLE(t *testing.T) {
	// RLE a PDF : 'a' should sit at level 1, RLE/PDF take the surrounding
	// level before/after the push they cause (0 in both cases here), since
	// X9 turns them into BN and they must fit into the run they border.
	types := []BidiClass{RLE, L, PDF}
	pdi, _ := matchIsolates(types)
	levels := resolveExplicit(types, pdi, 0)
	if levels[1] != 1 {
		t.Errorf("levels[1] = %d, want 1", levels[1])
	}
	if levels[0] != 0 {
		t.Errorf("levels[0] (RLE) = %d, want 0 (enclosing level before push)", levels[0])
	}
	if levels[2] != 0 {
		t.Errorf("levels[2] (PDF) = %d, want 0 (level after the pop it triggers)", levels[2])
	}
}

func TestResolveExplicitOverrideRewritesType(t *testing.T) {
	// RLO a PDF : under an RTL override, 'a' (originally L) becomes R.
	types := []BidiClass{RLO, L, PDF}
	pdi, _ := matchIsolates(types)
	resolveExplicit(types, pdi, 0)
	if types[1] != R {
		t.Errorf("types[1] = %v, want R (rewritten by override)", types[1])
	}
}

func TestResolveExplicitIsolateInheritsEnclosingLevel(t *testing.T) {
	types := []BidiClass{RLI, L, PDI}
	pdi, _ := matchIsolates(types)
	levels := resolveExplicit(types, pdi, 0)
	if levels[0] != 0 {
		t.Errorf("RLI should inherit the enclosing level 0, got %d", levels[0])
	}
	if levels[1] != 1 {
		t.Errorf("content inside RLI should be level 1, got %d", levels[1])
	}
}

func TestResolveExplicitFSIResolvesByContent(t *testing.T) {
	// FSI <Hebrew strong R> PDI should behave like RLI: content at level 1.
	hebrew := BidiClass(R)
	types := []BidiClass{FSI, hebrew, PDI}
	pdi, _ := matchIsolates(types)
	levels := resolveExplicit(types, pdi, 0)
	if levels[1] != 1 {
		t.Errorf("FSI with strong-R content should push level 1, got %d", levels[1])
	}
}

func TestResolveExplicitPDIWithoutMatchingInitiatorIsNoOp(t *testing.T) {
	types := []BidiClass{L, PDI, L}
	pdi, _ := matchIsolates(types)
	levels := resolveExplicit(types, pdi, 0)
	for i, l := range levels {
		if l != 0 {
			t.Errorf("levels[%d] = %d, want 0 (unmatched PDI is a no-op)", i, l)
		}
	}
}

func TestResolveExplicitOverflowEmbedding(t *testing.T) {
	// 127 nested RLE: the first 63 succeed (odd levels 1,3,...,123,125 from
	// base 0 fit within maxDepth=125), the rest overflow without corrupting
	// the stack or producing an out-of-range level.
	n := 127
	types := make([]BidiClass, n+1)
	for i := 0; i < n; i++ {
		types[i] = RLE
	}
	types[n] = L
	pdi, _ := matchIsolates(types)
	levels := resolveExplicit(types, pdi, 0)

	for _, l := range levels {
		if l < 0 || l > maxDepth {
			t.Fatalf("level %d out of range [0, %d]", l, maxDepth)
		}
	}
	if levels[n] != maxDepth {
		t.Errorf("innermost content level = %d, want %d (deepest valid odd level)", levels[n], maxDepth)
	}
}

func TestResolveExplicitParagraphSeparatorResetsStack(t *testing.T) {
	types := []BidiClass{RLE, L, B, L}
	pdi, _ := matchIsolates(types)
	levels := resolveExplicit(types, pdi, 0)
	if levels[2] != 0 {
		t.Errorf("B should reset to paragraph level 0, got %d", levels[2])
	}
	if levels[3] != 0 {
		t.Errorf("content after B should be back at paragraph level 0, got %d", levels[3])
	}
}

func TestLeastGreaterOddEven(t *testing.T) {
	if leastGreaterOdd(0) != 1 {
		t.Error("leastGreaterOdd(0) should be 1")
	}
	if leastGreaterOdd(1) != 3 {
		t.Error("leastGreaterOdd(1) should be 3")
	}
	if leastGreaterEven(0) != 2 {
		t.Error("leastGreaterEven(0) should be 2")
	}
	if leastGreaterEven(1) != 2 {
		t.Error("leastGreaterEven(1) should be 2")
	}
}
