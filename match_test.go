package fastlz

import "testing"

func TestFindMatch_GreedyFirstFit(t *testing.T) {
	in := []byte("abcdefabcdef")
	idx := acquireHashIndex()
	defer releaseHashIndex(idx)

	for pos := 0; pos < 6; pos++ {
		if _, _, ok := findMatch(in, pos, idx, level1Params); ok {
			t.Fatalf("unexpected match at pos=%d", pos)
		}
	}

	offset, length, ok := findMatch(in, 6, idx, level1Params)
	if !ok {
		t.Fatal("expected a match at pos=6")
	}
	if offset != 6 || length != 6 {
		t.Fatalf("match = (offset=%d, length=%d), want (6, 6)", offset, length)
	}
}

func TestFindMatch_ExtensionCappedByLevel(t *testing.T) {
	in := make([]byte, 1000)
	for i := range in {
		in[i] = 'A'
	}

	idx := acquireHashIndex()
	defer releaseHashIndex(idx)

	if _, _, ok := findMatch(in, 0, idx, level1Params); ok {
		t.Fatal("first position can never match")
	}

	offset, length, ok := findMatch(in, 1, idx, level1Params)
	if !ok {
		t.Fatal("expected a match at pos=1")
	}
	if offset != 1 {
		t.Fatalf("offset = %d, want 1", offset)
	}
	if length != maxMatchLenL1 {
		t.Fatalf("length = %d, want level 1 cap %d", length, maxMatchLenL1)
	}
}

func TestFindMatch_OffsetBounds(t *testing.T) {
	in := make([]byte, 10010)
	copy(in[0:], "HELLO")
	copy(in[9000:], "HELP!")

	// Seed the slot directly so the test does not depend on what the filler
	// bytes hash to.
	seed := func() *hashIndex {
		idx := acquireHashIndex()
		idx.slots[hashPrefix(in, 9000)] = 1 // candidate position 0
		return idx
	}

	t.Run("level1-rejects-far-offset", func(t *testing.T) {
		idx := seed()
		defer releaseHashIndex(idx)

		if _, _, ok := findMatch(in, 9000, idx, level1Params); ok {
			t.Fatal("offset 9000 must be rejected at level 1")
		}
	})

	t.Run("level2-far-needs-min-length", func(t *testing.T) {
		idx := seed()
		defer releaseHashIndex(idx)

		// Common prefix "HEL" is only 3 bytes; far matches need 5.
		if _, _, ok := findMatch(in, 9000, idx, level2Params); ok {
			t.Fatal("3-byte far match must be rejected at level 2")
		}
	})

	t.Run("level2-accepts-far-offset", func(t *testing.T) {
		copy(in[9000:], "HELLO")
		idx := seed()
		defer releaseHashIndex(idx)

		offset, length, ok := findMatch(in, 9000, idx, level2Params)
		if !ok {
			t.Fatal("expected a far match at level 2")
		}
		if offset != 9000 {
			t.Fatalf("offset = %d, want 9000", offset)
		}
		if length < minFarMatchLen {
			t.Fatalf("length = %d, want at least %d", length, minFarMatchLen)
		}
	})
}

func TestFindMatch_SlotAlwaysOverwritten(t *testing.T) {
	in := []byte("xyzxyzxyz")
	idx := acquireHashIndex()
	defer releaseHashIndex(idx)

	findMatch(in, 0, idx, level1Params)
	slot := hashPrefix(in, 0)
	if got := int(idx.slots[slot]); got != 1 {
		t.Fatalf("slot holds %d, want position 0 stored as 1", got)
	}

	// Probing position 3 (same prefix) must replace the entry even on a hit.
	findMatch(in, 3, idx, level1Params)
	if got := int(idx.slots[slot]); got != 4 {
		t.Fatalf("slot holds %d, want position 3 stored as 4", got)
	}
}
