// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// findMatch probes the hash index for a back-reference starting at pos and
// returns its offset and length. Greedy first-fit: the single indexed
// candidate is either accepted or the position is encoded as a literal; there
// is no chain search or lazy look-ahead.
//
// The slot is overwritten with the current position on every probe, hit or
// miss, so the index always tracks the most recent occurrence of each prefix.
// Callers must guarantee pos+minMatchLen <= len(in).
func findMatch(in []byte, pos int, idx *hashIndex, p levelParams) (offset, length int, ok bool) {
	slot := hashPrefix(in, pos)
	candidate := int(idx.slots[slot]) - 1
	idx.slots[slot] = int32(pos + 1) //nolint:gosec // G115: positions bounded by the 32-bit container header

	if candidate < 0 {
		return 0, 0, false
	}

	offset = pos - candidate
	if offset <= 0 || offset > p.maxOffset {
		return 0, 0, false
	}

	// The hash can collide; the candidate prefix must be verified byte-for-byte.
	if in[candidate] != in[pos] || in[candidate+1] != in[pos+1] || in[candidate+2] != in[pos+2] {
		return 0, 0, false
	}

	limit := len(in) - pos
	if limit > p.maxMatchLen {
		limit = p.maxMatchLen
	}

	length = minMatchLen
	for length < limit && in[candidate+length] == in[pos+length] {
		length++
	}

	minLen := p.minMatch
	if offset > p.nearOffset {
		minLen = p.farMinMatch
	}
	if length < minLen {
		return 0, 0, false
	}

	return offset, length, true
}
