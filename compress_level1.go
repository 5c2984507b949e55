// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// compressLevel1 runs the greedy level 1 parse and returns the raw token
// stream (level tag not yet merged in).
func compressLevel1(in []byte) []byte {
	idx := acquireHashIndex()
	defer releaseHashIndex(idx)

	out := make([]byte, 0, len(in)/2+16)
	anchor := 0 // start of the pending literal run
	pos := 0

	for pos+minMatchLen <= len(in) {
		offset, length, ok := findMatch(in, pos, idx, level1Params)
		if !ok {
			pos++
			continue
		}

		if pos > anchor {
			out = appendLiteralRuns(out, in[anchor:pos])
		}

		out = appendMatchLevel1(out, offset, length)
		pos += length
		anchor = pos
	}

	if anchor < len(in) {
		out = appendLiteralRuns(out, in[anchor:])
	}

	return out
}

// appendMatchLevel1 appends one level 1 match token.
// offset is 1..maxOffsetL1, length is minMatchLen..maxMatchLenL1; the encoded
// distance is offset-1.
func appendMatchLevel1(out []byte, offset, length int) []byte {
	dist := offset - 1

	if length <= maxShortMatch {
		// Short form: length in the upper 3 bits, 13-bit distance split below.
		return append(out,
			opcodeByte((length-2)<<5|dist>>8),
			opcodeByte(dist),
		)
	}

	// Long form: marker 111, one extension byte for length-9.
	return append(out,
		opcodeByte(7<<5|dist>>8),
		opcodeByte(length-longMatchBase),
		opcodeByte(dist),
	)
}
