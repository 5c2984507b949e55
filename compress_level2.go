// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// compressLevel2 runs the greedy level 2 parse and returns the raw token
// stream (level tag not yet merged in). The parse is identical to level 1;
// only the match bounds and the token encoding differ.
func compressLevel2(in []byte) []byte {
	idx := acquireHashIndex()
	defer releaseHashIndex(idx)

	out := make([]byte, 0, len(in)/2+16)
	anchor := 0
	pos := 0

	for pos+minMatchLen <= len(in) {
		offset, length, ok := findMatch(in, pos, idx, level2Params)
		if !ok {
			pos++
			continue
		}

		if pos > anchor {
			out = appendLiteralRuns(out, in[anchor:pos])
		}

		out = appendMatchLevel2(out, offset, length)
		pos += length
		anchor = pos
	}

	if anchor < len(in) {
		out = appendLiteralRuns(out, in[anchor:])
	}

	return out
}

// appendMatchLevel2 appends one level 2 match token.
//
// Near form (offset <= maxNearOffsetL2) mirrors level 1, except the long form
// carries length-9 as 255-continuation bytes, so the length is unbounded.
// Far form (offset > maxNearOffsetL2) writes the reserved encoded distance
// 8191 followed by a big-endian 16-bit field holding offset-farOffsetBase.
func appendMatchLevel2(out []byte, offset, length int) []byte {
	code := length - 2

	if offset <= maxNearOffsetL2 {
		dist := offset - 1
		if code < 7 {
			return append(out, opcodeByte(code<<5|dist>>8), opcodeByte(dist))
		}

		out = append(out, opcodeByte(7<<5|dist>>8))
		out = appendLengthContinuation(out, code-7)

		return append(out, opcodeByte(dist))
	}

	far := offset - farOffsetBase
	if code < 7 {
		out = append(out, opcodeByte(code<<5|farEscape>>8), opcodeByte(farEscape))
	} else {
		out = append(out, opcodeByte(7<<5|farEscape>>8))
		out = appendLengthContinuation(out, code-7)
		out = append(out, opcodeByte(farEscape))
	}

	return append(out, opcodeByte(far>>8), opcodeByte(far))
}

// appendLengthContinuation appends t as 255-chunks plus a terminator < 255.
// A trailing zero byte is valid and required when t is a multiple of 255.
func appendLengthContinuation(out []byte, t int) []byte {
	for t >= lenContinueMax {
		out = append(out, lenContinueMax)
		t -= lenContinueMax
	}

	return append(out, opcodeByte(t))
}
