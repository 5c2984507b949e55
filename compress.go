// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Compress compresses src into a FastLZ container. opts may be nil (uses
// default level 1). The level is clamped to the 1..2 range.
//
// Compression never fails on content: empty and incompressible inputs still
// produce valid containers. The only error is input longer than the 32-bit
// length header can record.
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}

	level := opts.Level
	level = max(level, Level1)
	level = min(level, Level2)

	if uint64(len(src)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: %d bytes exceed the 32-bit header range", ErrInputTooLarge, len(src))
	}

	var payload []byte
	if len(src) > 0 {
		if level == Level2 {
			payload = compressLevel2(src)
		} else {
			payload = compressLevel1(src)
		}
	}

	out := make([]byte, 0, headerSize+1+len(payload))
	out = binary.LittleEndian.AppendUint32(out, uint32(len(src))) //nolint:gosec // G115: range checked above

	// The first token is always a literal run, so the upper 3 bits of the first
	// payload byte are free to carry the level tag.
	marker := levelMarker(level)
	if len(payload) == 0 {
		return append(out, marker), nil
	}

	out = append(out, marker|payload[0]&tagDataMask)
	out = append(out, payload[1:]...)

	return out, nil
}

// CompressBound returns the maximum container size Compress can produce for n
// input bytes: the 4-byte header, the level tag merged into the first opcode,
// and in the worst case one opcode byte per 32-byte literal run.
func CompressBound(n int) int {
	if n <= 0 {
		return headerSize + 1
	}

	return headerSize + 1 + n + (n+maxLiteralRun-1)/maxLiteralRun
}

// levelMarker returns the level tag for the first payload byte.
func levelMarker(level int) byte {
	return byte(level-1) << tagShift
}

// appendLiteralRuns appends lit as one or more literal-run tokens.
// Runs longer than maxLiteralRun are split into continuation chunks, so
// arbitrarily long runs are representable.
func appendLiteralRuns(out []byte, lit []byte) []byte {
	for len(lit) > 0 {
		chunk := min(len(lit), maxLiteralRun)
		out = append(out, opcodeByte(chunk-1))
		out = append(out, lit[:chunk]...)
		lit = lit[chunk:]
	}

	return out
}
