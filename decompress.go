// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import (
	"encoding/binary"
	"fmt"
)

// Decompress decompresses a FastLZ container into a new buffer sized from the
// header. opts may be nil. Partial output is never returned: any decode error
// discards the buffer.
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}

	declared, payload, level, err := parseContainer(src)
	if err != nil {
		return nil, err
	}

	if opts.MaxOutputSize > 0 && declared > opts.MaxOutputSize {
		return nil, fmt.Errorf("%w: declared %d, limit %d", ErrOutputLimitExceeded, declared, opts.MaxOutputSize)
	}

	dst := make([]byte, declared)
	if err := decodePayload(payload, dst, level); err != nil {
		return nil, err
	}

	return dst, nil
}

// DecompressInto decompresses src into the caller-provided dst, which must be
// at least as long as the declared length. On success returns dst sliced to
// the decoded length (no per-call output allocation).
func DecompressInto(src, dst []byte) ([]byte, error) {
	declared, payload, level, err := parseContainer(src)
	if err != nil {
		return nil, err
	}

	if len(dst) < declared {
		return nil, fmt.Errorf("%w: need %d, have %d", ErrOutputTooSmall, declared, len(dst))
	}

	dst = dst[:declared]
	if err := decodePayload(payload, dst, level); err != nil {
		return nil, err
	}

	return dst, nil
}

// decodePayload dispatches to the token decoder for the tagged level.
func decodePayload(payload, dst []byte, level int) error {
	if level == Level2 {
		return decodeLevel2(payload, dst)
	}

	return decodeLevel1(payload, dst)
}

// parseContainer validates the header and level tag and returns the declared
// length, the payload (tag byte included) and the level.
func parseContainer(src []byte) (declared int, payload []byte, level int, err error) {
	if len(src) < headerSize {
		return 0, nil, 0, fmt.Errorf("%w: %d bytes, need at least %d", ErrInvalidHeader, len(src), headerSize)
	}

	declared64 := int64(binary.LittleEndian.Uint32(src[:headerSize]))
	payload = src[headerSize:]

	// The level tag is part of the payload, so a bare header is truncated even
	// when the declared length is zero.
	if len(payload) == 0 {
		return 0, nil, 0, ErrTruncatedStream
	}

	// No valid token stream expands more than maxExpansion times; anything
	// beyond that is a forged header, rejected before allocating the output.
	if declared64/maxExpansion > int64(len(payload)) {
		return 0, nil, 0, fmt.Errorf("%w: declared length %d implausible for %d payload bytes",
			ErrInvalidHeader, declared64, len(payload))
	}

	switch tag := payload[0] >> tagShift; tag {
	case Level1 - 1:
		level = Level1
	case Level2 - 1:
		level = Level2
	default:
		return 0, nil, 0, fmt.Errorf("%w: tag %d", ErrUnsupportedLevel, tag)
	}

	return int(declared64), payload, level, nil
}
