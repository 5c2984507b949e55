// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

import "errors"

// Sentinel errors for decompression and compression.
// Context values are attached with fmt.Errorf("%w: ..."); callers match with errors.Is.
var (
	// ErrInvalidHeader is returned when the container is shorter than the 4-byte
	// length header, or when the declared length is implausible for the payload.
	ErrInvalidHeader = errors.New("invalid container header")
	// ErrUnsupportedLevel is returned when the payload's level tag names neither
	// level 1 nor level 2.
	ErrUnsupportedLevel = errors.New("unsupported compression level")
	// ErrTruncatedStream is returned when a token requires bytes beyond the end
	// of the payload, or the payload ends before the declared length is produced.
	ErrTruncatedStream = errors.New("truncated compressed stream")
	// ErrInvalidBackReference is returned when a match offset is zero or points
	// before the start of the output written so far.
	ErrInvalidBackReference = errors.New("invalid back-reference")
	// ErrLengthMismatch is returned when decoding would write past the length
	// declared in the container header.
	ErrLengthMismatch = errors.New("decoded length mismatch")

	// ErrOutputTooSmall is returned by DecompressInto when the destination buffer
	// is shorter than the declared decompressed length.
	ErrOutputTooSmall = errors.New("output buffer too small")
	// ErrInputTooLarge is returned when DecompressFromReader reads more than
	// MaxInputSize bytes, or when Compress input exceeds the 32-bit header range.
	ErrInputTooLarge = errors.New("input too large")
	// ErrOutputLimitExceeded is returned when the declared decompressed length
	// exceeds DecompressOptions.MaxOutputSize.
	ErrOutputLimitExceeded = errors.New("declared length exceeds MaxOutputSize")
)
