// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// copyBackRef copies length bytes from dst[outPos-offset:] to dst[outPos:].
// If offset < length, source and destination overlap; copy must be byte-by-byte
// forward so that repeated bytes (RLE) are correct. The built-in copy does not
// handle overlapping regions where src precedes dst.
func copyBackRef(dst []byte, outPos, offset, length int) error {
	if offset <= 0 || offset > outPos {
		return ErrInvalidBackReference
	}

	if outPos+length > len(dst) {
		return ErrLengthMismatch
	}

	mPos := outPos - offset
	if offset >= length {
		copy(dst[outPos:outPos+length], dst[mPos:mPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[outPos+i] = dst[mPos+i]
	}

	return nil
}
