// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// readPayloadByte reads one byte from payload at *inPos and advances *inPos.
func readPayloadByte(payload []byte, inPos *int) (byte, error) {
	if *inPos >= len(payload) {
		return 0, ErrTruncatedStream
	}

	b := payload[*inPos]
	*inPos++

	return b, nil
}

// copyLiteralRun copies n raw bytes from payload[*inPos:] to dst[*outPos:] and
// advances both positions. dst is sized to the declared length, so writing
// past it means the stream produces more bytes than the header declared.
func copyLiteralRun(payload []byte, inPos *int, dst []byte, outPos *int, n int) error {
	if *inPos+n > len(payload) {
		return ErrTruncatedStream
	}

	if *outPos+n > len(dst) {
		return ErrLengthMismatch
	}

	copy(dst[*outPos:*outPos+n], payload[*inPos:*inPos+n])
	*inPos += n
	*outPos += n

	return nil
}
