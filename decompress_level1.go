// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// decodeLevel1 decodes a level 1 payload into dst in a single forward pass.
// payload[0] still carries the level tag in its upper 3 bits; they are masked
// off before the first opcode is interpreted.
func decodeLevel1(payload, dst []byte) error {
	expected := len(dst)
	if expected == 0 {
		return nil
	}

	op := int(payload[0] & tagDataMask)
	inPos := 1
	outPos := 0

	for {
		switch {
		case op < maxLiteralRun:
			// Literal run: opcode is run-1, raw bytes follow.
			if err := copyLiteralRun(payload, &inPos, dst, &outPos, op+1); err != nil {
				return err
			}

		case op>>5 == 7:
			// Long match: one extension byte for length-9, then the low distance byte.
			ext, err := readPayloadByte(payload, &inPos)
			if err != nil {
				return err
			}

			low, err := readPayloadByte(payload, &inPos)
			if err != nil {
				return err
			}

			length := longMatchBase + int(ext)
			offset := (op&tagDataMask)<<8 + int(low) + 1
			if err := copyBackRef(dst, outPos, offset, length); err != nil {
				return err
			}
			outPos += length

		default:
			// Short match: length 3..8 in the upper 3 bits.
			low, err := readPayloadByte(payload, &inPos)
			if err != nil {
				return err
			}

			length := op>>5 + 2
			offset := (op&tagDataMask)<<8 + int(low) + 1
			if err := copyBackRef(dst, outPos, offset, length); err != nil {
				return err
			}
			outPos += length
		}

		// The copy helpers never write past dst, so reaching its end is exact.
		if outPos == expected {
			return nil
		}

		if inPos >= len(payload) {
			return ErrTruncatedStream
		}

		op = int(payload[inPos])
		inPos++
	}
}
