// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// decodeLevel2 decodes a level 2 payload into dst in a single forward pass.
// Differences from level 1: the long-match length uses 255-continuation bytes
// and the encoded distance 8191 escapes to an extra 16-bit far-offset field.
func decodeLevel2(payload, dst []byte) error {
	expected := len(dst)
	if expected == 0 {
		return nil
	}

	op := int(payload[0] & tagDataMask)
	inPos := 1
	outPos := 0

	for {
		if op < maxLiteralRun {
			if err := copyLiteralRun(payload, &inPos, dst, &outPos, op+1); err != nil {
				return err
			}
		} else {
			length := op>>5 + 2
			if op>>5 == 7 {
				// Long match: continuation bytes accumulate until one is below 255.
				length = longMatchBase
				for {
					ext, err := readPayloadByte(payload, &inPos)
					if err != nil {
						return err
					}

					length += int(ext)
					// A length that cannot fit the remaining output can never
					// recover; stop before the sum grows unbounded.
					if length > expected-outPos {
						return ErrLengthMismatch
					}
					if ext != lenContinueMax {
						break
					}
				}
			}

			offset, err := readMatchOffsetL2(payload, &inPos, op)
			if err != nil {
				return err
			}

			if err := copyBackRef(dst, outPos, offset, length); err != nil {
				return err
			}
			outPos += length
		}

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

// readMatchOffsetL2 reads the distance bytes of a level 2 match. The reserved
// encoded distance 8191 introduces a big-endian 16-bit field; the real offset
// is that field plus farOffsetBase.
func readMatchOffsetL2(payload []byte, inPos *int, op int) (int, error) {
	low, err := readPayloadByte(payload, inPos)
	if err != nil {
		return 0, err
	}

	encoded := (op&tagDataMask)<<8 + int(low)
	if encoded != farEscape {
		return encoded + 1, nil
	}

	hi, err := readPayloadByte(payload, inPos)
	if err != nil {
		return 0, err
	}

	lo, err := readPayloadByte(payload, inPos)
	if err != nil {
		return 0, err
	}

	return int(hi)<<8 + int(lo) + farOffsetBase, nil
}
