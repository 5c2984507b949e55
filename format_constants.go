// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

package fastlz

// FastLZ format constants: container layout, level tags, token grammar bounds
// and hash parameters. Values follow the reference FastLZ format.

// Compression levels. The container records the level in the upper 3 bits of
// the first payload byte as (level-1)<<5.
const (
	Level1 = 1 // 13-bit offsets, matches up to 264 bytes
	Level2 = 2 // far-offset escape up to 73727, unbounded match length
)

// Container layout.
const (
	headerSize   = 4    // little-endian uint32 original length
	tagShift     = 5    // level tag occupies the upper 3 bits of payload[0]
	tagDataMask  = 0x1f // lower 5 bits of payload[0] belong to the first opcode
	maxExpansion = 256  // upper bound on declared/payload ratio for any valid stream
)

// Token grammar bounds.
const (
	maxLiteralRun = 32 // literal opcode carries run-1 in 5 bits

	minMatchLen    = 3   // shortest encodable match, both levels
	maxShortMatch  = 8   // longest match of the 2-byte form, both levels
	longMatchBase  = 9   // shortest match of the long form
	maxMatchLenL1  = 264 // level 1 long form: 9 + one extension byte
	lenContinueMax = 255 // level 2 length continuation chunk value

	maxOffsetL1     = 8191  // level 1: 13-bit encoded distance, offset = encoded+1
	maxNearOffsetL2 = 8191  // level 2 near form; encoded distance 8191 is the far escape
	farEscape       = 8191  // reserved encoded-distance bit pattern introducing the far form
	farOffsetBase   = 8192  // far form: offset = 16-bit field + farOffsetBase
	maxOffsetL2     = 73727 // farOffsetBase + 65535
	minFarMatchLen  = 5     // far matches must amortize the 2 extra offset bytes

	// maxMatchLenL2 caps forward extension per match at level 2. The grammar has
	// no ceiling; the cap bounds per-position work.
	maxMatchLenL2 = 1 << 16
)

// Hash parameters for the prefix index (3-byte prefix folded from two
// overlapping 16-bit reads, as in the reference format).
const (
	hashBits  = 13
	hashSlots = 1 << hashBits
	hashMask  = hashSlots - 1
)
