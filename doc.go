// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/fastlz

/*
Package fastlz implements FastLZ compression and decompression.

The container is a 4-byte little-endian header carrying the original length,
followed by the token payload. The upper 3 bits of the first payload byte tag
the compression level; the rest of the stream follows that level's grammar.
Level 1 uses 13-bit offsets (up to 8191) and matches up to 264 bytes. Level 2
widens offsets up to 73727 via an escape form and removes the match-length
ceiling, trading slightly larger match tokens for a bigger search window.

# Decompress

The decompressed size is read from the container header, so no options are
required:

	out, err := fastlz.Decompress(blob, nil)

To reuse caller-managed output memory (no per-call output allocation):

	dst := make([]byte, expectedLen)
	out, err := fastlz.DecompressInto(blob, dst)

From an io.Reader (reads the stream fully, then decodes):

	out, err := fastlz.DecompressFromReader(r, &fastlz.DecompressOptions{MaxInputSize: 1 << 20})

# Compress

Options may be nil (default level 1). Level 2 must be requested explicitly:

	out, err := fastlz.Compress(data, nil)
	out, err := fastlz.Compress(data, &fastlz.CompressOptions{Level: fastlz.Level2})

Compression never fails on content: incompressible input still produces a
valid container, bounded by CompressBound(len(data)).
*/
package fastlz
