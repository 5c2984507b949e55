// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/fastlz

package fastlz

// CompressOptions configures compression.
type CompressOptions struct {
	// Level selects the token grammar: Level1 (default, fastest) or Level2
	// (wider offsets, better ratio on large inputs). Values below 1 clamp to
	// Level1, values above 2 clamp to Level2.
	Level int
}

// DefaultCompressOptions returns options for level 1 compression.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{Level: Level1}
}

// DecompressOptions configures decompression. The zero value is valid: the
// output size comes from the container header, not from the caller.
type DecompressOptions struct {
	// MaxOutputSize rejects containers whose declared length exceeds this value
	// before any allocation (0 = no limit).
	MaxOutputSize int
	// MaxInputSize limits how many bytes DecompressFromReader may read (0 = no limit).
	MaxInputSize int
}

// DefaultDecompressOptions returns options with no size limits.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
