package fastlz

// hashIndex maps a hash of the 3-byte prefix at a position to the most recent
// prior position with that hash. Single-slot replacement: a collision simply
// overwrites the previous entry. Slots store position+1 so the zero value
// means empty.
type hashIndex struct {
	slots [hashSlots]int32
}

// reset clears all slots. Required before reuse from the pool so stale
// positions from a previous input cannot leak into the next call.
func (h *hashIndex) reset() {
	clear(h.slots[:])
}

// hashPrefix hashes the 3 bytes at in[pos:pos+3] into a slot index.
// Callers must guarantee pos+3 <= len(in).
func hashPrefix(in []byte, pos int) uint32 {
	v := uint32(in[pos]) | uint32(in[pos+1])<<8
	v ^= (uint32(in[pos+1]) | uint32(in[pos+2])<<8) ^ (v >> (16 - hashBits))
	return v & hashMask
}
