package fastlz

import "sync"

// hashIndexPool is a pool of prefix hash indexes.
var hashIndexPool = sync.Pool{
	New: func() any {
		return &hashIndex{}
	},
}

// acquireHashIndex acquires a cleared hash index from the pool.
func acquireHashIndex() *hashIndex {
	idx := hashIndexPool.Get().(*hashIndex)
	idx.reset()
	return idx
}

// releaseHashIndex releases a hash index to the pool.
func releaseHashIndex(idx *hashIndex) {
	if idx == nil {
		return
	}

	hashIndexPool.Put(idx)
}
