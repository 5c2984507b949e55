package fastlz

// levelParams holds the match-finder bounds for one compression level.
// All fields are unexported; the type is used only inside the package.
type levelParams struct {
	maxOffset   int // longest accepted back-reference distance
	nearOffset  int // distances above this require farMinMatch (level 2 far form)
	maxMatchLen int // forward extension cap
	minMatch    int // shortest accepted match
	farMinMatch int // shortest accepted match beyond nearOffset
}

// Bounds per level. Level 1 has no far form, so nearOffset equals maxOffset.
var (
	level1Params = levelParams{
		maxOffset:   maxOffsetL1,
		nearOffset:  maxOffsetL1,
		maxMatchLen: maxMatchLenL1,
		minMatch:    minMatchLen,
		farMinMatch: minMatchLen,
	}

	level2Params = levelParams{
		maxOffset:   maxOffsetL2,
		nearOffset:  maxNearOffsetL2,
		maxMatchLen: maxMatchLenL2,
		minMatch:    minMatchLen,
		farMinMatch: minFarMatchLen,
	}
)
