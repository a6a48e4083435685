package search

// EqualRange returns the half-open run [lo.Index, hi.Index) of elements
// equal to key: lo is LowerBound's result and hi is UpperBound's. The
// run is empty (lo.Index == hi.Index) exactly when key is absent, and
// hi.Index - lo.Index is the multiplicity of key otherwise.
//
// On an error status from LowerBound the same result is returned for
// both positions and UpperBound is not consulted.
//
// Complexity: O(log n) time, O(1) memory.
func EqualRange(seq []int32, n uint, key int32) (lo, hi Result) {
	lo = LowerBound(seq, n, key)
	if lo.Err() != nil {
		return lo, lo
	}

	hi = UpperBound(seq, n, key)

	return lo, hi
}
