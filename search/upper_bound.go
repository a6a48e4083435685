package search

// UpperBound returns the smallest index i in [0, n] such that
// seq[i] > key, or n when no element is greater than key.
//
// The control structure is LowerBound's stride-halving loop with the
// comparison flipped: seq[mid] <= key discards the lower half, so the
// probe advances past elements equal to key instead of stopping on
// them. Together the two bounds delimit the duplicate run
// [LowerBound(key), UpperBound(key)) — see EqualRange.
//
// Postconditions (for sorted input):
//
//	index <= n
//	index == n || seq[index] > key
//	index == 0 || seq[index-1] <= key
//
// Errors and preconditions are identical to LowerBound: {NilSequence, 0}
// for nil seq with n > 0; nil with n == 0 yields {NotFound, 0}.
//
// Complexity: O(log n) time, O(1) memory, no recursion, no allocation.
func UpperBound(seq []int32, n uint, key int32) Result {
	if seq == nil && n > 0 {
		return Result{Status: NilSequence, Index: 0}
	}

	var (
		first  uint
		length = n
	)
	for length > 0 {
		half := length >> 1
		mid := first + half
		if seq[mid] <= key {
			first = mid + 1
			length -= half + 1
		} else {
			length = half
		}
	}

	return Result{Status: NotFound, Index: first}
}
