package search

// LowerBound returns the smallest index i in [0, n] such that
// seq[i] >= key, or n when every element is less than key.
//
// Algorithm Outline (stride halving):
//  1. Maintain a half-open candidate window [first, first+length).
//  2. Each step computes half = length/2 and probes mid = first + half.
//     The midpoint is derived from the window length, never from adding
//     two endpoints, so the classic (lo+hi)/2 overflow cannot occur.
//  3. seq[mid] < key  ⇒ mid and everything below it are not candidates:
//     first = mid+1, length -= half+1.
//     seq[mid] >= key ⇒ mid stays a candidate: length = half.
//  4. length == 0 ⇒ first is the answer.
//
// Postconditions (for sorted input):
//
//	index <= n
//	index == n || seq[index] >= key
//	index == 0 || seq[index-1] < key
//
// Errors:
//   - {NilSequence, 0} when seq == nil and n > 0, detected before any
//     element access. A nil seq with n == 0 is an ordinary empty
//     search and yields {NotFound, 0}.
//
// Precondition: seq non-descending (not validated; an unsorted seq
// yields an unspecified in-range index), and n <= len(seq) for non-nil
// seq.
//
// Complexity: O(log n) time, O(1) memory, no recursion, no allocation.
func LowerBound(seq []int32, n uint, key int32) Result {
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
		if seq[mid] < key {
			first = mid + 1
			length -= half + 1
		} else {
			length = half
		}
	}

	return Result{Status: NotFound, Index: first}
}
