package search

// BinarySearch locates key in seq, reporting either the leftmost exact
// match or the insertion point that would keep seq sorted.
//
// It delegates to LowerBound for the candidate index, so on Found the
// index is always the first occurrence among duplicates — never an
// arbitrary match. Error statuses from LowerBound propagate unchanged,
// without inspecting the candidate further.
//
// Result:
//   - {Found, i}    — seq[i] == key and seq[j] != key for all j < i.
//   - {NotFound, i} — key absent; inserting at i preserves order.
//   - error statuses exactly as LowerBound reports them.
//
// Complexity: O(log n) time, O(1) memory, no recursion, no allocation.
func BinarySearch(seq []int32, n uint, key int32) Result {
	lb := LowerBound(seq, n, key)
	if lb.Status != Found && lb.Status != NotFound {
		return lb
	}

	if lb.Index < n && seq[lb.Index] == key {
		lb.Status = Found
	}

	return lb
}
