// Package bounds is a small, allocation-free toolkit of bounds-search
// primitives over sorted 32-bit integer sequences.
//
// 🚀 What is bounds?
//
//	A library of predictable, non-recursive search primitives built for
//	callers that cannot tolerate hidden allocation or unbounded stack use:
//		• LowerBound   — first index whose element is not less than the key
//		• UpperBound   — first index whose element is strictly greater than the key
//		• BinarySearch — leftmost exact match, or the insertion point
//		• EqualRange   — the contiguous run of elements equal to the key
//
// ✨ Why choose bounds?
//
//   - Overflow-safe – midpoints come from stride halving, never (lo+hi)/2
//   - Deterministic – O(log n) steps, zero allocation, zero recursion
//   - Honest results – a closed status set instead of sentinel indices
//   - Pure Go – no cgo, no hidden deps, safe under concurrent readers
//
// Everything lives in one subpackage:
//
//	search/ — the three primitives, EqualRange, and the Status/Result contract
//
// Quick taste:
//
//	votes := []int32{3, 7, 7, 7, 12}
//	lo, hi := search.EqualRange(votes, 5, 7)
//	// lo.Index == 1, hi.Index == 4 → three sevens
//
// Dive into search/doc.go for the full contract, complexity notes, and
// the precondition rules callers must honor.
//
//	go get github.com/katalvlaran/bounds/search
package bounds
