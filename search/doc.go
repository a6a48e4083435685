// Package search provides allocation-free bounds searches over a sorted,
// caller-owned slice of int32 values.
//
// What:
//
//   - LowerBound(seq, n, key) — smallest index i in [0, n] with seq[i] >= key.
//   - UpperBound(seq, n, key) — smallest index i in [0, n] with seq[i] > key.
//   - BinarySearch(seq, n, key) — leftmost exact match, or the insertion point.
//   - EqualRange(seq, n, key) — the half-open run [LowerBound, UpperBound) of
//     elements equal to key.
//   - Every operation returns a Result{Status, Index}; no sentinel indices,
//     no panics on the defined error path.
//
// Why:
//
//   - Index lookup into sorted columns: timestamps, offsets, ID tables.
//   - Duplicate-aware range queries via EqualRange.
//   - Control-loop code that must not allocate, recurse, or surprise:
//     every call completes in O(log n) comparisons, flat stack, zero heap.
//
// Preconditions:
//
//   - seq must be non-descending (duplicates allowed). This is not
//     validated; an unsorted seq yields an unspecified index that is
//     still within [0, n] — a wrong answer, never a crash.
//   - n must not exceed len(seq) when seq is non-nil.
//   - The explicit length exists so that an absent sequence with a
//     positive declared length is a reportable state rather than an
//     unrepresentable one; a nil slice alone always has length zero.
//
// Complexity:
//
//   - All operations: O(log n) time, O(1) memory, no recursion.
//   - The midpoint is derived by stride halving (first + len/2), never
//     by (lo+hi)/2, so index arithmetic cannot overflow for any n that
//     fits in a uint.
//
// Errors:
//
//   - NilSequence status (ErrNilSequence via Result.Err): seq is nil while
//     n > 0. The only condition any operation can currently report.
//   - InvalidLength status (ErrInvalidLength): reserved; produced by no
//     code path today, kept so the status set is stable for callers.
//
// Concurrency: every operation is a pure function over read-only input;
// concurrent calls against the same slice need no locking.
package search
