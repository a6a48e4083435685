// Package search defines the status and result contract shared by all
// bounds-search operations.
package search

import "errors"

// Sentinel errors for callers who prefer errors.Is over status switches.
var (
	// ErrNilSequence is reported when the sequence reference is nil
	// while the declared length is positive.
	ErrNilSequence = errors.New("search: nil sequence with positive length")

	// ErrInvalidLength corresponds to the reserved InvalidLength status.
	// No current operation produces it; the mapping exists so Result.Err
	// stays total over the status set.
	ErrInvalidLength = errors.New("search: invalid length")
)

// Status classifies the outcome of a bounds-search operation.
//
// The set is closed: two success values and two error values, one of
// which (InvalidLength) is reserved and currently produced by nothing.
type Status uint8

const (
	// Found means the key is present and Index is the leftmost match.
	// Only BinarySearch produces it.
	Found Status = iota

	// NotFound means the key is absent and Index is the position at
	// which inserting the key keeps the sequence sorted. For LowerBound
	// and UpperBound this is the normal success status.
	NotFound

	// NilSequence means the sequence was nil while the declared length
	// was positive. Index carries no information and is always 0.
	NilSequence

	// InvalidLength is reserved for a future length validation rule.
	// No operation produces it today; do not test for it as reachable.
	InvalidLength
)

// String returns the status name for diagnostics.
func (s Status) String() string {
	switch s {
	case Found:
		return "Found"
	case NotFound:
		return "NotFound"
	case NilSequence:
		return "NilSequence"
	case InvalidLength:
		return "InvalidLength"
	default:
		return "Unknown"
	}
}

// Result is the value every operation returns.
//
// Index is always within [0, n]; n itself means "past the last element"
// (insertion at the end). When Status is an error value, Index is
// meaningless and reported as 0 — callers must not interpret it.
//
// Result is transient: no identity, no mutation after construction.
type Result struct {
	// Status classifies the outcome; see the Status constants.
	Status Status

	// Index is the found position or insertion point.
	Index uint
}

// Found reports whether the result carries an exact match.
func (r Result) Found() bool { return r.Status == Found }

// Err maps error statuses onto the package sentinel errors, and returns
// nil for Found and NotFound. Use it when errors.Is fits the call site
// better than a status switch.
func (r Result) Err() error {
	switch r.Status {
	case NilSequence:
		return ErrNilSequence
	case InvalidLength:
		return ErrInvalidLength
	default:
		return nil
	}
}
