// Package schedule: sentinel error set.
// All public entry points return these sentinels (possibly wrapped with
// fmt.Errorf("...: %w", ErrX)); callers match them via errors.Is.

package schedule

import "errors"

var (
	// ErrNilCosts indicates that a nil cost matrix was passed to New.
	ErrNilCosts = errors.New("schedule: cost matrix is nil")

	// ErrNegativeCost indicates that the cost matrix contains a negative
	// entry. Processing costs must be non-negative.
	ErrNegativeCost = errors.New("schedule: negative cost")

	// ErrOutOfRange indicates a machine or job index outside the matrix shape.
	ErrOutOfRange = errors.New("schedule: index out of range")

	// ErrDuplicateAssignment indicates that Assign was called on a cell that
	// is already committed. Correct algorithm runs never do this; treat it as
	// an internal-invariant violation, not a recoverable condition.
	ErrDuplicateAssignment = errors.New("schedule: assignment already scheduled")
)
