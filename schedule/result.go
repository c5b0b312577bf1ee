// Package schedule - result extraction strategies.
//
// Callers need one of two result shapes from a completed run: the scalar
// makespan or the explicit assignment pairs. Both are modeled as one
// Extractor interface with two implementations; the caller picks the shape,
// the solvers stay agnostic.

package schedule

// Result is a rendered scheduling outcome. Exactly one field is populated,
// depending on the Extractor that produced it: MakespanExtractor fills
// Makespan, PairsExtractor fills Pairs.
type Result struct {
	// Makespan is the maximum machine load of the completed run.
	Makespan float64

	// Pairs is the committed (machine, job) mapping in machine-major order.
	Pairs []Pair
}

// Extractor renders a completed Schedule into a Result.
// Implementations must not mutate the Schedule.
type Extractor interface {
	Extract(s *Schedule) Result
}

// MakespanExtractor extracts only the scalar makespan.
// Use it when the objective value is all the caller needs.
type MakespanExtractor struct{}

// Extract returns Result{Makespan: s.Makespan()}.
// Complexity: O(machines*jobs).
func (MakespanExtractor) Extract(s *Schedule) Result {
	return Result{Makespan: s.Makespan()}
}

// PairsExtractor extracts the explicit set of committed assignment pairs.
type PairsExtractor struct{}

// Extract returns Result{Pairs: s.Pairs()}.
// Complexity: O(machines*jobs).
func (PairsExtractor) Extract(s *Schedule) Result {
	return Result{Pairs: s.Pairs()}
}

// Compile-time conformance checks.
var (
	_ Extractor = MakespanExtractor{}
	_ Extractor = PairsExtractor{}
)
