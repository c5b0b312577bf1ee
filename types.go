package makespan

import "errors"

// Algo selects the solver the Solve dispatcher routes to.
type Algo int

const (
	// AlgoGreedy runs only the greedy heuristic (fast, 2-approximate in the
	// classic worst case).
	AlgoGreedy Algo = iota

	// AlgoApprox runs the LP-driven Lenstra-Shmoys-Tardos 2-approximation.
	AlgoApprox
)

var (
	// ErrUnknownAlgorithm is returned by Solve for an Algo value it does not know.
	ErrUnknownAlgorithm = errors.New("makespan: unknown algorithm")

	// ErrNilSchedule indicates a nil *schedule.Schedule was passed to a solver.
	ErrNilSchedule = errors.New("makespan: schedule is nil")

	// ErrNilExtractor indicates a nil result extractor was passed to Solve.
	ErrNilExtractor = errors.New("makespan: extractor is nil")

	// ErrNonBipartite is a fatal internal-consistency error: the rounding
	// graph built from an LP solution contains an edge inside one side.
	// A correctly restricted LP can never produce this; abort the run
	// rather than emit a possibly corrupt assignment.
	ErrNonBipartite = errors.New("makespan: rounding graph is not bipartite")

	// ErrIncompleteRounding is a fatal internal-consistency error: after
	// rounding, some job is not assigned to exactly one machine. The
	// rounding theorem guarantees full coverage on basic LP solutions, so
	// this indicates a defect upstream, never a recoverable state.
	ErrIncompleteRounding = errors.New("makespan: rounding left a job unassigned")
)
