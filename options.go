package makespan

import "github.com/rs/zerolog"

// Default knob values. Eps doubles as the binary-search step and the
// rounding integrality tolerance; the solver limits follow common simplex
// practice for LPs of this size.
const (
	defaultEps           = 1e-4
	defaultMaxIters      = 64
	defaultSolverMaxIter = 4000
	defaultSolverTol     = 1e-12
)

// Options configures the makespan solvers.
//
//   - Algo:          which solver Solve routes to (default AlgoGreedy).
//   - Eps:           binary-search step and integrality tolerance; fractional
//     values within Eps of 1 are committed directly during rounding.
//   - MaxIters:      hard cap on binary-search iterations. The search also
//     stops when lower > upper, whichever comes first; the cap makes the
//     termination budget explicit instead of relying on epsilon arithmetic.
//   - SolverMaxIter: simplex iteration limit handed to lpsimplex.
//   - SolverTol:     simplex pivot tolerance handed to lpsimplex.
//   - Logger:        advisory structured logger; defaults to a no-op. Probes
//     log at debug level, solver hiccups at warn. Logging is not part of the
//     contract and may be discarded freely.
type Options struct {
	Algo          Algo
	Eps           float64
	MaxIters      int
	SolverMaxIter int
	SolverTol     float64
	Logger        zerolog.Logger
}

// DefaultOptions returns Options with deterministic defaults:
// greedy algorithm, Eps=1e-4, MaxIters=64, SolverMaxIter=4000,
// SolverTol=1e-12, and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Algo:          AlgoGreedy,
		Eps:           defaultEps,
		MaxIters:      defaultMaxIters,
		SolverMaxIter: defaultSolverMaxIter,
		SolverTol:     defaultSolverTol,
		Logger:        zerolog.Nop(),
	}
}

// normalize fills zero-valued knobs with their defaults so that a literal
// Options{} behaves sensibly. Called once at every public entry point.
func (o *Options) normalize() {
	if o.Eps <= 0 {
		o.Eps = defaultEps
	}
	if o.MaxIters <= 0 {
		o.MaxIters = defaultMaxIters
	}
	if o.SolverMaxIter <= 0 {
		o.SolverMaxIter = defaultSolverMaxIter
	}
	if o.SolverTol <= 0 {
		o.SolverTol = defaultSolverTol
	}
}
