// Solve is the canonical entry point: it owns Schedule construction (and
// with it all cost-matrix validation), routes to the algorithm selected in
// Options, and renders the result through the caller's Extractor. Callers
// that want to inspect the Schedule itself use Greedy/Approx directly on a
// schedule they own.

package makespan

import (
	"github.com/ifryed/makespan/matrix"
	"github.com/ifryed/makespan/schedule"
)

// Solve validates costs, builds a fresh Schedule, runs the solver selected
// by opts.Algo, and extracts the result shape the caller asked for.
//
// Contracts:
//   - costs must be non-nil, rectangular, with non-negative finite entries
//     (schedule.ErrNilCosts / schedule.ErrNegativeCost surface here);
//   - x must be non-nil (ErrNilExtractor);
//   - opts.Algo must be a known algorithm (ErrUnknownAlgorithm).
//
// Complexity: schedule construction O(machines*jobs) plus the chosen
// algorithm's cost.
func Solve(costs matrix.Matrix, x schedule.Extractor, opts Options) (schedule.Result, error) {
	opts.normalize()
	if x == nil {
		return schedule.Result{}, ErrNilExtractor
	}

	s, err := schedule.New(costs)
	if err != nil {
		return schedule.Result{}, err
	}

	switch opts.Algo {
	case AlgoGreedy:
		err = Greedy(s, opts)
	case AlgoApprox:
		err = Approx(s, opts)
	default:
		return schedule.Result{}, ErrUnknownAlgorithm
	}
	if err != nil {
		return schedule.Result{}, err
	}

	return x.Extract(s), nil
}
