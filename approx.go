package makespan

import (
	"fmt"

	"github.com/ifryed/makespan/schedule"
)

// Approx runs the Lenstra-Shmoys-Tardos 2-approximation on s.
//
// The driver binary-searches candidate makespan bounds:
//
//	Init:    upper = greedy makespan, lower = upper / machines (the load of
//	         an ideally balanced split can never beat total/machines).
//	Iterate: mid = (lower+upper)/2; probe the LP oracle at mid.
//	         Infeasible => lower = mid + Eps.
//	         Feasible   => round the fractional solution into s at this
//	                       bound, then upper = mid - Eps and keep tightening.
//	Stop:    lower > upper, or MaxIters probes - whichever first.
//
// On return s holds the last successfully rounded assignment; if no probed
// bound was ever feasible, s holds the greedy assignment (the greedy bound
// itself is always feasible, so that fallback is a safety net, not an
// expected path). Errors out of the rounder (ErrNonBipartite,
// ErrIncompleteRounding, duplicate commits) abort the run as fatal;
// LP-level failures never do.
//
// Contract: s must be non-nil (ErrNilSchedule); any prior assignments are
// discarded. Synchronous and single-threaded; no cancellation mid-search.
func Approx(s *schedule.Schedule, opts Options) error {
	opts.normalize()
	if s == nil {
		return ErrNilSchedule
	}

	// Bounds on the solution via a greedy run. The greedy assignment also
	// doubles as the fallback result.
	s.Reset()
	if err := Greedy(s, opts); err != nil {
		return fmt.Errorf("approx: %w", err)
	}
	upper := s.Makespan()
	lower := upper / float64(s.Machines())

	rounded := 0
	for iter := 0; iter < opts.MaxIters && lower <= upper; iter++ {
		mid := (lower + upper) / 2

		frac, ok := feasibleAt(s, mid, opts)
		if !ok {
			lower = mid + opts.Eps

			continue
		}
		if err := roundFractional(s, frac, opts); err != nil {
			return fmt.Errorf("approx: bound %g: %w", mid, err)
		}
		rounded++
		upper = mid - opts.Eps
	}

	opts.Logger.Debug().
		Int("rounded_bounds", rounded).
		Float64("makespan", s.Makespan()).
		Msg("approximation search finished")

	return nil
}
