package makespan

import (
	"fmt"

	"github.com/ifryed/makespan/schedule"
)

// Greedy assigns every job to the machine that minimizes
// cost(machine, job) + current load(machine), processing jobs in column
// order. Ties break to the lowest machine index (first minimum wins).
//
// The result is at most a factor 2 from optimal in the classic worst case;
// Approx also uses it to seed the binary-search bounds and as the fallback
// assignment.
//
// Contract: s must be non-nil (ErrNilSchedule) and cleared or fresh.
// Complexity: O(jobs * machines * jobs) with on-demand load sums - the
// instance sizes this library targets make the simple form preferable to
// caching loads.
func Greedy(s *schedule.Schedule, opts Options) error {
	opts.normalize()
	if s == nil {
		return ErrNilSchedule
	}

	for job := 0; job < s.Jobs(); job++ {
		best, bestVal := -1, 0.0
		for m := 0; m < s.Machines(); m++ {
			c, err := s.Cost(m, job)
			if err != nil {
				return fmt.Errorf("greedy: %w", err)
			}
			load, err := s.Load(m)
			if err != nil {
				return fmt.Errorf("greedy: %w", err)
			}
			if v := c + load; best < 0 || v < bestVal {
				best, bestVal = m, v
			}
		}
		if err := s.Assign(best, job); err != nil {
			return fmt.Errorf("greedy: %w", err)
		}
	}
	opts.Logger.Debug().Float64("makespan", s.Makespan()).Msg("greedy assignment complete")

	return nil
}
