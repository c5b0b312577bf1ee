package makespan

import (
	"fmt"

	"github.com/ifryed/makespan/matching"
	"github.com/ifryed/makespan/schedule"
)

// roundFractional converts a feasible fractional solution into an integral
// assignment on s, implementing the Lenstra-Shmoys-Tardos rounding theorem:
//
//  1. Clear s, then commit every pair whose fractional value is within Eps
//     of 1 directly.
//  2. Build the bipartite support graph of the remaining strictly positive
//     values (machines on the left, jobs on the right). Values at or below
//     Eps count as zero.
//  3. Verify bipartiteness. Failure means the LP or graph construction is
//     defective - fatal ErrNonBipartite, never a recoverable condition.
//  4. For each connected component of at least 2 nodes, commit every edge
//     of a maximum matching restricted to that component.
//  5. Verify that every job ended up assigned exactly once - fatal
//     ErrIncompleteRounding otherwise.
//
// Guarantee: on a basic LP solution every component is a near-tree (at most
// one more edge than a tree), so the matching saturates all job nodes and
// each machine gains at most one rounded job beyond its fractional load
// bound - total integral load at most 2x the LP bound.
//
// Complexity: O(machines*jobs) graph construction plus the matching cost.
func roundFractional(s *schedule.Schedule, frac [][]float64, opts Options) error {
	machines, jobs := s.Machines(), s.Jobs()
	s.Reset()

	g, err := matching.NewGraph(machines, jobs)
	if err != nil {
		return fmt.Errorf("round: %w", err)
	}

	// Stage 1+2: direct integral commitments and support edges.
	support := 0
	for m := 0; m < machines; m++ {
		for j := 0; j < jobs; j++ {
			v := frac[m][j]
			switch {
			case v <= opts.Eps:
				// zero within tolerance
			case v >= 1-opts.Eps:
				if err = s.Assign(m, j); err != nil {
					return fmt.Errorf("round: integral commit: %w", err)
				}
			default:
				if err = g.AddEdge(m, machines+j); err != nil {
					return fmt.Errorf("round: %w", err)
				}
				support++
			}
		}
	}
	opts.Logger.Debug().Int("fractional_edges", support).Msg("rounding support graph built")

	// Stage 3: internal-consistency check.
	if !g.Bipartite() {
		return ErrNonBipartite
	}

	// Stage 4: per-component maximum matching commits the residual jobs.
	for _, comp := range g.Components() {
		if len(comp) < 2 {
			continue
		}
		edges, mErr := g.MaximumMatching(comp)
		if mErr != nil {
			return fmt.Errorf("round: %w", mErr)
		}
		for _, e := range edges {
			if err = s.Assign(e.Left, e.Right); err != nil {
				return fmt.Errorf("round: matched commit: %w", err)
			}
		}
	}

	// Stage 5: every job covered exactly once. Assign already rules out
	// duplicates per cell; count per column to rule out gaps and splits.
	for j := 0; j < jobs; j++ {
		owners := 0
		for m := 0; m < machines; m++ {
			if s.Assigned(m, j) {
				owners++
			}
		}
		if owners != 1 {
			return fmt.Errorf("job %d has %d owners: %w", j, owners, ErrIncompleteRounding)
		}
	}

	return nil
}
