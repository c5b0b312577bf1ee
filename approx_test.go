package makespan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	makespan "github.com/ifryed/makespan"
	"github.com/ifryed/makespan/schedule"
)

// bruteForceOPT exhaustively enumerates all machines^jobs assignments and
// returns the optimal makespan. Ground truth for tiny instances only.
func bruteForceOPT(costs [][]float64) float64 {
	machines, jobs := len(costs), len(costs[0])
	assign := make([]int, jobs)
	best := -1.0

	var walk func(j int)
	walk = func(j int) {
		if j == jobs {
			loads := make([]float64, machines)
			for ji, mi := range assign {
				loads[mi] += costs[mi][ji]
			}
			span := 0.0
			for _, l := range loads {
				if l > span {
					span = l
				}
			}
			if best < 0 || span < best {
				best = span
			}

			return
		}
		for mi := 0; mi < machines; mi++ {
			assign[j] = mi
			walk(j + 1)
		}
	}
	walk(0)

	return best
}

// approxOptions returns Options routed to the LP-driven solver.
func approxOptions() makespan.Options {
	opts := makespan.DefaultOptions()
	opts.Algo = makespan.AlgoApprox

	return opts
}

// requireValidAssignment asserts full job coverage with no split jobs.
func requireValidAssignment(t *testing.T, s *schedule.Schedule) {
	t.Helper()
	for j := 0; j < s.Jobs(); j++ {
		owners := 0
		for m := 0; m < s.Machines(); m++ {
			if s.Assigned(m, j) {
				owners++
			}
		}
		require.Equal(t, 1, owners, "job %d must have exactly one machine", j)
	}
}

// TestApproxNilSchedule rejects a nil schedule.
func TestApproxNilSchedule(t *testing.T) {
	require.ErrorIs(t, makespan.Approx(nil, approxOptions()), makespan.ErrNilSchedule)
}

// TestApproxWithinTwiceOPT verifies the approximation guarantee against
// exhaustive ground truth on small instances.
func TestApproxWithinTwiceOPT(t *testing.T) {
	cases := []struct {
		name  string
		costs [][]float64
	}{
		{"2x2_diag", [][]float64{{1, 2}, {2, 1}}},
		{"3x3_diag", [][]float64{{1, 2, 3}, {2, 1, 3}, {3, 2, 1}}},
		{"3x3_fractional", [][]float64{{0.5, 1, 0.25}, {2, 0.5, 0.8}, {0.6, 2, 1}}},
		{"4x4_mixed", [][]float64{{1, 5, 1, 10}, {2, 4, 4, 3}, {2, 5, 3, 3}, {3, 3, 7, 10}}},
		{"4x3_skewed", [][]float64{{1, 2, 3}, {2, 5, 3}, {1, 3, 7}, {10, 3, 10}}},
	}
	const slack = 1e-6
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSchedule(t, tc.costs)
			require.NoError(t, makespan.Approx(s, approxOptions()))
			requireValidAssignment(t, s)

			opt := bruteForceOPT(tc.costs)
			got := s.Makespan()
			require.LessOrEqual(t, got, 2*opt+slack, "2-approximation bound violated (OPT=%g)", opt)
			require.GreaterOrEqual(t, got, opt-slack, "no assignment can beat OPT=%g", opt)
		})
	}
}

// TestApproxVsGreedy pins the known outcome on a fixed instance: the
// LP-driven search does not lose to the greedy baseline here.
func TestApproxVsGreedy(t *testing.T) {
	costs := [][]float64{{1, 2, 5}, {2, 2, 1}, {2, 3, 5}}

	gs := newSchedule(t, costs)
	require.NoError(t, makespan.Greedy(gs, makespan.DefaultOptions()))

	as := newSchedule(t, costs)
	require.NoError(t, makespan.Approx(as, approxOptions()))

	require.LessOrEqual(t, as.Makespan(), gs.Makespan()+1e-9)
}

// TestApproxIntegrality: the final state is fully integral - every cell is
// a plain boolean commitment, expressed as exactly jobs committed pairs.
func TestApproxIntegrality(t *testing.T) {
	costs := [][]float64{{1, 2}, {2, 1}}
	s := newSchedule(t, costs)
	require.NoError(t, makespan.Approx(s, approxOptions()))

	require.Len(t, s.Pairs(), s.Jobs(), "exactly one committed pair per job")
}

// TestApproxZeroCosts handles the degenerate all-zero matrix: any full
// assignment is optimal at makespan 0.
func TestApproxZeroCosts(t *testing.T) {
	s := newSchedule(t, [][]float64{{0, 0}, {0, 0}})
	require.NoError(t, makespan.Approx(s, approxOptions()))

	requireValidAssignment(t, s)
	require.Equal(t, 0.0, s.Makespan())
}

// TestApproxSingleMachine: with one machine the only assignment is "all jobs
// on it"; the approximation must return exactly that.
func TestApproxSingleMachine(t *testing.T) {
	s := newSchedule(t, [][]float64{{2, 3, 4}})
	require.NoError(t, makespan.Approx(s, approxOptions()))

	requireValidAssignment(t, s)
	require.Equal(t, 9.0, s.Makespan())
}
