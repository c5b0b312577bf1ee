package makespan_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	makespan "github.com/ifryed/makespan"
	"github.com/ifryed/makespan/matrix"
	"github.com/ifryed/makespan/schedule"
)

// newSchedule builds a Schedule over a literal cost table.
func newSchedule(t *testing.T, costs [][]float64) *schedule.Schedule {
	t.Helper()
	m, err := matrix.NewDenseFrom(costs)
	require.NoError(t, err)
	s, err := schedule.New(m)
	require.NoError(t, err)

	return s
}

// TestGreedyNilSchedule rejects a nil schedule.
func TestGreedyNilSchedule(t *testing.T) {
	err := makespan.Greedy(nil, makespan.DefaultOptions())
	require.ErrorIs(t, err, makespan.ErrNilSchedule)
}

// TestGreedyMakespan checks the greedy objective on known instances.
func TestGreedyMakespan(t *testing.T) {
	cases := []struct {
		name  string
		costs [][]float64
		want  float64
	}{
		{"3x3_classic", [][]float64{{1, 2, 5}, {2, 2, 1}, {2, 3, 5}}, 3},
		{"3x3_ties", [][]float64{{1, 2, 1}, {4, 2, 4}, {2, 3, 2}}, 2},
		{"4x3", [][]float64{{1, 2, 1}, {4, 2, 4}, {2, 3, 2}, {3, 1, 2}}, 2},
		{"4x4", [][]float64{{1, 5, 1, 10}, {2, 4, 4, 3}, {2, 5, 3, 3}, {3, 3, 7, 10}}, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := newSchedule(t, tc.costs)
			require.NoError(t, makespan.Greedy(s, makespan.DefaultOptions()))
			require.Equal(t, tc.want, s.Makespan())
		})
	}
}

// TestGreedyPairs checks the exact assignment, including first-minimum tie
// breaking toward the lowest machine index.
func TestGreedyPairs(t *testing.T) {
	s := newSchedule(t, [][]float64{{1, 2, 5}, {2, 2, 1}, {2, 3, 5}})
	require.NoError(t, makespan.Greedy(s, makespan.DefaultOptions()))

	require.Equal(t, []schedule.Pair{
		{Machine: 0, Job: 0},
		{Machine: 1, Job: 1},
		{Machine: 1, Job: 2},
	}, s.Pairs())
}

// TestGreedyIdenticalMachines: with identical unit costs, greedy balances
// jobs across machines, so makespan = ceil(jobs/machines).
func TestGreedyIdenticalMachines(t *testing.T) {
	s := newSchedule(t, [][]float64{
		{1, 1, 1, 1},
		{1, 1, 1, 1},
	})
	require.NoError(t, makespan.Greedy(s, makespan.DefaultOptions()))
	require.Equal(t, 2.0, s.Makespan(), "4 unit jobs over 2 identical machines split 2/2")
}

// TestGreedyCoverage: every job ends up on exactly one machine.
func TestGreedyCoverage(t *testing.T) {
	costs := [][]float64{{3, 1, 4, 1, 5}, {9, 2, 6, 5, 3}, {5, 8, 9, 7, 9}}
	s := newSchedule(t, costs)
	require.NoError(t, makespan.Greedy(s, makespan.DefaultOptions()))

	for j := 0; j < s.Jobs(); j++ {
		owners := 0
		for m := 0; m < s.Machines(); m++ {
			if s.Assigned(m, j) {
				owners++
			}
		}
		require.Equal(t, 1, owners, "job %d", j)
	}
}
