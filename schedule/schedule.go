// Package schedule - assignment state over a fixed cost matrix.
//
// The Schedule snapshots the cost table once at construction (O(m*j)) and
// afterwards works on flat slices: boolean cells for commitments and the
// explicit index formula machine*jobs + job. Loop orders are fixed so
// Pairs() and load sums are deterministic.

package schedule

import (
	"fmt"

	"github.com/ifryed/makespan/matrix"
)

// Pair identifies one committed (machine, job) assignment.
type Pair struct {
	Machine int // row index into the cost matrix
	Job     int // column index into the cost matrix
}

// Schedule is the mutable assignment state of a single scheduling run.
// The zero value is not usable; build one with New.
type Schedule struct {
	machines int       // row count of the bound cost matrix
	jobs     int       // column count of the bound cost matrix
	costs    []float64 // row-major snapshot of the cost matrix
	assigned []bool    // row-major commitment cells, same shape as costs
}

// New binds a fresh, fully cleared Schedule to the given cost matrix.
//
// Contract:
//   - costs must be non-nil (ErrNilCosts);
//   - every entry must be non-negative (ErrNegativeCost).
//
// The matrix values are copied; later mutation of costs does not affect the
// Schedule. Complexity: O(machines*jobs).
func New(costs matrix.Matrix) (*Schedule, error) {
	if costs == nil {
		return nil, ErrNilCosts
	}

	m, j := costs.Rows(), costs.Cols()
	s := &Schedule{
		machines: m,
		jobs:     j,
		costs:    make([]float64, m*j),
		assigned: make([]bool, m*j),
	}
	for mi := 0; mi < m; mi++ {
		for ji := 0; ji < j; ji++ {
			v, err := costs.At(mi, ji)
			if err != nil {
				// The shape was just queried; a read failure means the
				// matrix lied about its shape. Surface it as-is.
				return nil, err
			}
			if v < 0 {
				return nil, fmt.Errorf("cost(%d,%d)=%g: %w", mi, ji, v, ErrNegativeCost)
			}
			s.costs[mi*j+ji] = v
		}
	}

	return s, nil
}

// Machines returns the number of machines (rows). Complexity: O(1).
func (s *Schedule) Machines() int { return s.machines }

// Jobs returns the number of jobs (columns). Complexity: O(1).
func (s *Schedule) Jobs() int { return s.jobs }

// Cost returns the processing cost of running job j on machine m.
// Returns ErrOutOfRange on invalid indices. Complexity: O(1).
func (s *Schedule) Cost(machine, job int) (float64, error) {
	idx, err := s.indexOf(machine, job)
	if err != nil {
		return 0, err
	}

	return s.costs[idx], nil
}

// Assigned reports whether the (machine, job) cell is committed.
// Out-of-range indices report false. Complexity: O(1).
func (s *Schedule) Assigned(machine, job int) bool {
	idx, err := s.indexOf(machine, job)
	if err != nil {
		return false
	}

	return s.assigned[idx]
}

// Assign commits job to machine.
//
// Preconditions: indices in range (ErrOutOfRange) and the cell not yet
// committed (ErrDuplicateAssignment). A duplicate is a programmer-invariant
// violation and must abort the run, never be ignored.
// Complexity: O(1).
func (s *Schedule) Assign(machine, job int) error {
	idx, err := s.indexOf(machine, job)
	if err != nil {
		return err
	}
	if s.assigned[idx] {
		return fmt.Errorf("Assign(%d,%d): %w", machine, job, ErrDuplicateAssignment)
	}
	s.assigned[idx] = true

	return nil
}

// Reset clears all assignments, returning the Schedule to its freshly built
// state. The cost snapshot is untouched. Complexity: O(machines*jobs).
func (s *Schedule) Reset() {
	for i := range s.assigned {
		s.assigned[i] = false
	}
}

// Load returns the total processing cost of the jobs committed to machine.
// Returns ErrOutOfRange on an invalid machine index.
// Complexity: O(jobs); computed on demand, never cached.
func (s *Schedule) Load(machine int) (float64, error) {
	if machine < 0 || machine >= s.machines {
		return 0, fmt.Errorf("Load(%d): %w", machine, ErrOutOfRange)
	}

	var load float64
	base := machine * s.jobs
	for ji := 0; ji < s.jobs; ji++ {
		if s.assigned[base+ji] {
			load += s.costs[base+ji]
		}
	}

	return load, nil
}

// Makespan returns the maximum load over all machines, or 0 when nothing is
// assigned. Complexity: O(machines*jobs).
func (s *Schedule) Makespan() float64 {
	var span float64
	for mi := 0; mi < s.machines; mi++ {
		load, _ := s.Load(mi) // index is in range by construction
		if load > span {
			span = load
		}
	}

	return span
}

// Pairs returns all committed (machine, job) pairs in machine-major order.
// Plain nested-loop enumeration of the Cartesian index space; determinism
// matters for result comparison in tests.
// Complexity: O(machines*jobs).
func (s *Schedule) Pairs() []Pair {
	var pairs []Pair
	for mi := 0; mi < s.machines; mi++ {
		for ji := 0; ji < s.jobs; ji++ {
			if s.assigned[mi*s.jobs+ji] {
				pairs = append(pairs, Pair{Machine: mi, Job: ji})
			}
		}
	}

	return pairs
}

// indexOf computes the flat index for (machine, job) or reports ErrOutOfRange.
// Complexity: O(1).
func (s *Schedule) indexOf(machine, job int) (int, error) {
	if machine < 0 || machine >= s.machines || job < 0 || job >= s.jobs {
		return 0, fmt.Errorf("(%d,%d): %w", machine, job, ErrOutOfRange)
	}

	return machine*s.jobs + job, nil
}
