package makespan

import (
	"github.com/willauld/lpsimplex"

	"github.com/ifryed/makespan/schedule"
)

// pairVar ties one LP column to its (machine, job) cell.
type pairVar struct {
	machine int
	job     int
}

// feasibleAt is the LP feasibility oracle: it reports whether a fractional
// assignment with makespan at most bound exists, and if so returns the
// fractional solution as a machines x jobs table (zero outside eligible
// pairs).
//
// Construction:
//  1. Eligibility prefilter: variable x[m][j] exists only when
//     cost(m,j) <= bound. A job with no eligible machine makes the bound
//     infeasible outright - no LP is built or solved.
//  2. Per job j: sum over eligible machines of x[m][j] == 1.
//  3. Per machine m: sum over eligible jobs of cost(m,j)*x[m][j] <= bound.
//  4. Objective: minimize total assigned cost. Any linear objective works -
//     what matters is that simplex lands on a vertex of the restricted
//     polytope, whose basic support has at most jobs+machines nonzero
//     columns. That sparsity is exactly what the rounding step needs.
//
// x <= 1 needs no explicit rows: each job equality over non-negative
// variables already caps every variable at 1, and lpsimplex defaults to
// x >= 0 bounds.
//
// Solver non-success of any kind (infeasible, iteration limit, numerical
// trouble) is reported as "infeasible at this bound" - the binary search
// treats it as a control-flow signal, never an error.
//
// Complexity: LP construction O(machines*jobs); the solve is delegated.
func feasibleAt(s *schedule.Schedule, bound float64, opts Options) ([][]float64, bool) {
	machines, jobs := s.Machines(), s.Jobs()

	// 1) Collect eligible pairs, bucketed per job and per machine.
	vars := make([]pairVar, 0, machines*jobs)
	perJob := make([][]int, jobs)
	perMachine := make([][]int, machines)
	for j := 0; j < jobs; j++ {
		for m := 0; m < machines; m++ {
			c, _ := s.Cost(m, j) // indices in range by construction
			if c <= bound {
				idx := len(vars)
				vars = append(vars, pairVar{machine: m, job: j})
				perJob[j] = append(perJob[j], idx)
				perMachine[m] = append(perMachine[m], idx)
			}
		}
		if len(perJob[j]) == 0 {
			opts.Logger.Debug().Int("job", j).Float64("bound", bound).
				Msg("no eligible machine for job; bound infeasible")

			return nil, false
		}
	}

	// 2) Objective: minimize total assigned cost.
	n := len(vars)
	obj := make([]float64, n)
	for idx, pv := range vars {
		obj[idx], _ = s.Cost(pv.machine, pv.job)
	}

	// 3) Equalities: each job fully covered fractionally.
	aEq := make([][]float64, jobs)
	bEq := make([]float64, jobs)
	for j := 0; j < jobs; j++ {
		row := make([]float64, n)
		for _, idx := range perJob[j] {
			row[idx] = 1
		}
		aEq[j] = row
		bEq[j] = 1
	}

	// 4) Inequalities: each machine's eligible load stays within the bound.
	aUb := make([][]float64, machines)
	bUb := make([]float64, machines)
	for m := 0; m < machines; m++ {
		row := make([]float64, n)
		for _, idx := range perMachine[m] {
			row[idx] = obj[idx] // cost coefficient of that pair
		}
		aUb[m] = row
		bUb[m] = bound
	}

	// 5) Delegate to the external simplex engine.
	res := lpsimplex.LPSimplex(obj, aUb, bUb, aEq, bEq, nil,
		lpsimplex.Callbackfunc(nil), false, opts.SolverMaxIter, opts.SolverTol, false)
	if !res.Success {
		// Numerical failure and genuine infeasibility collapse to the same
		// outcome for the driver; leave a trace for diagnosis.
		opts.Logger.Warn().Float64("bound", bound).Str("status", res.Message).
			Msg("LP solver returned non-success; treating bound as infeasible")

		return nil, false
	}

	// 6) Scatter the vertex solution back into matrix shape.
	frac := make([][]float64, machines)
	for m := range frac {
		frac[m] = make([]float64, jobs)
	}
	for idx, v := range res.X {
		frac[vars[idx].machine][vars[idx].job] = v
	}

	return frac, true
}
