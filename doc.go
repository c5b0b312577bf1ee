// Package makespan solves the minimum-makespan problem on unrelated
// machines: given a matrix of processing costs (rows = machines, columns =
// jobs), assign every job to exactly one machine while keeping the maximum
// machine load as small as possible.
//
// Exact optimization is NP-hard, so the package ships two solvers:
//
//   - Greedy: jobs in column order, each to the machine minimizing
//     cost + current load. Fast, and at most a factor 2 from optimal in the
//     classic worst case.
//   - Approx: the Lenstra-Shmoys-Tardos 2-approximation. A binary search
//     over candidate makespan bounds drives an LP feasibility oracle
//     (restricted to machine-job pairs cheap enough for the bound, solved
//     with lpsimplex), and each feasible fractional solution is rounded to
//     an integral assignment by maximum matching on its bipartite support
//     graph - preserving the 2*OPT guarantee.
//
// Supporting packages:
//
//	matrix/   - dense cost-matrix primitive
//	schedule/ - mutable assignment state + result-extraction strategies
//	matching/ - bipartite components & maximum matching engine
//	instance/ - random problem-instance generator
//
// Quick example:
//
//	costs, _ := matrix.NewDenseFrom([][]float64{{1, 2, 5}, {2, 2, 1}, {2, 3, 5}})
//	res, err := makespan.Solve(costs, schedule.MakespanExtractor{}, makespan.DefaultOptions())
//	// res.Makespan == 3 for the greedy default
//
// Runs are single-threaded and synchronous: no goroutines, no cancellation
// mid-search. A cost matrix may feed many concurrent runs as long as each
// run owns its own Schedule. Callers that need bounded latency wrap an
// entire run with their own timeout.
package makespan
