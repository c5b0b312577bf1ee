// Package schedule holds the mutable assignment state of a scheduling run
// over a fixed cost matrix.
//
// A Schedule is bound to one cost matrix (rows = machines, columns = jobs,
// entries = non-negative processing costs) for its whole lifetime. The only
// mutations are Assign, which commits a single (machine, job) cell and fails
// on duplicates, and Reset, which clears every cell. Derived quantities
// (per-machine load, makespan) are computed on demand from the committed
// cells, never cached.
//
// Result extraction is a strategy: Extractor has two implementations,
// MakespanExtractor for callers that only need the objective value and
// PairsExtractor for callers that need the explicit assignment mapping.
//
// Concurrency: a Schedule must be owned by a single run. The underlying cost
// matrix is snapshotted at construction, so one matrix.Matrix may safely feed
// many concurrent runs as long as each run builds its own Schedule.
package schedule
