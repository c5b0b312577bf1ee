// Package matrix provides the dense numeric table that the scheduling
// packages build on.
//
// The matrix package provides:
//
//   - A small Matrix interface with capability-queryable shape (Rows, Cols)
//     and bounds-checked element access (At, Set).
//   - Dense, a row-major float64 implementation backed by a flat slice for
//     cache friendliness.
//   - NewDenseFrom for ingesting literal [][]float64 tables with strict
//     shape and numeric validation (ragged rows and NaN/Inf are rejected).
//
// A cost matrix for unrelated-machines scheduling is simply a Dense with
// rows = machines and columns = jobs; domain constraints beyond finiteness
// (such as non-negative costs) are enforced by the consuming packages.
//
// All public entry points return sentinel errors and never panic on user
// input. See the examples in this package and in schedule for usage.
package matrix
