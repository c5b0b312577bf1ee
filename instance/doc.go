// Package instance generates random problem instances for the scheduling
// and allocation experiments built on this library.
//
// Random samples an agents x items valuation structure:
//
//   - integer agent/item capacities drawn uniformly from closed bounds;
//   - per-item base values drawn uniformly and normalized so each row sums
//     (after rounding) to a configured total - this keeps valuations
//     comparable across agents;
//   - per-agent subjective ratios multiplied onto the base values before
//     re-normalization, so agents agree on which items are valuable but
//     disagree on how much, by a controllable noise level.
//
// The scheduling core treats the valuation matrix as a plain cost matrix
// via Costs(); capacities exist for higher-level allocation consumers.
//
// Determinism is explicit: stochastic generation requires a seeded source
// (WithSeed or WithRand), and a fixed seed reproduces the instance exactly.
// No hidden globals; everything flows through the options.
package instance
