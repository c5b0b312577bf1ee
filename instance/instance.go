// Package instance - random instance sampling.
//
// The generation pipeline mirrors the fair course-allocation experiments:
// base item values fix a common ranking, per-agent subjective ratios add
// controlled disagreement, and every row is normalized to the same rounded
// sum so agents' valuations are mutually comparable.

package instance

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/ifryed/makespan/matrix"
)

// Instance is one sampled problem: an agents x items valuation matrix with
// per-agent and per-item integer capacities.
type Instance struct {
	// Valuations holds rounded normalized values, rows = agents, cols = items.
	Valuations *matrix.Dense

	// AgentCapacities[a] is the number of items agent a can take.
	AgentCapacities []int

	// ItemCapacities[i] is the number of agents item i can serve.
	ItemCapacities []int
}

// Random samples a fresh instance with the given shape.
//
// Contract:
//   - agents >= 1 (ErrTooFewAgents), items >= 1 (ErrTooFewItems);
//   - a random source must be supplied via WithSeed/WithRand
//     (ErrNeedRandSource);
//   - all bounds must be well-formed (ErrInvalidBounds).
//
// Sampling order is fixed (capacities, base values, per-agent rows), so a
// fixed seed reproduces the instance bit for bit.
// Complexity: O(agents*items).
func Random(agents, items int, opts ...Option) (*Instance, error) {
	if agents < 1 {
		return nil, fmt.Errorf("agents=%d: %w", agents, ErrTooFewAgents)
	}
	if items < 1 {
		return nil, fmt.Errorf("items=%d: %w", items, ErrTooFewItems)
	}
	cfg := newConfig(opts...)
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	inst := &Instance{
		AgentCapacities: intsBetween(cfg.rng, agents, cfg.agentCapacityLo, cfg.agentCapacityHi),
		ItemCapacities:  intsBetween(cfg.rng, items, cfg.itemCapacityLo, cfg.itemCapacityHi),
	}

	// Common base values establish the shared item ranking.
	baseDist := distuv.Uniform{Min: cfg.baseValueLo, Max: cfg.baseValueHi, Src: cfg.rng}
	base := make([]float64, items)
	for i := range base {
		base[i] = baseDist.Rand()
	}
	base = normalized(base, cfg.normalizedSum)

	// Per-agent rows: subjective ratio noise, then re-normalization.
	vals, err := matrix.NewDense(agents, items)
	if err != nil {
		return nil, err
	}
	ratioDist := distuv.Uniform{Min: cfg.ratioLo, Max: cfg.ratioHi, Src: cfg.rng}
	row := make([]float64, items)
	for a := 0; a < agents; a++ {
		for i := range row {
			row[i] = base[i] * ratioDist.Rand()
		}
		for i, v := range normalized(row, cfg.normalizedSum) {
			if err = vals.Set(a, i, v); err != nil {
				return nil, err
			}
		}
	}
	inst.Valuations = vals

	return inst, nil
}

// Agents returns the number of agents (valuation rows). Complexity: O(1).
func (in *Instance) Agents() int { return in.Valuations.Rows() }

// Items returns the number of items (valuation columns). Complexity: O(1).
func (in *Instance) Items() int { return in.Valuations.Cols() }

// Costs exposes the valuation matrix as a plain cost matrix for the
// scheduling core. The returned Matrix is the live valuation table, not a
// copy - schedule.New snapshots it anyway.
func (in *Instance) Costs() matrix.Matrix { return in.Valuations }

// MeanValue returns the mean of all valuation entries.
// Complexity: O(agents*items).
func (in *Instance) MeanValue() float64 { return stat.Mean(in.flatValues(), nil) }

// StdDevValue returns the sample standard deviation of all valuation
// entries. Complexity: O(agents*items).
func (in *Instance) StdDevValue() float64 { return stat.StdDev(in.flatValues(), nil) }

// flatValues copies the valuation table into one flat slice for the
// gonum/stat helpers.
func (in *Instance) flatValues() []float64 {
	out := make([]float64, 0, in.Agents()*in.Items())
	for a := 0; a < in.Agents(); a++ {
		for i := 0; i < in.Items(); i++ {
			v, _ := in.Valuations.At(a, i) // in range by construction
			out = append(out, v)
		}
	}

	return out
}

// intsBetween draws n integers uniformly from the closed interval [lo, hi].
func intsBetween(rng *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.Intn(hi-lo+1)
	}

	return out
}

// normalized scales raw so its sum hits target, then rounds each entry to
// the nearest integer (valuations are integral by convention; the rounded
// row sum may drift from target by at most len(raw)/2).
func normalized(raw []float64, target float64) []float64 {
	total := floats.Sum(raw)
	out := make([]float64, len(raw))
	for i, v := range raw {
		out[i] = math.Round(v * target / total)
	}

	return out
}
