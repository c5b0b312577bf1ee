// Package instance - functional options for the generator.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic only on programmer error
//     (nil RNG); domain errors surface as sentinels from Random.
//   - Determinism is explicit: seeding happens via WithSeed or WithRand.

package instance

import "golang.org/x/exp/rand"

// Deterministic defaults, taken from the course-allocation experiment setup:
// fixed capacities, item values in [1,1000] normalized to sum 1000, and a
// +-50% subjective noise band.
const (
	defaultAgentCapacityLo = 6
	defaultAgentCapacityHi = 6
	defaultItemCapacityLo  = 40
	defaultItemCapacityHi  = 40
	defaultBaseValueLo     = 1
	defaultBaseValueHi     = 1000
	defaultRatioLo         = 0.5
	defaultRatioHi         = 1.5
	defaultNormalizedSum   = 1000
)

// config aggregates all generator knobs. Passed by value downstream.
type config struct {
	rng *rand.Rand // nil means "no randomness available" and Random fails

	agentCapacityLo, agentCapacityHi int
	itemCapacityLo, itemCapacityHi   int

	baseValueLo, baseValueHi float64
	ratioLo, ratioHi         float64

	normalizedSum float64
}

// Option customizes the generator by mutating a config before sampling.
type Option func(*config)

// newConfig builds a config with deterministic defaults and applies all
// options in order (last wins). Complexity: O(len(opts)).
func newConfig(opts ...Option) config {
	cfg := config{
		rng:             nil,
		agentCapacityLo: defaultAgentCapacityLo,
		agentCapacityHi: defaultAgentCapacityHi,
		itemCapacityLo:  defaultItemCapacityLo,
		itemCapacityHi:  defaultItemCapacityHi,
		baseValueLo:     defaultBaseValueLo,
		baseValueHi:     defaultBaseValueHi,
		ratioLo:         defaultRatioLo,
		ratioHi:         defaultRatioHi,
		normalizedSum:   defaultNormalizedSum,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG for sampling.
// Panics on nil to surface programmer error early; prefer WithSeed for
// reproducible fixtures.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("instance: WithRand(nil)")
	}

	return func(c *config) { c.rng = r }
}

// WithSeed creates a fresh deterministic RNG from the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithAgentCapacityBounds sets the closed interval for agent capacities.
func WithAgentCapacityBounds(lo, hi int) Option {
	return func(c *config) { c.agentCapacityLo, c.agentCapacityHi = lo, hi }
}

// WithItemCapacityBounds sets the closed interval for item capacities.
func WithItemCapacityBounds(lo, hi int) Option {
	return func(c *config) { c.itemCapacityLo, c.itemCapacityHi = lo, hi }
}

// WithBaseValueBounds sets the closed interval for per-item base values.
func WithBaseValueBounds(lo, hi float64) Option {
	return func(c *config) { c.baseValueLo, c.baseValueHi = lo, hi }
}

// WithSubjectiveRatioBounds sets the closed interval for the per-agent
// subjective multipliers. [1-r, 1+r] gives a symmetric noise band of
// strength r; [1, 1] makes all agents identical.
func WithSubjectiveRatioBounds(lo, hi float64) Option {
	return func(c *config) { c.ratioLo, c.ratioHi = lo, hi }
}

// WithNormalizedSum sets the target sum every agent's valuation row is
// normalized to before rounding.
func WithNormalizedSum(sum float64) Option {
	return func(c *config) { c.normalizedSum = sum }
}

// validate checks the config's domain constraints, returning sentinels.
func (c config) validate() error {
	if c.rng == nil {
		return ErrNeedRandSource
	}
	if c.agentCapacityLo < 0 || c.agentCapacityLo > c.agentCapacityHi {
		return ErrInvalidBounds
	}
	if c.itemCapacityLo < 0 || c.itemCapacityLo > c.itemCapacityHi {
		return ErrInvalidBounds
	}
	if c.baseValueLo <= 0 || c.baseValueLo > c.baseValueHi {
		return ErrInvalidBounds
	}
	if c.ratioLo <= 0 || c.ratioLo > c.ratioHi {
		return ErrInvalidBounds
	}
	if c.normalizedSum <= 0 {
		return ErrInvalidBounds
	}

	return nil
}
