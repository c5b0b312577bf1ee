// Package instance: sentinel error set.

package instance

import "errors"

var (
	// ErrTooFewAgents is returned when fewer than one agent is requested.
	ErrTooFewAgents = errors.New("instance: need at least one agent")

	// ErrTooFewItems is returned when fewer than one item is requested.
	ErrTooFewItems = errors.New("instance: need at least one item")

	// ErrInvalidBounds indicates a bounds pair with lo > hi, a negative
	// capacity bound, or a non-positive value bound.
	ErrInvalidBounds = errors.New("instance: invalid bounds")

	// ErrNeedRandSource indicates that Random was called without a seeded
	// random source. Stochastic generation never falls back to a hidden
	// global; pass WithSeed or WithRand.
	ErrNeedRandSource = errors.New("instance: random source required")
)
