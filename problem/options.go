// SPDX-License-Identifier: MIT
// Package: distopt/problem
//
// options.go — functional options for the generators.
//
// Contract:
//   - Option constructors validate and panic on meaningless input
//     (nil function, nil RNG); generators themselves never panic.
//   - Determinism is explicit: seed via WithSeed or WithRand.

package problem

import (
	"math/rand"
	"strconv"
)

// Default cost bounds for priced value pairs: uniform in [lb, ub).
const (
	defaultCostLB = 100.0
	defaultCostUB = 200.0
)

// IDFn derives an agent ID from its zero-based index. Must be pure and
// deterministic.
type IDFn func(idx int) string

// DefaultIDFn labels agents "a0", "a1", ...
func DefaultIDFn(idx int) string {
	return "a" + strconv.Itoa(idx)
}

// Option customizes a generator run.
type Option func(*genConfig)

type genConfig struct {
	rng    *rand.Rand
	idFn   IDFn
	costLB float64
	costUB float64
}

func newGenConfig(opts []Option) genConfig {
	cfg := genConfig{
		idFn:   DefaultIDFn,
		costLB: defaultCostLB,
		costUB: defaultCostUB,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible runs.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("problem: WithRand(nil)")
	}

	return func(c *genConfig) { c.rng = r }
}

// WithSeed creates a fresh deterministic RNG seeded with seed.
func WithSeed(seed int64) Option {
	return func(c *genConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}

// WithIDScheme overrides the agent ID generator. Panics on nil.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("problem: WithIDScheme(nil)")
	}

	return func(c *genConfig) { c.idFn = fn }
}

// WithCostRange sets the half-open sampling interval [lb, ub) for priced
// value pairs. Validated by the generator: lb >= ub is ErrBadCostRange.
func WithCostRange(lb, ub float64) Option {
	return func(c *genConfig) { c.costLB, c.costUB = lb, ub }
}
