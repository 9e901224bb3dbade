// SPDX-License-Identifier: MIT
// Package: distopt/problem
//
// generators.go — random problem-instance generators.
//
// Canonical model: Erdős–Rényi topology — every unordered agent pair
// {i, j} with i < j carries a constraint independently with probability
// density. Table entries are emitted in ascending (own, neighbor) value
// order so a fixed seed reproduces the instance exactly.

package problem

import (
	"fmt"

	"github.com/katalvlaran/distopt/dcop"
)

const (
	methodUniformRandom = "UniformRandom"
	methodGraphColoring = "GraphColoring"

	minAgents     = 2
	minDomainSize = 2
	densityMin    = 0.0
	densityMax    = 1.0
)

// UniformRandom generates an instance where every value pair of every
// sampled edge gets a cost drawn uniformly from [lb, ub).
// Complexity: O(n² · |D|²) in the worst case (density 1).
func UniformRandom(n, domainSize int, density float64, opts ...Option) (*Instance, error) {
	return generate(methodUniformRandom, n, domainSize, density, opts,
		func(cfg genConfig, _, _ dcop.Value) float64 {
			return cfg.costLB + cfg.rng.Float64()*(cfg.costUB-cfg.costLB)
		})
}

// GraphColoring generates a soft graph-coloring instance over `colors`
// values per agent: equal values on an edge cost uniform [lb, ub),
// differing values cost nothing (the entry is simply absent).
// Complexity: O(n² · |D|²) in the worst case.
func GraphColoring(n, colors int, density float64, opts ...Option) (*Instance, error) {
	return generate(methodGraphColoring, n, colors, density, opts,
		func(cfg genConfig, own, neighbor dcop.Value) float64 {
			if own != neighbor {
				return 0
			}

			return cfg.costLB + cfg.rng.Float64()*(cfg.costUB-cfg.costLB)
		})
}

// generate is the shared skeleton: validate, lay out agents and domains,
// sample edges in stable (i, j) order, and price each edge's table with
// priceFn (a returned 0 means "leave the entry out").
func generate(method string, n, domainSize int, density float64, opts []Option,
	priceFn func(cfg genConfig, own, neighbor dcop.Value) float64) (*Instance, error) {
	if n < minAgents {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", method, n, minAgents, ErrTooFewAgents)
	}
	if domainSize < minDomainSize {
		return nil, fmt.Errorf("%s: domain size %d < min=%d: %w",
			method, domainSize, minDomainSize, ErrBadDomainSize)
	}
	if density < densityMin || density > densityMax {
		return nil, fmt.Errorf("%s: density=%v not in [0,1]: %w", method, density, ErrInvalidDensity)
	}

	cfg := newGenConfig(opts)
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: rng is required: %w", method, ErrNeedRandSource)
	}
	if cfg.costLB >= cfg.costUB {
		return nil, fmt.Errorf("%s: cost range [%v,%v): %w",
			method, cfg.costLB, cfg.costUB, ErrBadCostRange)
	}

	// Shared domain 1..domainSize; every agent gets its own copy so
	// callers may specialize domains afterwards without aliasing.
	values := make([]dcop.Value, domainSize)
	for i := range values {
		values[i] = dcop.Value(i + 1)
	}

	inst := &Instance{
		AgentIDs: make([]string, n),
		Domains:  make(map[string][]dcop.Value, n),
	}
	for i := 0; i < n; i++ {
		id := cfg.idFn(i)
		inst.AgentIDs[i] = id
		inst.Domains[id] = append([]dcop.Value(nil), values...)
	}

	// Edge sampling: unordered pairs {i, j}, i < j, ascending.
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if cfg.rng.Float64() >= density {
				continue
			}
			table := dcop.CostTable{}
			for _, own := range values {
				for _, neighbor := range values {
					if cost := priceFn(cfg, own, neighbor); cost != 0 {
						table[dcop.ValuePair{Own: own, Neighbor: neighbor}] = cost
					}
				}
			}
			inst.Constraints = append(inst.Constraints, Constraint{
				A:     inst.AgentIDs[i],
				B:     inst.AgentIDs[j],
				Costs: table,
			})
		}
	}

	return inst, nil
}
