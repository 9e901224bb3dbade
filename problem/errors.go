// SPDX-License-Identifier: MIT
// Package: distopt/problem
//
// errors.go — sentinel errors for the problem package.
//
// Error policy (strict):
//   - Only package-level sentinels are exposed; callers branch with
//     errors.Is.
//   - Generators attach parameter context via %w wrapping; sentinels
//     themselves stay bare.
//   - Option constructors validate and panic on meaningless input
//     (programmer error); generators never panic at runtime.

package problem

import "errors"

// ErrTooFewAgents indicates a generator was asked for fewer agents than
// a pairwise-constraint problem can hold.
var ErrTooFewAgents = errors.New("problem: too few agents")

// ErrBadDomainSize indicates a per-agent domain with fewer than two
// candidate values; nothing could ever move.
var ErrBadDomainSize = errors.New("problem: domain size too small")

// ErrInvalidDensity indicates an edge density outside the closed
// interval [0,1].
var ErrInvalidDensity = errors.New("problem: density out of range")

// ErrNeedRandSource indicates a stochastic generator was invoked without
// an explicit RNG (WithSeed or WithRand must be given).
var ErrNeedRandSource = errors.New("problem: rng is required")

// ErrBadCostRange indicates WithCostRange bounds with lb >= ub.
var ErrBadCostRange = errors.New("problem: invalid cost range")
