// SPDX-License-Identifier: MIT
// Package: distopt/problem
//
// Package problem models constraint-optimization problem instances and
// generates random ones for benchmarks.
//
// What:
//   - Instance: agent IDs, per-agent value domains, and pairwise cost
//     constraints stored once per undirected edge.
//   - Generators: UniformRandom (every value pair priced) and
//     GraphColoring (only equal values are priced) over an Erdős–Rényi
//     topology with a given edge density.
//
// Why:
//   - Protocol agents (package dcop) only ever see their own directed
//     slice of the problem; something has to hold the global ground
//     truth to evaluate assignments against. That is Instance.
//
// Determinism:
//   - Stochastic generators demand an explicit RNG (WithSeed/WithRand)
//     and fail with ErrNeedRandSource otherwise; no global rand, ever.
//   - Stable emission order: agents by ascending index, edges by
//     ascending (i, j) pair, table entries by ascending value pair.
//     Same seed and parameters ⇒ byte-identical instance.
//
// Errors:
//   - Only package sentinels are returned (ErrTooFewAgents,
//     ErrBadDomainSize, ErrInvalidDensity, ErrNeedRandSource,
//     ErrBadCostRange); branch with errors.Is.
package problem
