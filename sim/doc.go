// Package sim runs protocol agents against problem instances and
// aggregates the outcomes.
//
// What:
//   - Factory: how to build one protocol agent for one variable; ready
//     factories for all three protocols, seeded per agent.
//   - Run: bind an instance to freshly built agents, bootstrap the
//     neighbor value exchange, and step the kernel for a fixed number
//     of rounds while sampling the global cost.
//   - Result / MeanCosts: per-round cost and delivery curves, averaged
//     across repeated runs.
//   - Experiment: a YAML-described grid of graphs × algorithms × runs,
//     fanned out per run, exported as one CSV per graph.
//
// Determinism:
//   - Each agent's RNG is seeded from the run's base seed offset by a
//     hash of the agent ID, so results do not depend on construction
//     order. A fixed config therefore reproduces every curve exactly;
//     only run IDs (UUIDs) differ between invocations.
//
// Errors:
//   - Sentinels ErrNilInstance, ErrNilFactory, ErrBadRounds, ErrBadConfig;
//     agent construction and generator failures are wrapped with %w.
package sim
