// Package distopt is a synchronous multi-agent simulation toolkit for
// Distributed Constraint Optimization Problems (DCOPs): agents own
// variables, pairwise constraints price value combinations, and agents
// converge on a low-cost joint assignment through local message exchange.
//
// What you get:
//
//   - A round-driven message-passing kernel: mailboxes, an agent registry,
//     and a two-phase compute/commit step loop (core/)
//   - Three local-search protocols built on it: DSA-C, MGM and MGM-2 (dcop/)
//   - Random problem-instance generators and a global cost evaluator (problem/)
//   - An experiment harness: bootstrap, run loop, per-round metrics,
//     multi-run averaging and CSV export (sim/)
//   - A small CLI for one-off runs and algorithm comparisons (cmd/distopt)
//
// Why choose distopt?
//
//   - Deterministic by construction – every random draw flows through an
//     injected *rand.Rand; same seed, same trajectory
//   - Strict round semantics – all agents observe the same pre-round
//     snapshot; commits happen only after every compute has been collected
//   - Pure Go kernel – no network, no cgo, no hidden globals
//
// Quick sketch (two agents, one constraint):
//
//	A ───(cost table)─── B
//
//	env := core.NewEnvironment()
//	a, _ := dcop.NewMGM("A", []dcop.Value{1, 2, 3})
//	b, _ := dcop.NewMGM("B", []dcop.Value{1, 2, 3})
//	a.AddConstraint("B", costs)
//	b.AddConstraint("A", reversed)
//	_ = env.Register(a)
//	_ = env.Register(b)
//	env.Step() // one full round: compute → deliver → commit → clear
//
// See each subpackage's doc.go for contracts, invariants and complexity.
package distopt
