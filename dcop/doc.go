// Package dcop implements three local-search protocols for Distributed
// Constraint Optimization Problems on top of the core message-passing
// kernel: DSA-C, MGM and MGM-2.
//
// # Model
//
// Every agent owns one variable over a finite ordered domain of Values.
// Pairwise constraints assign a non-negative cost to each (own value,
// neighbor value) combination; each endpoint holds its own directed copy
// of the table (nothing is auto-symmetrized). An agent's utility for a
// candidate value is the negated sum of constraint costs against its
// cached neighbor values:
//
//	Utility(v) = -Σ cost(v, lastKnown(neighbor))
//
// Neighbors whose value is not yet known contribute zero — an optimistic
// cold-start default, not an error — and a missing table entry is cost 0
// ("no constraint"). Utilities are compared as higher-is-better, so all
// three protocols maximize utility, i.e. minimize cost. The cache may be
// stale by exactly one round; that staleness is a property of the
// synchronous protocol, not a bug.
//
// # Protocols
//
//   - DSA-C (single phase): each round, find the best value; on strict
//     improvement, move with activation probability p. Never terminates on
//     its own — run it for a fixed number of rounds and watch the global
//     cost from outside.
//
//   - MGM (value → gain cycle): agents exchange values and their best
//     achievable gain; only the agent whose gain is strictly greater than
//     every neighbor's commits. Equal gains block both movers, which makes
//     the global cost monotonically non-increasing and guarantees at most
//     one committer per neighborhood per cycle.
//
//   - MGM-2 (value → offer → accept → evaluate cycle): extends MGM with
//     coordinated pairwise moves. Agents draw an offerer/receiver role;
//     offerers propose their best joint value pair to one neighbor,
//     receivers accept the best offer only when its combined gain beats
//     their own unilateral option, and evaluate commits either the agreed
//     bilateral move or an MGM-style unilateral one. The offerer ranks
//     joint moves by its OWN utility — the neighbor's true benefit is not
//     locally verifiable — and stands in its own domain for the
//     neighbor's. Both are deliberate approximations carried over from
//     the protocol's standard formulation; do not "fix" them.
//
// # Commit discipline
//
// Compute only stages decisions; UpdateState commits the staged value (at
// most one change per full phase cycle) and advances the phase machine by
// exactly one step per round. Phases are explicit enum states with a total
// transition function, so an agent can never hold an illegal phase.
//
// # Determinism
//
// Every random draw — initial value, DSA activation coin, MGM-2 role —
// flows through the *rand.Rand injected at construction (WithSeed /
// WithRand; a fixed default seed otherwise). Same seeds, same trajectory.
//
// # Errors
//
//   - ErrEmptyAgentID      — constructor given an empty ID.
//   - ErrEmptyDomain       — constructor given no candidate values.
//   - ErrInvalidProbability — p outside [0,1].
//   - ErrValueNotInDomain  — WithInitialValue names a foreign value.
//   - ErrOptionViolation   — an option received a meaningless argument.
//
// Complexity per round and agent: O(M + |D|·N) for DSA/MGM and
// O(M + |D|²·N) for MGM-2's offer search, with M mailbox messages,
// |D| domain values and N neighbors.
package dcop
