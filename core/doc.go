// Package core provides the synchronous message-passing kernel that every
// distopt protocol runs on: immutable messages, the polymorphic Agent
// contract, per-agent mailboxes, and the Environment that drives global
// rounds.
//
// # What
//
//   - Message: an immutable envelope (sender, receiver, payload).
//   - Agent: the per-round lifecycle contract —
//     Compute() collects outgoing messages, UpdateState() commits staged
//     changes, Receive() appends to the mailbox, ClearMailbox() empties it.
//   - Mailbox: an embeddable base supplying ID/Receive/ClearMailbox/Inbox.
//   - Environment: the agent registry plus a monotone round counter;
//     Step() executes one global round.
//   - Scheduler: an optional execution-order policy for the compute phase.
//
// # Round semantics (the core correctness property)
//
// Environment.Step performs, in order:
//
//  1. Compute on every registered agent, collecting ALL emitted messages
//     into one batch before anything is delivered.
//  2. Delivery of the whole batch into recipients' mailboxes. A message
//     addressed to an unregistered ID is dropped with a warning — never
//     a round failure.
//  3. UpdateState then ClearMailbox on every agent.
//  4. Round counter increment.
//
// Because no message is delivered until every Compute has returned, and no
// committed state changes until every message is delivered, all agents in a
// round observe the same snapshot of pre-round state. Protocols may rely on
// the full batch being visible before the next round's Compute, and on
// nothing else: delivery order within a round is unspecified.
//
// # Determinism
//
// Compute calls are issued in sorted-ID order (or the Scheduler's order if
// one is attached). Since Compute reads only pre-round state, ordering has
// no semantic effect; it exists so that logs and interleavings are
// reproducible across runs.
//
// # Concurrency
//
// A round is a small, bounded, side-effect-free batch executed on the
// caller's goroutine. Agents never share mutable state — all cross-agent
// communication is message copies in per-recipient mailboxes — so the
// kernel needs no locks. Cancellation is coarse: stop calling Step.
//
// # Errors
//
//   - ErrNilAgent / ErrEmptyAgentID  — invalid registration input.
//   - ErrDuplicateAgent              — the ID is already registered.
//   - ErrAgentNotFound               — Scheduler.SetOrder names an unknown ID.
//
// Complexity of Step: O(A + M) for A registered agents and M messages in
// the round's batch, plus O(A log A) for the deterministic ordering.
package core
