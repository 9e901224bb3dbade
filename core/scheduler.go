package core

import "fmt"

// Scheduler is an optional execution-order policy: it decides which agents
// run first within the compute phase. Since every Compute in a round reads
// only pre-round state, the order has no effect on protocol outcomes — it
// exists for reproducible logs and traces, not semantics.
type Scheduler struct {
	env   *Environment
	order []string
}

// NewScheduler creates a scheduler over env, seeded with the current
// registry in sorted-ID order.
func NewScheduler(env *Environment) *Scheduler {
	return &Scheduler{env: env, order: env.AgentIDs()}
}

// SetOrder replaces the execution order. Every listed ID must currently be
// registered; an unknown ID fails with ErrAgentNotFound and leaves the
// previous order intact.
func (s *Scheduler) SetOrder(order []string) error {
	for _, id := range order {
		if _, ok := s.env.Agent(id); !ok {
			return fmt.Errorf("%w: %q", ErrAgentNotFound, id)
		}
	}
	s.order = append(s.order[:0:0], order...)

	return nil
}

// Order returns the current execution order. The returned slice is the
// scheduler's own; callers must not mutate it.
func (s *Scheduler) Order() []string { return s.order }
