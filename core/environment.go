package core

import (
	"errors"
	"log/slog"
	"sort"
)

// Sentinel errors for kernel operations.
var (
	// ErrNilAgent indicates Register was called with a nil agent.
	ErrNilAgent = errors.New("core: agent is nil")

	// ErrEmptyAgentID indicates an agent reported an empty ID.
	ErrEmptyAgentID = errors.New("core: agent ID is empty")

	// ErrDuplicateAgent indicates the ID is already registered.
	ErrDuplicateAgent = errors.New("core: duplicate agent ID")

	// ErrAgentNotFound indicates an operation referenced an unregistered ID.
	ErrAgentNotFound = errors.New("core: agent not found")
)

// EnvOption configures an Environment before use.
type EnvOption func(*Environment)

// WithLogger routes kernel diagnostics (dropped messages) to the given
// structured logger. Nil is ignored; the default is slog.Default().
func WithLogger(l *slog.Logger) EnvOption {
	return func(e *Environment) {
		if l != nil {
			e.log = l
		}
	}
}

// Environment owns the agent registry and drives synchronous rounds.
// It carries no domain semantics: it is a pure router and round driver.
//
// Environment is not safe for concurrent use; a simulation runs its rounds
// from a single goroutine (see package doc, Concurrency).
type Environment struct {
	agents map[string]Agent
	sched  *Scheduler // optional compute-order policy
	round  int
	log    *slog.Logger
}

// NewEnvironment creates an empty environment at round 0.
func NewEnvironment(opts ...EnvOption) *Environment {
	e := &Environment{
		agents: make(map[string]Agent),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Register adds an agent to the environment.
// Returns ErrNilAgent, ErrEmptyAgentID, or ErrDuplicateAgent on invalid
// input; a failed registration never corrupts the registry.
func (e *Environment) Register(a Agent) error {
	if a == nil {
		return ErrNilAgent
	}
	id := a.ID()
	if id == "" {
		return ErrEmptyAgentID
	}
	if _, exists := e.agents[id]; exists {
		return ErrDuplicateAgent
	}
	e.agents[id] = a

	return nil
}

// Deregister removes the agent with the given ID, reporting whether it was
// present. Messages already addressed to the ID are dropped (with a
// warning) at delivery time — removal never aborts a round.
func (e *Environment) Deregister(id string) bool {
	if _, ok := e.agents[id]; !ok {
		return false
	}
	delete(e.agents, id)

	return true
}

// Agent returns the registered agent with the given ID, if any.
func (e *Environment) Agent(id string) (Agent, bool) {
	a, ok := e.agents[id]

	return a, ok
}

// AgentIDs returns all registered IDs in sorted order.
func (e *Environment) AgentIDs() []string {
	ids := make([]string, 0, len(e.agents))
	for id := range e.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Round returns the number of completed rounds.
func (e *Environment) Round() int { return e.round }

// SetScheduler attaches an execution-order policy for the compute phase.
// Pass nil to revert to sorted-ID order.
func (e *Environment) SetScheduler(s *Scheduler) { e.sched = s }

// Step executes one global round: compute on every agent (collecting the
// full outgoing batch), deliver the batch, then commit and clear every
// agent, and finally increment the round counter. It returns the number of
// messages actually delivered this round.
//
// Complexity: O(A log A + M) for A agents and M batched messages.
func (e *Environment) Step() int {
	order := e.computeOrder()

	// Phase 1: collect the complete outgoing batch before any delivery.
	var batch []Message
	for _, id := range order {
		batch = append(batch, e.agents[id].Compute()...)
	}

	// Phase 2: deliver. Unknown receivers are dropped, never fatal.
	delivered := 0
	for _, msg := range batch {
		if e.deliver(msg) {
			delivered++
		}
	}

	// Phase 3: commit staged moves, then clear mailboxes.
	for _, id := range order {
		a := e.agents[id]
		a.UpdateState()
		a.ClearMailbox()
	}

	e.round++

	return delivered
}

// Inject delivers a single message outside the round loop. It is meant for
// bootstrap traffic (e.g. an initial value exchange before round 1) and
// follows the same drop-with-warning policy as in-round delivery.
// Reports whether the message reached a mailbox.
func (e *Environment) Inject(msg Message) bool {
	return e.deliver(msg)
}

// deliver routes one message into its receiver's mailbox, or drops it with
// a warning when the receiver is not registered.
func (e *Environment) deliver(msg Message) bool {
	a, ok := e.agents[msg.To]
	if !ok {
		e.log.Warn("dropping message for unregistered agent",
			"to", msg.To, "from", msg.From, "round", e.round)

		return false
	}
	a.Receive(msg)

	return true
}

// computeOrder resolves the IDs to visit this round: the scheduler's order
// when one is attached (skipping since-deregistered IDs, then appending
// any registered ID the order omits), else sorted IDs.
func (e *Environment) computeOrder() []string {
	if e.sched == nil {
		return e.AgentIDs()
	}

	order := make([]string, 0, len(e.agents))
	seen := make(map[string]bool, len(e.agents))
	for _, id := range e.sched.Order() {
		if _, ok := e.agents[id]; ok && !seen[id] {
			order = append(order, id)
			seen[id] = true
		}
	}
	// Registered agents missing from the scheduler still run, after the
	// scheduled prefix, in sorted order.
	for _, id := range e.AgentIDs() {
		if !seen[id] {
			order = append(order, id)
		}
	}

	return order
}
