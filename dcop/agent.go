package dcop

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/distopt/core"
)

// Sentinel errors for agent construction.
var (
	// ErrEmptyAgentID indicates a constructor was given an empty ID.
	ErrEmptyAgentID = errors.New("dcop: agent ID is empty")

	// ErrEmptyDomain indicates a constructor was given no candidate values.
	ErrEmptyDomain = errors.New("dcop: domain is empty")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("dcop: probability out of range")

	// ErrValueNotInDomain indicates WithInitialValue named a value the
	// agent's domain does not contain.
	ErrValueNotInDomain = errors.New("dcop: value not in domain")

	// ErrOptionViolation indicates an option received a meaningless
	// argument (e.g. WithRand(nil)).
	ErrOptionViolation = errors.New("dcop: invalid option value")
)

// defaultSeed is the fixed seed used when no RNG is injected. Arbitrary
// but stable, so unseeded agents still behave reproducibly.
const defaultSeed int64 = 1

// Agent is the contract the simulation layer needs from any DCOP protocol
// agent, over and above the kernel lifecycle: constraint wiring at setup
// and committed-value sampling between rounds.
type Agent interface {
	core.Agent

	// AddConstraint installs (or extends) this side's cost table toward a
	// neighbor, registering the neighbor if it is new.
	AddConstraint(neighborID string, costs CostTable)

	// Value returns the currently committed value.
	Value() Value
}

// Option configures agent construction via functional arguments. Invalid
// arguments are recorded and surfaced by the constructor.
type Option func(*config)

type config struct {
	rng       *rand.Rand
	neighbors []string
	initial   *Value
	err       error
}

// WithRand injects the agent's random source. All stochastic decisions
// (initial value, DSA activation coin, MGM-2 role draw) flow through it.
// Nil is an option violation.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		if r == nil {
			c.err = fmt.Errorf("%w: WithRand(nil)", ErrOptionViolation)

			return
		}
		c.rng = r
	}
}

// WithSeed injects a fresh deterministic random source seeded with seed.
// Prefer this in tests and experiments to lock outcomes.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithNeighbors pre-registers neighbor IDs (in the given order) before any
// constraints are added. AddConstraint appends unseen neighbors anyway;
// this option only fixes the broadcast order up front.
func WithNeighbors(ids ...string) Option {
	return func(c *config) {
		c.neighbors = append(c.neighbors[:0:0], ids...)
	}
}

// WithInitialValue pins the starting value instead of drawing one at
// random from the domain. The constructor rejects values outside the
// domain with ErrValueNotInDomain.
func WithInitialValue(v Value) Option {
	return func(c *config) {
		val := v
		c.initial = &val
	}
}

// Base carries the state every protocol agent shares: mailbox and
// identity, the domain, the ordered neighbor list, the last-known
// neighbor values, this side's constraint tables, the committed value and
// the cycle counter. Protocol agents embed it and add their phase
// machinery on top.
type Base struct {
	core.Mailbox

	domain    []Value
	neighbors []string
	member    map[string]bool  // neighbor set membership
	cache     map[string]Value // neighbor ID → last-known value
	store     ConstraintStore
	value     Value
	iteration int
	rng       *rand.Rand
}

// newBase validates id/domain/options and assembles the shared state.
func newBase(id string, domain []Value, opts []Option) (Base, error) {
	if id == "" {
		return Base{}, ErrEmptyAgentID
	}
	if len(domain) == 0 {
		return Base{}, ErrEmptyDomain
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Base{}, cfg.err
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}

	b := Base{
		Mailbox: core.NewMailbox(id),
		domain:  append([]Value(nil), domain...),
		member:  make(map[string]bool),
		cache:   make(map[string]Value),
		store:   NewConstraintStore(),
		rng:     cfg.rng,
	}
	for _, n := range cfg.neighbors {
		b.addNeighbor(n)
	}

	// Starting value: pinned if requested, else a uniform draw.
	if cfg.initial != nil {
		if !b.inDomain(*cfg.initial) {
			return Base{}, fmt.Errorf("%w: %d", ErrValueNotInDomain, *cfg.initial)
		}
		b.value = *cfg.initial
	} else {
		b.value = b.domain[b.rng.Intn(len(b.domain))]
	}

	return b, nil
}

// AddConstraint installs costs toward neighborID, registering the
// neighbor if unseen. Implements the Agent contract.
func (b *Base) AddConstraint(neighborID string, costs CostTable) {
	b.addNeighbor(neighborID)
	b.store.Add(neighborID, costs)
}

// Value returns the committed value. Only the owning agent's UpdateState
// ever changes it.
func (b *Base) Value() Value { return b.value }

// Iteration returns the number of completed protocol cycles.
func (b *Base) Iteration() int { return b.iteration }

// Neighbors returns the neighbor IDs in broadcast order. Read-only.
func (b *Base) Neighbors() []string { return b.neighbors }

// Utility scores a candidate value against the cached neighbor values:
// the negated total constraint cost. Neighbors without a cached value
// contribute nothing. Higher is better.
// Complexity: O(N) over cached neighbors.
func (b *Base) Utility(v Value) float64 {
	total := 0.0
	for neighbor, nv := range b.cache {
		total += b.store.Cost(neighbor, v, nv)
	}

	return -total
}

// pairUtility scores candidate value v assuming neighborID has moved to
// nv, with every other cached neighbor unchanged.
func (b *Base) pairUtility(v Value, neighborID string, nv Value) float64 {
	total := b.store.Cost(neighborID, v, nv)
	for neighbor, cached := range b.cache {
		if neighbor == neighborID {
			continue
		}
		total += b.store.Cost(neighbor, v, cached)
	}

	return -total
}

// bestValue finds the domain value with maximal utility, the current
// value included. Ties keep the earliest candidate (the current value
// first, then domain order).
func (b *Base) bestValue() (Value, float64) {
	best, bestU := b.value, b.Utility(b.value)
	for _, v := range b.domain {
		if u := b.Utility(v); u > bestU {
			best, bestU = v, u
		}
	}

	return best, bestU
}

// bestAlternative finds the best value excluding the current one and its
// gain over the current utility. When nothing strictly improves, it
// returns the current value with gain 0.
func (b *Base) bestAlternative() (Value, float64) {
	current := b.Utility(b.value)
	best, bestU := b.value, current
	for _, v := range b.domain {
		if v == b.value {
			continue
		}
		if u := b.Utility(v); u > bestU {
			best, bestU = v, u
		}
	}

	return best, bestU - current
}

// observeValue records a neighbor's announced value in the cache.
func (b *Base) observeValue(from string, v Value) {
	b.cache[from] = v
}

// broadcastValue emits one ValueMessage per neighbor carrying the
// committed (pre-update) value.
func (b *Base) broadcastValue() []core.Message {
	msgs := make([]core.Message, 0, len(b.neighbors))
	payload := ValueMessage{Value: b.value, Round: b.iteration}
	for _, n := range b.neighbors {
		msgs = append(msgs, core.NewMessage(b.ID(), n, payload))
	}

	return msgs
}

func (b *Base) addNeighbor(id string) {
	if !b.member[id] {
		b.member[id] = true
		b.neighbors = append(b.neighbors, id)
	}
}

func (b *Base) inDomain(v Value) bool {
	for _, d := range b.domain {
		if d == v {
			return true
		}
	}

	return false
}
