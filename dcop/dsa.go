package dcop

import (
	"fmt"

	"github.com/katalvlaran/distopt/core"
)

// DSA implements the DSA-C protocol: probabilistic hill climbing in a
// single phase. Each round the agent merges neighbor value announcements,
// looks for the best value in its domain, and — only when that value is a
// strict improvement — stages a move with activation probability p. The
// round's broadcast always carries the still-committed value, never the
// staged one.
type DSA struct {
	Base

	p       float64 // activation probability
	pending *Value  // move staged by Compute, committed by UpdateState
}

// NewDSA constructs a DSA-C agent over the given domain with activation
// probability p in [0,1].
func NewDSA(id string, domain []Value, p float64, opts ...Option) (*DSA, error) {
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("%w: activation p=%v", ErrInvalidProbability, p)
	}
	base, err := newBase(id, domain, opts)
	if err != nil {
		return nil, err
	}

	return &DSA{Base: base, p: p}, nil
}

// Compute merges incoming value announcements, stages a probabilistic
// move on strict improvement, and broadcasts the current value.
func (a *DSA) Compute() []core.Message {
	a.absorb()

	best, bestU := a.bestValue()
	if bestU > a.Utility(a.value) && a.rng.Float64() < a.p {
		staged := best
		a.pending = &staged
	}

	return a.broadcastValue()
}

// UpdateState commits the staged move, if any, and counts the cycle.
func (a *DSA) UpdateState() {
	if a.pending != nil {
		a.value = *a.pending
		a.pending = nil
	}
	a.iteration++
}

// absorb folds the mailbox into the neighbor cache. DSA-C only ever
// receives value announcements; anything else is ignored.
func (a *DSA) absorb() {
	for _, msg := range a.Inbox() {
		if vm, ok := msg.Payload.(ValueMessage); ok {
			a.observeValue(msg.From, vm.Value)
		}
	}
}
