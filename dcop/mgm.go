package dcop

import "github.com/katalvlaran/distopt/core"

// MGM implements the Maximum Gain Message protocol: deterministic hill
// climbing over a two-phase cycle.
//
// Value phase: compute the best alternative value and its gain, stage the
// pair, and broadcast both the committed value and the gain to every
// neighbor. Gain phase: commit the staged value iff the gain is positive
// AND strictly greater than every neighbor's reported gain. Exact ties
// block everyone — two neighbors moving on equal gain could undo each
// other — which is precisely what makes the global cost monotonically
// non-increasing and the committer unique per neighborhood.
type MGM struct {
	Base

	phase         Phase
	stagedValue   Value
	stagedGain    float64
	neighborGains map[string]float64
	commit        bool // gain-phase verdict, applied by UpdateState
}

// NewMGM constructs an MGM agent over the given domain, starting in the
// value phase.
func NewMGM(id string, domain []Value, opts ...Option) (*MGM, error) {
	base, err := newBase(id, domain, opts)
	if err != nil {
		return nil, err
	}

	return &MGM{
		Base:          base,
		phase:         PhaseValue,
		neighborGains: make(map[string]float64),
	}, nil
}

// Phase exposes the current cycle state (value or gain).
func (a *MGM) Phase() Phase { return a.phase }

// Compute runs one half of the MGM cycle.
func (a *MGM) Compute() []core.Message {
	a.absorb()

	switch a.phase {
	case PhaseValue:
		return a.computeValue()
	default: // PhaseGain
		a.commit = a.stagedGain > 0 && a.strictlyBestGain()

		return nil
	}
}

// UpdateState applies the gain-phase verdict, resets per-cycle
// bookkeeping at cycle end, and advances the phase by exactly one step.
func (a *MGM) UpdateState() {
	if a.phase == PhaseGain {
		if a.commit {
			a.value = a.stagedValue
		}
		a.commit = false
		clear(a.neighborGains)
		a.iteration++
	}
	a.phase = a.nextPhase()
}

// computeValue stages the cycle's best alternative and broadcasts the
// committed value plus the staged gain to every neighbor.
func (a *MGM) computeValue() []core.Message {
	a.stagedValue, a.stagedGain = a.bestAlternative()

	msgs := a.broadcastValue()
	gain := GainMessage{Gain: a.stagedGain, Round: a.iteration}
	for _, n := range a.neighbors {
		msgs = append(msgs, core.NewMessage(a.ID(), n, gain))
	}

	return msgs
}

// strictlyBestGain reports whether this agent's staged gain strictly
// exceeds every neighbor's reported gain. Equality means no one moves.
func (a *MGM) strictlyBestGain() bool {
	for _, g := range a.neighborGains {
		if g >= a.stagedGain {
			return false
		}
	}

	return true
}

// nextPhase is the total transition function of the two-state cycle.
func (a *MGM) nextPhase() Phase {
	if a.phase == PhaseValue {
		return PhaseGain
	}

	return PhaseValue
}

// absorb folds the mailbox into the caches: value announcements update
// the neighbor cache, gain reports feed the gain-phase comparison.
func (a *MGM) absorb() {
	for _, msg := range a.Inbox() {
		switch p := msg.Payload.(type) {
		case ValueMessage:
			a.observeValue(msg.From, p.Value)
		case GainMessage:
			a.neighborGains[msg.From] = p.Gain
		}
	}
}
