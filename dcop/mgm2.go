package dcop

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/distopt/core"
)

// role is the per-cycle stance an MGM-2 agent draws in the value phase.
type role uint8

const (
	roleNone role = iota
	roleOfferer
	roleReceiver
)

// offerTerms is one received offer: the proposer's new value, the value
// it asks of us, and the proposer's own estimated gain.
type offerTerms struct {
	offererValue  Value
	receiverValue Value
	gain          float64
}

// sentOffer remembers the single offer this agent made in the offer phase.
type sentOffer struct {
	neighbor      string
	ownValue      Value
	neighborValue Value
	gain          float64
}

// agreedMove is a bilateral commitment: the value this agent adopts if
// the pair move goes through, and the combined gain that justified it.
type agreedMove struct {
	partner  string
	ownValue Value
	gain     float64
}

// MGM2 implements the MGM-2 protocol: MGM extended with coordinated
// pairwise moves over a four-phase cycle (value → offer → accept →
// evaluate).
//
// Value: broadcast the committed value and the best unilateral gain, then
// draw a role — offerer with probability p, receiver otherwise. Offer:
// offerers search, per neighbor, the cross product of alternatives for
// both sides (their own utility as the ranking signal, their own domain
// standing in for the neighbor's) and propose the single best pair when
// its gain is positive. Accept: receivers take the offer maximizing
// combined gain, but only when it strictly beats their own unilateral
// gain, and answer every offerer. Evaluate: an agreed pair commits
// bilaterally; everyone else falls back to MGM's strict unilateral rule.
// An offerer whose offer was rejected simply sits the cycle out.
type MGM2 struct {
	Base

	offerProb float64
	phase     Phase
	role      role

	uniValue      Value   // best solo alternative, staged in value phase
	uniGain       float64 // its gain over the current value
	neighborGains map[string]float64
	received      map[string]offerTerms
	sent          *sentOffer
	agreed        *agreedMove
	commitUni     bool
}

// NewMGM2 constructs an MGM-2 agent over the given domain. offerProb in
// [0,1] is the probability of drawing the offerer role each cycle.
func NewMGM2(id string, domain []Value, offerProb float64, opts ...Option) (*MGM2, error) {
	if offerProb < 0 || offerProb > 1 {
		return nil, fmt.Errorf("%w: offer p=%v", ErrInvalidProbability, offerProb)
	}
	base, err := newBase(id, domain, opts)
	if err != nil {
		return nil, err
	}

	return &MGM2{
		Base:          base,
		offerProb:     offerProb,
		phase:         PhaseValue,
		neighborGains: make(map[string]float64),
		received:      make(map[string]offerTerms),
	}, nil
}

// Phase exposes the current cycle state.
func (a *MGM2) Phase() Phase { return a.phase }

// Compute runs one quarter of the MGM-2 cycle.
func (a *MGM2) Compute() []core.Message {
	a.absorb()

	switch a.phase {
	case PhaseValue:
		return a.computeValue()
	case PhaseOffer:
		return a.computeOffer()
	case PhaseAccept:
		return a.computeAccept()
	default: // PhaseEvaluate
		a.computeEvaluate()

		return nil
	}
}

// UpdateState commits the evaluate-phase decision, resets per-cycle
// bookkeeping at cycle end, and advances the phase by exactly one step.
func (a *MGM2) UpdateState() {
	if a.phase == PhaseEvaluate {
		switch {
		case a.agreed != nil:
			a.value = a.agreed.ownValue // bilateral move wins over any solo option
		case a.commitUni:
			a.value = a.uniValue
		}
		a.resetCycle()
		a.iteration++
	}
	a.phase = a.nextPhase()
}

// computeValue broadcasts value + unilateral gain and draws the role.
func (a *MGM2) computeValue() []core.Message {
	a.uniValue, a.uniGain = a.bestAlternative()

	msgs := a.broadcastValue()
	gain := UnilateralGainMessage{Gain: a.uniGain, Round: a.iteration}
	for _, n := range a.neighbors {
		msgs = append(msgs, core.NewMessage(a.ID(), n, gain))
	}

	a.role = roleReceiver
	if a.rng.Float64() < a.offerProb {
		a.role = roleOfferer
	}

	return msgs
}

// computeOffer sends at most one offer: the best positive-gain joint move
// across all neighbors, ranked by this agent's own utility.
func (a *MGM2) computeOffer() []core.Message {
	if a.role != roleOfferer {
		return nil
	}

	var (
		bestNeighbor string
		bestOwn      Value
		bestTheirs   Value
		bestGain     float64 // offers require strictly positive gain
	)
	for _, n := range a.neighbors {
		own, theirs, gain := a.bestJointMove(n)
		if gain > bestGain {
			bestNeighbor, bestOwn, bestTheirs, bestGain = n, own, theirs, gain
		}
	}
	if bestNeighbor == "" {
		return nil // no profitable pair this cycle; not an error
	}

	a.sent = &sentOffer{
		neighbor:      bestNeighbor,
		ownValue:      bestOwn,
		neighborValue: bestTheirs,
		gain:          bestGain,
	}

	return []core.Message{core.NewMessage(a.ID(), bestNeighbor, OfferMessage{
		OffererValue:  bestOwn,
		ReceiverValue: bestTheirs,
		Gain:          bestGain,
		Round:         a.iteration,
	})}
}

// computeAccept picks the received offer with the highest combined gain,
// accepts it only when that beats the receiver's own unilateral gain, and
// answers every offerer. Offers are scanned in sorted-offerer order so
// equal combined gains resolve deterministically (first ID wins).
func (a *MGM2) computeAccept() []core.Message {
	if a.role != roleReceiver || len(a.received) == 0 {
		return nil
	}

	offerers := make([]string, 0, len(a.received))
	for id := range a.received {
		offerers = append(offerers, id)
	}
	sort.Strings(offerers)

	current := a.Utility(a.value)
	bestID := ""
	bestTotal := 0.0
	for _, id := range offerers {
		terms := a.received[id]
		ourGain := a.pairUtility(terms.receiverValue, id, terms.offererValue) - current
		if total := ourGain + terms.gain; total > bestTotal {
			bestID, bestTotal = id, total
		}
	}

	// A pair move must beat what we could already do alone.
	accept := bestID != "" && bestTotal > a.uniGain
	if accept {
		a.agreed = &agreedMove{
			partner:  bestID,
			ownValue: a.received[bestID].receiverValue,
			gain:     bestTotal,
		}
	}

	msgs := make([]core.Message, 0, len(offerers))
	answer := AcceptMessage{Round: a.iteration}
	for _, id := range offerers {
		answer.Accepted = accept && id == bestID
		msgs = append(msgs, core.NewMessage(a.ID(), id, answer))
	}

	return msgs
}

// computeEvaluate stages the fallback unilateral decision for agents with
// no agreed pair move: MGM's strict local-max-gain rule.
func (a *MGM2) computeEvaluate() {
	if a.agreed != nil {
		return
	}
	a.commitUni = a.uniGain > 0 && a.strictlyBestUniGain()
}

// bestJointMove searches the cross product of both sides' alternatives
// for the pair maximizing this agent's own utility gain. The neighbor's
// domain is not locally known; this agent's domain stands in for it, as
// in the protocol's standard formulation. Returns gain 0 when the
// neighbor's value is still unknown or nothing improves.
// Complexity: O(|D|²).
func (a *MGM2) bestJointMove(neighborID string) (Value, Value, float64) {
	theirCurrent, known := a.cache[neighborID]
	if !known {
		return a.value, 0, 0
	}

	current := a.Utility(a.value)
	bestOwn, bestTheirs, bestGain := a.value, theirCurrent, 0.0
	for _, own := range a.domain {
		if own == a.value {
			continue // a joint move changes both sides
		}
		for _, theirs := range a.domain {
			if theirs == theirCurrent {
				continue
			}
			if gain := a.pairUtility(own, neighborID, theirs) - current; gain > bestGain {
				bestOwn, bestTheirs, bestGain = own, theirs, gain
			}
		}
	}

	return bestOwn, bestTheirs, bestGain
}

// strictlyBestUniGain mirrors MGM's tie-break: strictly greater than
// every neighbor's unilateral gain, equality blocks.
func (a *MGM2) strictlyBestUniGain() bool {
	for _, g := range a.neighborGains {
		if g >= a.uniGain {
			return false
		}
	}

	return true
}

// resetCycle clears all per-cycle bookkeeping before the next value phase.
func (a *MGM2) resetCycle() {
	clear(a.neighborGains)
	clear(a.received)
	a.sent = nil
	a.agreed = nil
	a.role = roleNone
	a.commitUni = false
}

// nextPhase is the total transition function of the four-state cycle.
func (a *MGM2) nextPhase() Phase {
	switch a.phase {
	case PhaseValue:
		return PhaseOffer
	case PhaseOffer:
		return PhaseAccept
	case PhaseAccept:
		return PhaseEvaluate
	default:
		return PhaseValue
	}
}

// absorb folds the mailbox into the cycle's caches. Offers only register
// for receivers and acceptances only for offerers whose recorded offer
// matches the responder; everything else is stale traffic and ignored.
func (a *MGM2) absorb() {
	for _, msg := range a.Inbox() {
		switch p := msg.Payload.(type) {
		case ValueMessage:
			a.observeValue(msg.From, p.Value)
		case UnilateralGainMessage:
			a.neighborGains[msg.From] = p.Gain
		case OfferMessage:
			if a.role == roleReceiver {
				a.received[msg.From] = offerTerms{
					offererValue:  p.OffererValue,
					receiverValue: p.ReceiverValue,
					gain:          p.Gain,
				}
			}
		case AcceptMessage:
			if a.role == roleOfferer && p.Accepted && a.sent != nil && a.sent.neighbor == msg.From {
				a.agreed = &agreedMove{
					partner:  msg.From,
					ownValue: a.sent.ownValue,
					gain:     a.sent.gain,
				}
			}
		}
	}
}
