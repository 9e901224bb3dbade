package dcop

// Value is one candidate assignment for an agent's variable. The shipped
// generators are integer-domained (colors, slots, levels), so the library
// commits to a concrete integer value type rather than spreading a type
// parameter through every payload and agent.
type Value int

// Assignment is a snapshot of committed values keyed by agent ID.
type Assignment map[string]Value

// Phase is a protocol round-cycle state. MGM cycles through
// PhaseValue → PhaseGain; MGM-2 through PhaseValue → PhaseOffer →
// PhaseAccept → PhaseEvaluate. Each agent owns a total transition
// function over its own cycle, so no agent can reach a phase outside it.
type Phase uint8

const (
	// PhaseValue: broadcast the committed value and compute gains.
	PhaseValue Phase = iota

	// PhaseGain: MGM only — compare gains, commit the strict winner.
	PhaseGain

	// PhaseOffer: MGM-2 only — offerers propose joint moves.
	PhaseOffer

	// PhaseAccept: MGM-2 only — receivers choose among offers.
	PhaseAccept

	// PhaseEvaluate: MGM-2 only — commit bilateral or unilateral moves.
	PhaseEvaluate
)

// String renders the phase for logs and test failure messages.
func (p Phase) String() string {
	switch p {
	case PhaseValue:
		return "value"
	case PhaseGain:
		return "gain"
	case PhaseOffer:
		return "offer"
	case PhaseAccept:
		return "accept"
	case PhaseEvaluate:
		return "evaluate"
	default:
		return "unknown"
	}
}

// Payload is the closed set of message contents the DCOP protocols
// exchange. The unexported marker keeps the variant set sealed to this
// package; receivers switch on the concrete type.
type Payload interface{ payload() }

// ValueMessage announces the sender's committed value for the cycle
// numbered Round.
type ValueMessage struct {
	Value Value
	Round int
}

// GainMessage carries an MGM agent's best achievable gain this cycle.
type GainMessage struct {
	Gain  float64
	Round int
}

// UnilateralGainMessage carries an MGM-2 agent's best solo gain this
// cycle, used by neighbors for the evaluate-phase unilateral tie-break.
type UnilateralGainMessage struct {
	Gain  float64
	Round int
}

// OfferMessage proposes a joint move: the offerer adopts OffererValue and
// asks the receiver to adopt ReceiverValue; Gain is the offerer's own
// estimated gain from the pair.
type OfferMessage struct {
	OffererValue  Value
	ReceiverValue Value
	Gain          float64
	Round         int
}

// AcceptMessage answers an offer. Exactly one acceptance leaves a
// receiver per cycle; every other offerer gets a rejection.
type AcceptMessage struct {
	Accepted bool
	Round    int
}

func (ValueMessage) payload()          {}
func (GainMessage) payload()           {}
func (UnilateralGainMessage) payload() {}
func (OfferMessage) payload()          {}
func (AcceptMessage) payload()         {}
