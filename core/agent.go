package core

// Agent is the per-round lifecycle contract the Environment drives.
//
// Compute must be a pure function of current state plus mailbox contents:
// it may stage a pending move internally but must not commit observable
// state changes — those belong in UpdateState, which the Environment calls
// only after every agent's Compute output has been collected and delivered.
// This split is what guarantees every agent in a round sees the same
// snapshot of neighbor state.
type Agent interface {
	// ID returns the agent's unique, stable identifier.
	ID() string

	// Compute reads the mailbox and current state and returns the round's
	// outgoing messages. It must not commit state changes.
	Compute() []Message

	// UpdateState commits whatever move Compute staged, if any, and
	// advances the agent's phase machine by exactly one step.
	UpdateState()

	// Receive appends one incoming message to the mailbox.
	Receive(msg Message)

	// ClearMailbox empties the mailbox at the end of a round.
	ClearMailbox()
}

// Mailbox is the embeddable base that supplies the identity and mailbox
// half of the Agent contract. Protocol agents embed it and implement
// Compute/UpdateState themselves.
type Mailbox struct {
	id    string
	inbox []Message
}

// NewMailbox returns a mailbox bound to the given agent ID.
func NewMailbox(id string) Mailbox {
	return Mailbox{id: id}
}

// ID returns the owning agent's identifier.
func (m *Mailbox) ID() string { return m.id }

// Receive appends msg to the inbox. Complexity: amortized O(1).
func (m *Mailbox) Receive(msg Message) {
	m.inbox = append(m.inbox, msg)
}

// ClearMailbox discards all buffered messages, retaining capacity for the
// next round.
func (m *Mailbox) ClearMailbox() {
	m.inbox = m.inbox[:0]
}

// Inbox exposes the buffered messages for the current round. Callers must
// treat the slice as read-only; it is reused across rounds.
func (m *Mailbox) Inbox() []Message { return m.inbox }
