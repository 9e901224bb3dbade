package core

// Message is the immutable envelope exchanged between agents.
//
// From and To are agent IDs (the Environment's routing keys). Payload is
// protocol-defined and must be treated as read-only once the message has
// been constructed; a round's outgoing batch is fully computed before any
// delivery, so mutating a payload after emission would leak mid-round
// state between agents.
type Message struct {
	// From is the sender's agent ID.
	From string

	// To is the receiver's agent ID.
	To string

	// Payload carries the protocol-specific content. Protocols define a
	// closed set of payload types and switch on them at receipt.
	Payload any
}

// NewMessage constructs a message from sender to receiver with the given
// payload. Complexity: O(1).
func NewMessage(from, to string, payload any) Message {
	return Message{From: from, To: to, Payload: payload}
}
