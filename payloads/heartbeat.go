package payloads

// Heartbeat is the only command whose d is a bare value rather than an
// object. A nil sequence number must serialize as an explicit null, never
// as a missing key and never as 0, so the field cannot carry omitempty.
type Heartbeat struct {
	Opcode         OpCode  `json:"op"`
	SequenceNumber *uint64 `json:"d"`
}

func NewHeartbeat(sequenceNumber *uint64) Heartbeat {
	return Heartbeat{
		Opcode:         OpHeartbeat,
		SequenceNumber: sequenceNumber,
	}
}
