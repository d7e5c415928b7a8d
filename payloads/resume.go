package payloads

type Resume struct {
	Opcode OpCode     `json:"op"`
	Data   ResumeData `json:"d"`
}

// ResumeData carries all three fields unconditionally; the gateway decides
// whether the session is resumable, not us.
type ResumeData struct {
	SessionId      string `json:"session_id"`
	SequenceNumber uint64 `json:"seq"`
	Token          string `json:"token"`
}

func NewResume(token, sessionId string, sequenceNumber uint64) Resume {
	return Resume{
		Opcode: OpResume,
		Data: ResumeData{
			SessionId:      sessionId,
			SequenceNumber: sequenceNumber,
			Token:          token,
		},
	}
}
