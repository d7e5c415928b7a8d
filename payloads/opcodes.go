package payloads

// OpCode identifies the semantic type of a gateway frame. The table is
// shared by the outbound command builders and the inbound read loop;
// neither side defines its own copy.
type OpCode int

const (
	OpDispatch         OpCode = 0
	OpHeartbeat        OpCode = 1
	OpIdentify         OpCode = 2
	OpStatusUpdate     OpCode = 3
	OpVoiceStateUpdate OpCode = 4
	OpResume           OpCode = 6
	OpReconnect        OpCode = 7
	OpGetGuildMembers  OpCode = 8
	OpInvalidSession   OpCode = 9
	OpHello            OpCode = 10
	OpHeartbeatAck     OpCode = 11
)
