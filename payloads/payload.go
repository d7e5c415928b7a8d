package payloads

import "encoding/json"

// Payload is the raw inbound frame envelope. Outbound commands use their
// own typed structs; this shape is only used when reading from the socket.
type Payload struct {
	Opcode         OpCode          `json:"op"`
	SequenceNumber *uint64         `json:"s"`
	EventName      string          `json:"t"`
	Data           json.RawMessage `json:"d"`
}

func NewPayload(data []byte) (payload Payload, err error) {
	err = json.Unmarshal(data, &payload)
	return
}

type Hello struct {
	Opcode    OpCode `json:"op"`
	EventData struct {
		Interval int `json:"heartbeat_interval"`
	} `json:"d"`
}

func NewHello(data []byte) (hello Hello, err error) {
	err = json.Unmarshal(data, &hello)
	return
}

type HeartbeatAck struct {
	Opcode OpCode `json:"op"`
}

func NewHeartbeatAck(data []byte) (ack HeartbeatAck, err error) {
	err = json.Unmarshal(data, &ack)
	return
}
