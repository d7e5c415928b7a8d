package payloads

import (
	"encoding/json"
	"testing"

	"github.com/TicketsBot/gateway-client/payloads/events"
)

func TestNewPayload(t *testing.T) {
	data := []byte(`{"op":0,"s":7,"t":"GUILD_MEMBERS_CHUNK","d":{"guild_id":"500","members":[{"user":{"id":"1","username":"a"}}],"chunk_index":0,"chunk_count":1,"nonce":"n1"}}`)

	payload, err := NewPayload(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if payload.Opcode != OpDispatch {
		t.Errorf("opcode: got %d", payload.Opcode)
	}
	if payload.SequenceNumber == nil || *payload.SequenceNumber != 7 {
		t.Errorf("sequence number: got %v", payload.SequenceNumber)
	}
	if payload.EventName != "GUILD_MEMBERS_CHUNK" {
		t.Errorf("event name: got %s", payload.EventName)
	}

	var chunk events.GuildMembersChunk
	if err := json.Unmarshal(payload.Data, &chunk); err != nil {
		t.Fatalf("chunk parse: %v", err)
	}

	if chunk.GuildId != 500 || chunk.Nonce != "n1" {
		t.Errorf("chunk: got %+v", chunk)
	}
	if len(chunk.Members) != 1 || chunk.Members[0].User.Id != 1 {
		t.Errorf("members: got %+v", chunk.Members)
	}
}

func TestNewHello(t *testing.T) {
	hello, err := NewHello([]byte(`{"op":10,"d":{"heartbeat_interval":41250}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if hello.Opcode != OpHello || hello.EventData.Interval != 41250 {
		t.Errorf("hello: got %+v", hello)
	}
}

func TestPayloadWithoutSequence(t *testing.T) {
	payload, err := NewPayload([]byte(`{"op":11}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if payload.Opcode != OpHeartbeatAck {
		t.Errorf("opcode: got %d", payload.Opcode)
	}
	if payload.SequenceNumber != nil {
		t.Errorf("expected nil sequence, got %d", *payload.SequenceNumber)
	}
}
