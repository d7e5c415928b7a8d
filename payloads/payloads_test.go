package payloads

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/TicketsBot/gateway-client/objects/user"
)

func TestNewHeartbeat(t *testing.T) {
	seq := uint64(42)

	tests := []struct {
		name string
		seq  *uint64
		want string
	}{
		// a never-heartbeated connection sends an explicit null, not 0
		{name: "no_sequence", seq: nil, want: `{"op":1,"d":null}`},
		{name: "with_sequence", seq: &seq, want: `{"op":1,"d":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := json.Marshal(NewHeartbeat(tt.seq))
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}

			if string(encoded) != tt.want {
				t.Errorf("got %s, want %s", encoded, tt.want)
			}
		})
	}
}

func TestNewResume(t *testing.T) {
	encoded, err := json.Marshal(NewResume("tok", "sess-1", 7))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"op":6,"d":{"session_id":"sess-1","seq":7,"token":"tok"}}`
	if string(encoded) != want {
		t.Errorf("got %s, want %s", encoded, want)
	}
}

func TestNewResumeEmptyToken(t *testing.T) {
	// no local validation: an empty token still produces all three fields
	encoded, err := json.Marshal(NewResume("", "", 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"op":6,"d":{"session_id":"","seq":0,"token":""}}`
	if string(encoded) != want {
		t.Errorf("got %s, want %s", encoded, want)
	}
}

func TestNewIdentifyStaticBlock(t *testing.T) {
	first, err := json.Marshal(NewIdentify("token-1", 0))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	for _, field := range []string{
		`"op":2`,
		`"token":"token-1"`,
		`"capabilities":8189`,
		`"os":"Windows"`,
		`"browser":"Chrome"`,
		`"device":""`,
		`"system_locale":"en-US"`,
		`"browser_version":"112.0.0.0"`,
		`"os_version":"10"`,
		`"referrer":""`,
		`"referring_domain":""`,
		`"release_channel":"stable"`,
		`"compress":true`,
		`"large_threshold":250`,
	} {
		if !strings.Contains(string(first), field) {
			t.Errorf("identify missing %s: %s", field, first)
		}
	}

	if strings.Contains(string(first), "intents") {
		t.Errorf("user-session identify must not carry intents: %s", first)
	}

	// the fingerprint block is byte-identical across calls and tokens
	second, err := json.Marshal(NewIdentify("token-1", 512))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	if string(first) != string(second) {
		t.Errorf("identify frames differ for identical sessions:\n%s\n%s", first, second)
	}
}

func TestNewPresenceUpdate(t *testing.T) {
	clock := int64(1000)
	nowMillis = func() int64 {
		clock++
		return clock
	}
	defer func() {
		nowMillis = realClock
	}()

	url := "https://twitch.tv/example"
	presence := user.CurrentPresence{
		Activity: &user.Activity{
			Name: "with fire",
			Type: user.ActivityTypeStreaming,
			Url:  &url,
		},
		Status: user.StatusIdle,
	}

	encoded, err := json.Marshal(NewPresenceUpdate(presence))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"op":3,"d":{"afk":false,"since":1001,"status":"idle","game":{"name":"with fire","type":1,"url":"https://twitch.tv/example"}}}`
	if string(encoded) != want {
		t.Errorf("got %s, want %s", encoded, want)
	}
}

func TestNewPresenceUpdateFreshTimestamp(t *testing.T) {
	clock := int64(5000)
	nowMillis = func() int64 {
		clock++
		return clock
	}
	defer func() {
		nowMillis = realClock
	}()

	presence := user.CurrentPresence{Status: user.StatusOnline}

	first := NewPresenceUpdate(presence)
	second := NewPresenceUpdate(presence)

	if first.Data.Since == second.Data.Since {
		t.Errorf("since must be sampled per call, got %d twice", first.Data.Since)
	}

	if first.Data.Game != nil {
		t.Errorf("nil activity must omit game, got %+v", first.Data.Game)
	}
}
