package payloads

import (
	"time"

	"github.com/TicketsBot/gateway-client/objects/user"
)

// nowMillis is sampled on every presence update; the gateway uses the
// timestamp for idle heuristics, so it must be fresh per call. Package
// variable so tests can substitute a deterministic clock.
var nowMillis = realClock

func realClock() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

type PresenceUpdate struct {
	Opcode OpCode             `json:"op"`
	Data   PresenceUpdateData `json:"d"`
}

type PresenceUpdateData struct {
	Afk    bool           `json:"afk"`
	Since  int64          `json:"since"`
	Status string         `json:"status"`
	Game   *user.Activity `json:"game,omitempty"`
}

func NewPresenceUpdate(presence user.CurrentPresence) PresenceUpdate {
	return PresenceUpdate{
		Opcode: OpStatusUpdate,
		Data: PresenceUpdateData{
			Afk:    false,
			Since:  nowMillis(),
			Status: presence.Status.String(),
			Game:   presence.Activity,
		},
	}
}
