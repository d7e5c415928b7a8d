package intents

import "testing"

func TestSum(t *testing.T) {
	if got := Sum(); got != 0 {
		t.Errorf("empty sum: got %d", got)
	}

	if got := Sum(Guilds, GuildMembers, DirectMessages); got != 1|2|4096 {
		t.Errorf("sum: got %d", got)
	}

	// combining an intent twice must not change the mask
	if Sum(Guilds, Guilds) != Sum(Guilds) {
		t.Error("sum must be idempotent per bit")
	}
}
