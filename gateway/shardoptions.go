package gateway

import (
	"github.com/TicketsBot/gateway-client/intents"
	"github.com/TicketsBot/gateway-client/objects/user"
)

type ShardOptions struct {
	ShardCount ShardCount
	Presence   user.CurrentPresence
	Intents    []intents.Intent
}

type ShardCount struct {
	Total   int
	Lowest  int // Inclusive
	Highest int // Exclusive
}
