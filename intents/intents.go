package intents

// Intent is a single gateway intent bit. The encoder treats the combined
// bitmask as opaque foreign data; the bits are never interpreted locally.
type Intent int

const (
	Guilds Intent = 1 << iota
	GuildMembers
	GuildBans
	GuildEmojis
	GuildIntegrations
	GuildWebhooks
	GuildInvites
	GuildVoiceStates
	GuildPresences
	GuildMessages
	GuildMessageReactions
	GuildMessageTyping
	DirectMessages
	DirectMessageReactions
	DirectMessageTyping
)

// Intents is the combined bitmask passed through to identify.
type Intents uint64

func Sum(intents ...Intent) Intents {
	var sum Intents
	for _, intent := range intents {
		sum |= Intents(intent)
	}

	return sum
}
