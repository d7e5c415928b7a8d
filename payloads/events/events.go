package events

import (
	"github.com/TicketsBot/gateway-client/objects/guild"
	"github.com/TicketsBot/gateway-client/objects/member"
	"github.com/TicketsBot/gateway-client/objects/user"
)

type EventType string

const (
	READY               EventType = "READY"
	GUILD_CREATE        EventType = "GUILD_CREATE"
	GUILD_DELETE        EventType = "GUILD_DELETE"
	GUILD_MEMBER_ADD    EventType = "GUILD_MEMBER_ADD"
	GUILD_MEMBER_REMOVE EventType = "GUILD_MEMBER_REMOVE"
	GUILD_MEMBERS_CHUNK EventType = "GUILD_MEMBERS_CHUNK"
	USER_UPDATE         EventType = "USER_UPDATE"
)

type Ready struct {
	SessionId string    `json:"session_id"`
	User      user.User `json:"user"`
}

type GuildCreate struct {
	guild.Guild
}

type GuildDelete struct {
	Id          uint64 `json:"id,string"`
	Unavailable bool   `json:"unavailable"`
}

// GuildMemberAdd is a member object with the guild id inlined alongside it.
type GuildMemberAdd struct {
	member.Member
	GuildId uint64 `json:"guild_id,string"`
}

type GuildMemberRemove struct {
	GuildId uint64    `json:"guild_id,string"`
	User    user.User `json:"user"`
}

// GuildMembersChunk is the answer to a RequestGuildMembers command; Nonce
// echoes the one supplied with the request.
type GuildMembersChunk struct {
	GuildId    uint64          `json:"guild_id,string"`
	Members    []member.Member `json:"members"`
	ChunkIndex int             `json:"chunk_index"`
	ChunkCount int             `json:"chunk_count"`
	Nonce      string          `json:"nonce"`
}

type UserUpdate struct {
	user.User
}
