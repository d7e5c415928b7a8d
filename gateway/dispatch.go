package gateway

import (
	"encoding/json"

	"github.com/TicketsBot/gateway-client/forwarding"
	"github.com/TicketsBot/gateway-client/payloads"
	"github.com/TicketsBot/gateway-client/payloads/events"
	"github.com/sirupsen/logrus"
)

// handleEvent maintains the shard's session state and entity cache from a
// dispatch, then forwards the raw event to the workers.
func (s *Shard) handleEvent(payload payloads.Payload) {
	switch events.EventType(payload.EventName) {
	case events.READY:
		var ready events.Ready
		if err := json.Unmarshal(payload.Data, &ready); err != nil {
			logrus.Warnf("shard %d: error parsing ready: %s", s.ShardId, err.Error())
			return
		}

		logrus.Infof("shard %d: received ready", s.ShardId)

		s.sessionId = ready.SessionId
		s.selfId = ready.User.Id

		// identify no longer carries a presence block, so push it now
		if s.Options.Presence.Status != "" {
			if err := s.UpdateStatus(s.Options.Presence); err != nil {
				logrus.Warnf("shard %d: Error whilst sending presence update: %s", s.ShardId, err.Error())
			}
		}
	case events.GUILD_CREATE:
		var guildCreate events.GuildCreate
		if err := json.Unmarshal(payload.Data, &guildCreate); err == nil {
			s.Cache.StoreGuild(guildCreate.Guild)
		}
	case events.GUILD_DELETE:
		var guildDelete events.GuildDelete
		if err := json.Unmarshal(payload.Data, &guildDelete); err == nil && !guildDelete.Unavailable {
			s.Cache.DeleteGuild(guildDelete.Id)
		}
	case events.GUILD_MEMBER_ADD:
		var memberAdd events.GuildMemberAdd
		if err := json.Unmarshal(payload.Data, &memberAdd); err == nil {
			s.Cache.StoreMember(memberAdd.Member, memberAdd.GuildId)
		}
	case events.GUILD_MEMBER_REMOVE:
		var memberRemove events.GuildMemberRemove
		if err := json.Unmarshal(payload.Data, &memberRemove); err == nil {
			s.Cache.DeleteMember(memberRemove.User.Id, memberRemove.GuildId)
		}
	case events.GUILD_MEMBERS_CHUNK:
		var chunk events.GuildMembersChunk
		if err := json.Unmarshal(payload.Data, &chunk); err == nil {
			for _, m := range chunk.Members {
				s.Cache.StoreMember(m, chunk.GuildId)
			}
		}
	case events.USER_UPDATE:
		var userUpdate events.UserUpdate
		if err := json.Unmarshal(payload.Data, &userUpdate); err == nil {
			s.Cache.StoreUser(userUpdate.User)
		}
	}

	// forward event to workers
	forwarding.ForwardEvent(s.ShardManager.getRedis(), forwarding.Event{
		BotToken:  s.Token,
		BotId:     s.selfId,
		ShardId:   s.ShardId,
		EventType: payload.EventName,
		Data:      payload.Data,
	})
}
