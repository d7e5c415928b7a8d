package gateway

import (
	"github.com/TicketsBot/gateway-client/intents"
	"github.com/TicketsBot/gateway-client/objects/user"
	"github.com/TicketsBot/gateway-client/payloads"
	"github.com/sirupsen/logrus"
)

// The five outbound commands. Each builds exactly one frame and performs
// exactly one write; failures come back unchanged from the transport and
// retry policy stays with the caller.

func (s *Shard) identify() {
	logrus.Debugf("shard %d: identifying", s.ShardId)

	identify := payloads.NewIdentify(s.Token, intents.Sum(s.Options.Intents...))

	if err := s.write(identify); err != nil {
		logrus.Warnf("shard %d: Error whilst sending Identify: %s", s.ShardId, err.Error())
		s.identify()
	}
}

func (s *Shard) resume() {
	s.sequenceLock.RLock()
	resume := payloads.NewResume(s.Token, s.sessionId, *s.sequenceNumber)
	s.sequenceLock.RUnlock()

	logrus.Infof("shard %d: Resuming", s.ShardId)

	if err := s.write(resume); err != nil {
		logrus.Warnf("shard %d: Error whilst sending Resume: %s", s.ShardId, err.Error())
		s.identify()
	}
}

// SendHeartbeat sends the last sequence number seen on this shard back to
// the gateway; before the first dispatch that is an explicit null.
func (s *Shard) SendHeartbeat() error {
	s.sequenceLock.RLock()
	seq := s.sequenceNumber
	s.sequenceLock.RUnlock()

	logrus.Debugf("shard %d: sending heartbeat", s.ShardId)

	return s.write(payloads.NewHeartbeat(seq))
}

// UpdateStatus pushes a new presence for this shard's session.
func (s *Shard) UpdateStatus(presence user.CurrentPresence) error {
	logrus.Debugf("shard %d: sending presence update", s.ShardId)

	return s.write(payloads.NewPresenceUpdate(presence))
}

// RequestGuildMembers asks the gateway to stream a guild's member list in
// chunks; GUILD_MEMBERS_CHUNK responses carry the nonce back.
func (s *Shard) RequestGuildMembers(guildId uint64, limit uint16, filter payloads.ChunkGuildFilter, nonce string) error {
	logrus.Debugf("shard %d: requesting member chunks for guild %d", s.ShardId, guildId)

	return s.write(payloads.NewRequestGuildMembers(guildId, limit, filter, nonce))
}
