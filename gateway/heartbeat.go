package gateway

import (
	"time"

	"github.com/TicketsBot/gateway-client/utils"
	"github.com/sirupsen/logrus"
)

// CountdownHeartbeat sends a heartbeat every interval negotiated in Hello,
// reconnecting if the gateway stops acknowledging them.
func (s *Shard) CountdownHeartbeat(ticker *time.Ticker) {
	for {
		select {
		case <-s.killHeartbeat:
			ticker.Stop()
			return
		case <-ticker.C:
			s.heartbeatLock.RLock()
			lastAcknowledgement := s.lastHeartbeatAcknowledgement
			s.heartbeatLock.RUnlock()

			if s.hasDoneHeartbeat && utils.GetCurrentTimeMillis()-lastAcknowledgement > int64(2*s.heartbeatInterval) {
				logrus.Warnf("shard %d: no heartbeat acknowledgement, reconnecting", s.ShardId)

				ticker.Stop()
				s.Kill()
				go s.EnsureConnect()
				return
			}

			if err := s.SendHeartbeat(); err != nil {
				logrus.Warnf("shard %d: Error whilst sending heartbeat: %s", s.ShardId, err.Error())
				continue
			}

			s.hasDoneHeartbeat = true
		}
	}
}
