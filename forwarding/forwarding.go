package forwarding

import (
	"encoding/json"

	"github.com/go-redis/redis"
	"github.com/sirupsen/logrus"
)

// EventKey is the redis list the workers consume from.
const EventKey = "gateway:events"

type Event struct {
	BotToken  string          `json:"bot_token"`
	BotId     uint64          `json:"bot_id"`
	ShardId   int             `json:"shard_id"`
	EventType string          `json:"event_type"`
	Data      json.RawMessage `json:"data"`
}

// ForwardEvent pushes the event onto the worker queue. Forwarding is fire
// and forget: a failed push is logged and dropped, never retried.
func ForwardEvent(client *redis.Client, event Event) {
	encoded, err := json.Marshal(event)
	if err != nil {
		logrus.Warnf("error marshalling event for forwarding: %s", err.Error())
		return
	}

	if err := client.RPush(EventKey, string(encoded)).Err(); err != nil {
		logrus.Warnf("error forwarding event: %s", err.Error())
	}
}
