package gateway

import (
	"github.com/TicketsBot/gateway-client/cache"
	"github.com/go-redis/redis"
)

type ShardManager interface {
	Connect() error
	getRedis() *redis.Client
	getCache() *cache.PgCache
	onFatalError(token string, err error)
}
