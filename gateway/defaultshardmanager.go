package gateway

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/TicketsBot/gateway-client/cache"
	"github.com/go-redis/redis"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sirupsen/logrus"
)

// DefaultShardManager runs the shard range this node is responsible for,
// configured through the environment.
type DefaultShardManager struct {
	token   string
	options ShardOptions
	shards  map[int]*Shard

	cache       cache.PgCache
	redisClient *redis.Client
}

func NewDefaultShardManager(options ShardOptions) (manager *DefaultShardManager, err error) {
	manager = &DefaultShardManager{
		token:   os.Getenv("SHARDER_TOKEN"),
		options: options,
		shards:  make(map[int]*Shard),
	}

	// cache
	{
		threads, err := strconv.Atoi(os.Getenv("CACHE_THREADS"))
		if err != nil {
			return manager, err
		}

		connString := fmt.Sprintf(
			"postgres://%s:%s@%s/%s?pool_max_conns=%d",
			os.Getenv("CACHE_USER"),
			os.Getenv("CACHE_PASSWORD"),
			os.Getenv("CACHE_HOST"),
			os.Getenv("CACHE_NAME"),
			threads,
		)

		db, err := pgxpool.Connect(context.Background(), connString)
		if err != nil {
			return manager, err
		}

		manager.cache = cache.NewPgCache(db, cache.CacheOptions{
			Guilds:  true,
			Members: true,
			Users:   true,
		})

		if err := manager.cache.CreateSchema(context.Background()); err != nil {
			return manager, err
		}
	}

	manager.redisClient, err = manager.buildRedisClient()
	if err != nil {
		return
	}

	// create shards
	for i := options.ShardCount.Lowest; i < options.ShardCount.Highest; i++ {
		shard := NewShard(manager, manager.token, i, manager.options)
		manager.shards[i] = &shard
	}

	return
}

func (sm *DefaultShardManager) Connect() error {
	for _, shard := range sm.shards {
		go shard.EnsureConnect()
	}

	return nil
}

func (sm *DefaultShardManager) getRedis() *redis.Client {
	return sm.redisClient
}

func (sm *DefaultShardManager) getCache() *cache.PgCache {
	return &sm.cache
}

func (sm *DefaultShardManager) onFatalError(token string, err error) {
	logrus.Errorf("fatal gateway error, not reconnecting: %s", err.Error())
}

func (sm *DefaultShardManager) buildRedisClient() (client *redis.Client, err error) {
	threads, err := strconv.Atoi(os.Getenv("SHARDER_REDIS_THREADS"))
	if err != nil {
		return
	}

	options := &redis.Options{
		Network:      "tcp",
		Addr:         os.Getenv("SHARDER_REDIS_ADDR"),
		Password:     os.Getenv("SHARDER_REDIS_PASSWD"),
		PoolSize:     threads,
		MinIdleConns: threads,
	}

	client = redis.NewClient(options)

	// test conn
	return client, client.Ping().Err()
}
