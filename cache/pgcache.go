package cache

import (
	"context"
	"encoding/json"

	"github.com/TicketsBot/gateway-client/objects/guild"
	"github.com/TicketsBot/gateway-client/objects/member"
	"github.com/TicketsBot/gateway-client/objects/user"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/sirupsen/logrus"
)

// PgCache stores gateway entities as JSONB so workers can look them up
// without holding their own connections. Store and delete operations are
// best effort: failures are logged, the read loop is never blocked on them.
type PgCache struct {
	db      *pgxpool.Pool
	Options CacheOptions
}

type CacheOptions struct {
	Guilds  bool
	Members bool
	Users   bool
}

func NewPgCache(db *pgxpool.Pool, options CacheOptions) PgCache {
	return PgCache{
		db:      db,
		Options: options,
	}
}

func (c *PgCache) CreateSchema(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS guilds("guild_id" int8 NOT NULL UNIQUE, "data" jsonb NOT NULL, PRIMARY KEY("guild_id"));`,
		`CREATE TABLE IF NOT EXISTS members("guild_id" int8 NOT NULL, "user_id" int8 NOT NULL, "data" jsonb NOT NULL, PRIMARY KEY("guild_id", "user_id"));`,
		`CREATE TABLE IF NOT EXISTS users("user_id" int8 NOT NULL UNIQUE, "data" jsonb NOT NULL, PRIMARY KEY("user_id"));`,
	}

	for _, query := range queries {
		if _, err := c.db.Exec(ctx, query); err != nil {
			return err
		}
	}

	return nil
}

func (c *PgCache) StoreGuild(g guild.Guild) {
	if !c.Options.Guilds {
		return
	}

	encoded, err := json.Marshal(g)
	if err != nil {
		logrus.Warnf("error marshalling guild %d: %s", g.Id, err.Error())
		return
	}

	query := `INSERT INTO guilds("guild_id", "data") VALUES($1, $2) ON CONFLICT("guild_id") DO UPDATE SET "data" = $2;`
	if _, err := c.db.Exec(context.Background(), query, g.Id, string(encoded)); err != nil {
		logrus.Warnf("error storing guild %d: %s", g.Id, err.Error())
	}
}

func (c *PgCache) GetGuild(guildId uint64) (g guild.Guild, found bool) {
	if !c.Options.Guilds {
		return
	}

	var raw string
	query := `SELECT "data" FROM guilds WHERE "guild_id" = $1;`
	if err := c.db.QueryRow(context.Background(), query, guildId).Scan(&raw); err != nil {
		return
	}

	if err := json.Unmarshal([]byte(raw), &g); err != nil {
		return
	}

	g.Id = guildId
	found = true
	return
}

func (c *PgCache) DeleteGuild(guildId uint64) {
	if !c.Options.Guilds {
		return
	}

	query := `DELETE FROM guilds WHERE "guild_id" = $1;`
	if _, err := c.db.Exec(context.Background(), query, guildId); err != nil {
		logrus.Warnf("error deleting guild %d: %s", guildId, err.Error())
	}
}

func (c *PgCache) StoreMember(m member.Member, guildId uint64) {
	if !c.Options.Members {
		return
	}

	encoded, err := json.Marshal(m)
	if err != nil {
		logrus.Warnf("error marshalling member %d: %s", m.User.Id, err.Error())
		return
	}

	query := `INSERT INTO members("guild_id", "user_id", "data") VALUES($1, $2, $3) ON CONFLICT("guild_id", "user_id") DO UPDATE SET "data" = $3;`
	if _, err := c.db.Exec(context.Background(), query, guildId, m.User.Id, string(encoded)); err != nil {
		logrus.Warnf("error storing member %d: %s", m.User.Id, err.Error())
	}

	c.StoreUser(m.User)
}

func (c *PgCache) DeleteMember(userId, guildId uint64) {
	if !c.Options.Members {
		return
	}

	query := `DELETE FROM members WHERE "guild_id" = $1 AND "user_id" = $2;`
	if _, err := c.db.Exec(context.Background(), query, guildId, userId); err != nil {
		logrus.Warnf("error deleting member %d: %s", userId, err.Error())
	}
}

func (c *PgCache) StoreUser(u user.User) {
	if !c.Options.Users {
		return
	}

	encoded, err := json.Marshal(u)
	if err != nil {
		logrus.Warnf("error marshalling user %d: %s", u.Id, err.Error())
		return
	}

	query := `INSERT INTO users("user_id", "data") VALUES($1, $2) ON CONFLICT("user_id") DO UPDATE SET "data" = $2;`
	if _, err := c.db.Exec(context.Background(), query, u.Id, string(encoded)); err != nil {
		logrus.Warnf("error storing user %d: %s", u.Id, err.Error())
	}
}
