package main

import (
	"os"
	"strconv"

	"github.com/TicketsBot/gateway-client/gateway"
	"github.com/TicketsBot/gateway-client/intents"
	"github.com/TicketsBot/gateway-client/objects/user"
)

func main() {
	manager, err := gateway.NewDefaultShardManager(gateway.ShardOptions{
		ShardCount: buildShardCount(),
		Presence:   user.BuildPresence(user.ActivityTypePlaying, "DM for help | t!help"),
		Intents: []intents.Intent{
			intents.Guilds,
			intents.GuildMembers,
			intents.GuildMessages,
			intents.GuildMessageReactions,
			intents.GuildWebhooks,
			intents.DirectMessages,
			intents.DirectMessageReactions,
		},
	})
	if err != nil {
		panic(err)
	}

	if err := manager.Connect(); err != nil {
		panic(err)
	}

	gateway.WaitForInterrupt()
}

func buildShardCount() (count gateway.ShardCount) {
	var err error

	// parse total
	count.Total, err = strconv.Atoi(os.Getenv("SHARDER_COUNT_TOTAL"))
	if err != nil {
		panic(err)
	}

	// parse highest (exclusive)
	count.Highest, err = strconv.Atoi(os.Getenv("SHARDER_COUNT_HIGHEST"))
	if err != nil {
		panic(err)
	}

	// parse lowest (inclusive)
	count.Lowest, err = strconv.Atoi(os.Getenv("SHARDER_COUNT_LOWEST"))
	if err != nil {
		panic(err)
	}

	return
}
