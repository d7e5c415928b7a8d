package member

import "github.com/TicketsBot/gateway-client/objects/user"

type Member struct {
	User     user.User `json:"user"`
	Nick     string    `json:"nick"`
	Roles    []string  `json:"roles"`
	JoinedAt string    `json:"joined_at"`
}
