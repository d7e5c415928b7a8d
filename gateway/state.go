package gateway

type State int

const (
	DEAD State = iota
	CONNECTING
	CONNECTED
	DISCONNECTING
)
