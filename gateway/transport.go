package gateway

import (
	"context"
	"io"

	"nhooyr.io/websocket"
)

// Conn is everything the shard requires of an open gateway connection:
// write one frame, read one frame, close. No connection-state queries;
// the caller owns exclusive write access for the duration of a send, and
// write failures are surfaced unchanged. Satisfied by *websocket.Conn.
type Conn interface {
	Write(ctx context.Context, typ websocket.MessageType, p []byte) error
	Reader(ctx context.Context) (websocket.MessageType, io.Reader, error)
	Close(code websocket.StatusCode, reason string) error
}
