package output

import (
	"context"
	"errors"
)

// ErrChannelNotFound marks a channel id that does not resolve against the
// live transport anymore.
var ErrChannelNotFound = errors.New("channel not found")

// ChannelHandle is a resolved, live channel.
type ChannelHandle struct {
	ID      string
	Name    string
	GuildID string
}

// Transport is the chat platform's send/receive primitive.
type Transport interface {
	// ResolveChannel validates id against the live platform. A stored id
	// never implies the channel still exists.
	ResolveChannel(ctx context.Context, id string) (*ChannelHandle, error)
	// Send posts content to a resolved channel.
	Send(ctx context.Context, channel *ChannelHandle, content string) error
}
