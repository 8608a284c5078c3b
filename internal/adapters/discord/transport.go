package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"annobot/internal/ports/output"
)

var _ output.Transport = (*Transport)(nil)

// Transport implements the channel transport port over a discordgo session.
type Transport struct {
	session *discordgo.Session
}

func NewTransport(session *discordgo.Session) *Transport {
	return &Transport{session: session}
}

// ResolveChannel checks id against the gateway state first and falls back
// to a REST lookup, so a stale stored id is caught before any send.
func (t *Transport) ResolveChannel(ctx context.Context, id string) (*output.ChannelHandle, error) {
	if id == "" {
		return nil, output.ErrChannelNotFound
	}
	ch, err := t.session.State.Channel(id)
	if err != nil {
		ch, err = t.session.Channel(id, discordgo.WithContext(ctx))
		if err != nil {
			// Keep the REST cause: a rate-limited lookup is not a deleted
			// channel, and the outcome detail should say which it was.
			return nil, fmt.Errorf("resolve channel %s: %w: %v", id, output.ErrChannelNotFound, err)
		}
	}
	return &output.ChannelHandle{ID: ch.ID, Name: ch.Name, GuildID: ch.GuildID}, nil
}

func (t *Transport) Send(ctx context.Context, channel *output.ChannelHandle, content string) error {
	if _, err := t.session.ChannelMessageSend(channel.ID, content, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("send to channel %s: %w", channel.ID, err)
	}
	return nil
}
