package input

import (
	"context"

	"annobot/internal/domain"
)

// AnnouncerUseCase fans one announcement out to every configured language
// channel of the requesting guild.
type AnnouncerUseCase interface {
	// Fanout translates, formats and dispatches the announcement to each
	// destination independently and returns the aggregated summary. It
	// fails fast with domain.ErrNoDestinations when the guild has no
	// destinations configured.
	Fanout(ctx context.Context, req domain.AnnouncementRequest) (*domain.FanoutSummary, error)
}

// AutoTranslateUseCase is invoked once per inbound message the bot observes.
type AutoTranslateUseCase interface {
	// OnMessage runs the filter pipeline. It never returns an error: every
	// failure is recovered inside the pipeline so one message can never
	// take down the event stream.
	OnMessage(ctx context.Context, msg domain.InboundMessage)
}
