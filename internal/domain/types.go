package domain

// AnnouncementRequest is one operator-authored announcement, immutable once
// built. CleanText is the text that gets translated and dispatched; the
// broadcast trigger has already been stripped from it (see NewAnnouncementRequest).
type AnnouncementRequest struct {
	Text              string
	CleanText         string
	BroadcastEveryone bool
	RequestingUserID  string
	OriginChannelID   string
	GuildID           string
}

// NewAnnouncementRequest derives BroadcastEveryone from the raw text and
// strips the trigger exactly once, before any translation can see it.
func NewAnnouncementRequest(text, requestingUserID, originChannelID, guildID string) AnnouncementRequest {
	clean, everyone := StripEveryoneTrigger(text)
	return AnnouncementRequest{
		Text:              text,
		CleanText:         clean,
		BroadcastEveryone: everyone,
		RequestingUserID:  requestingUserID,
		OriginChannelID:   originChannelID,
		GuildID:           guildID,
	}
}

// Destination is one (language -> channel) mapping of a guild.
type Destination struct {
	LanguageCode string
	LanguageName string
	ChannelID    string
}

// Language is an entry of the announcement language catalog.
type Language struct {
	Code string
	Name string
}

type DispatchStatus string

const (
	StatusSent            DispatchStatus = "sent"
	StatusChannelNotFound DispatchStatus = "channel_not_found"
	StatusSendFailed      DispatchStatus = "send_failed"
)

// DispatchOutcome is the result for a single destination of one fan-out run.
type DispatchOutcome struct {
	LanguageCode string
	ChannelID    string
	Status       DispatchStatus
	Detail       string
}

// FanoutSummary aggregates the outcomes of one fan-out run. Outcomes are in
// destination snapshot order, never completion order, and SentCount always
// equals the number of outcomes with StatusSent.
type FanoutSummary struct {
	SentCount int
	Outcomes  []DispatchOutcome
}

// NewFanoutSummary builds a summary from ordered outcomes.
func NewFanoutSummary(outcomes []DispatchOutcome) *FanoutSummary {
	s := &FanoutSummary{Outcomes: outcomes}
	for _, o := range outcomes {
		if o.Status == StatusSent {
			s.SentCount++
		}
	}
	return s
}

// InboundMessage is the already-parsed tuple the chat SDK glue hands to the
// auto-translate pipeline.
type InboundMessage struct {
	AuthorID    string
	AuthorIsBot bool
	ChannelID   string
	GuildID     string
	Content     string
}

// TranslationDecision is the ephemeral outcome of one filter-pipeline run.
type TranslationDecision struct {
	DetectedLang   string // ISO 639-1 code, "" when detection failed
	TranslatedText string
	ShouldPublish  bool
	Reason         string
}
