package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripEveryoneTrigger(t *testing.T) {
	tests := []struct {
		name         string
		in           string
		wantClean    string
		wantEveryone bool
	}{
		{"no trigger", "server restart at noon", "server restart at noon", false},
		{"flag at end", "server restart at noon --everyone", "server restart at noon", true},
		{"flag at start", "--everyone server restart", "server restart", true},
		{"mention form", "server restart @everyone now", "server restart  now", true},
		{"upper casing", "maintenance --EVERYONE window", "maintenance  window", true},
		{"mixed casing mention", "heads up @EvErYoNe", "heads up", true},
		{"both forms", "@everyone update --everyone", "update", true},
		{"trigger only", "--everyone", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clean, everyone := StripEveryoneTrigger(tt.in)
			assert.Equal(t, tt.wantEveryone, everyone)
			assert.Equal(t, tt.wantClean, clean)
			assert.NotContains(t, strings.ToLower(clean), "--everyone")
			assert.NotContains(t, strings.ToLower(clean), "@everyone")
		})
	}
}

func TestWordTokens(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"Hello, World!", []string{"hello", "world"}},
		{"  a  b\tc ", []string{"a", "b", "c"}},
		{"don't stop", []string{"don", "t", "stop"}},
		{"under_score", []string{"under", "score"}},
		{"héllo wörld 42", []string{"héllo", "wörld", "42"}},
		{"!!!", nil},
		{"", nil},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WordTokens(tt.in), "input %q", tt.in)
	}
}

func TestEquivalent(t *testing.T) {
	tests := []struct {
		name       string
		original   string
		translated string
		want       bool
	}{
		{"case and whitespace only", "Hello World", "hello   world", true},
		{"identical", "Bonjour", "Bonjour", true},
		{"punctuation only", "ok!", "ok.", true},
		{"real translation", "Bonjour", "Hello", false},
		{"extra word", "hello", "hello there", false},
		{"word order", "world hello", "hello world", false},
		{"empty translation", "anything", "   ", true},
		{"trailing ellipsis", "done", "done...", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Equivalent(tt.original, tt.translated))
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "abcde...", Truncate("abcdefgh", 5))
	// Rune-based, never cuts inside a multi-byte character.
	assert.Equal(t, "héll...", Truncate("héllo wörld", 4))
	assert.Equal(t, "exact", Truncate("exact", 5))
}

func TestNewAnnouncementRequest(t *testing.T) {
	req := NewAnnouncementRequest("Patch day --everyone", "user1", "chan1", "guild1")
	require.True(t, req.BroadcastEveryone)
	assert.Equal(t, "Patch day", req.CleanText)
	assert.Equal(t, "Patch day --everyone", req.Text)
	assert.Equal(t, "guild1", req.GuildID)

	plain := NewAnnouncementRequest("Patch day", "user1", "chan1", "guild1")
	assert.False(t, plain.BroadcastEveryone)
	assert.Equal(t, "Patch day", plain.CleanText)
}

func TestNewFanoutSummary(t *testing.T) {
	sum := NewFanoutSummary([]DispatchOutcome{
		{LanguageCode: "en", Status: StatusSent},
		{LanguageCode: "fr", Status: StatusChannelNotFound},
		{LanguageCode: "de", Status: StatusSent},
	})
	assert.Equal(t, 2, sum.SentCount)
	assert.Len(t, sum.Outcomes, 3)
}
