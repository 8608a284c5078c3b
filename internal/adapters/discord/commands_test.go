package discord

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"annobot/internal/config"
	"annobot/internal/domain"
)

type fakeRegistry struct {
	catalog map[string]string
}

func (f *fakeRegistry) SetLanguageChannel(context.Context, string, string, string) error { return nil }
func (f *fakeRegistry) RemoveLanguageChannel(context.Context, string, string) error      { return nil }
func (f *fakeRegistry) Destinations(context.Context, string) ([]domain.Destination, error) {
	return nil, nil
}
func (f *fakeRegistry) AddLanguage(context.Context, string, string) error { return nil }
func (f *fakeRegistry) RemoveLanguage(context.Context, string) error      { return nil }
func (f *fakeRegistry) Languages(context.Context) ([]domain.Language, error) {
	var out []domain.Language
	for code, name := range f.catalog {
		out = append(out, domain.Language{Code: code, Name: name})
	}
	return out, nil
}
func (f *fakeRegistry) LanguageName(_ context.Context, code string) (string, error) {
	if name, ok := f.catalog[code]; ok {
		return name, nil
	}
	return "", domain.ErrUnknownLanguage
}
func (f *fakeRegistry) ToggleWatch(context.Context, string) (bool, error) { return false, nil }
func (f *fakeRegistry) IsWatched(string) bool                             { return false }
func (f *fakeRegistry) WatchedChannels() []string                         { return nil }

func TestResolveLanguageArg(t *testing.T) {
	b := &Bot{
		config:   &config.Config{CommandPrefix: "!"},
		registry: &fakeRegistry{catalog: map[string]string{"es": "Spanish", "fr": "French"}},
	}
	ctx := context.Background()

	tests := []struct {
		arg, wantCode, wantName string
	}{
		{"es", "es", "Spanish"},
		{"ES", "es", "Spanish"},
		{"Spanish", "es", "Spanish"},
		{"spanish", "es", "Spanish"},
		{"french", "fr", "French"},
		{"it", "it", "it"}, // not in the catalog: pass through to the provider
	}
	for _, tt := range tests {
		code, name := b.resolveLanguageArg(ctx, tt.arg)
		assert.Equal(t, tt.wantCode, code, "arg %q", tt.arg)
		assert.Equal(t, tt.wantName, name, "arg %q", tt.arg)
	}
}
