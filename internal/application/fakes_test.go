package application

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"annobot/internal/domain"
	"annobot/internal/ports/output"
)

// --- collaborator fakes ---

type fakeTranslator struct {
	mu    sync.Mutex
	calls int
	// fn overrides the default "[lang] text" echo translation.
	fn func(text, targetLang string) (string, error)
}

func (f *fakeTranslator) Translate(_ context.Context, text, targetLang string) (string, error) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	if f.fn != nil {
		return f.fn(text, targetLang)
	}
	return "[" + targetLang + "] " + text, nil
}

func (f *fakeTranslator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

type fakeDetector struct {
	mu    sync.Mutex
	calls int
	code  string
	ok    bool
}

func (f *fakeDetector) Detect(_ context.Context, _ string) (string, bool) {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
	return f.code, f.ok
}

type sentMessage struct {
	ChannelID string
	Content   string
}

type fakeTransport struct {
	mu            sync.Mutex
	sent          []sentMessage
	missing       map[string]bool          // channel ids that fail resolution
	sendErr       map[string]error         // per-channel send failure
	failNextSends int                      // fail the next N sends regardless of channel
	sendDelay     map[string]time.Duration // simulate completion order scrambling
}

func (f *fakeTransport) ResolveChannel(_ context.Context, id string) (*output.ChannelHandle, error) {
	if f.missing[id] {
		return nil, fmt.Errorf("resolve channel %s: %w", id, output.ErrChannelNotFound)
	}
	return &output.ChannelHandle{ID: id, Name: "chan-" + id}, nil
}

func (f *fakeTransport) Send(_ context.Context, channel *output.ChannelHandle, content string) error {
	if d, ok := f.sendDelay[channel.ID]; ok {
		time.Sleep(d)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failNextSends > 0 {
		f.failNextSends--
		return fmt.Errorf("send to channel %s: gateway closed", channel.ID)
	}
	if err := f.sendErr[channel.ID]; err != nil {
		return err
	}
	f.sent = append(f.sent, sentMessage{ChannelID: channel.ID, Content: content})
	return nil
}

func (f *fakeTransport) sentMessages() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]sentMessage, len(f.sent))
	copy(out, f.sent)
	return out
}

// --- repository fakes ---

type memChannelMap struct {
	mu    sync.Mutex
	items map[string]map[string]string // guild -> lang -> channel
}

func newMemChannelMap() *memChannelMap {
	return &memChannelMap{items: make(map[string]map[string]string)}
}

func (m *memChannelMap) Upsert(_ context.Context, guildID, languageCode, channelID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items[guildID] == nil {
		m.items[guildID] = make(map[string]string)
	}
	m.items[guildID][languageCode] = channelID
	return nil
}

func (m *memChannelMap) Remove(_ context.Context, guildID, languageCode string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items[guildID], languageCode)
	return nil
}

func (m *memChannelMap) ListByGuild(_ context.Context, guildID string) ([]domain.Destination, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	codes := make([]string, 0, len(m.items[guildID]))
	for code := range m.items[guildID] {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]domain.Destination, 0, len(codes))
	for _, code := range codes {
		out = append(out, domain.Destination{LanguageCode: code, LanguageName: code, ChannelID: m.items[guildID][code]})
	}
	return out, nil
}

type memLanguages struct {
	mu    sync.Mutex
	items map[string]string
}

func newMemLanguages(codes map[string]string) *memLanguages {
	if codes == nil {
		codes = make(map[string]string)
	}
	return &memLanguages{items: codes}
}

func (m *memLanguages) Add(_ context.Context, code, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[code]; ok {
		return domain.ErrLanguageExists
	}
	m.items[code] = name
	return nil
}

func (m *memLanguages) Remove(_ context.Context, code string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.items[code]; !ok {
		return domain.ErrUnknownLanguage
	}
	delete(m.items, code)
	return nil
}

func (m *memLanguages) Name(_ context.Context, code string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name, ok := m.items[code]
	if !ok {
		return "", domain.ErrUnknownLanguage
	}
	return name, nil
}

func (m *memLanguages) List(_ context.Context) ([]domain.Language, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	codes := make([]string, 0, len(m.items))
	for code := range m.items {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	out := make([]domain.Language, 0, len(codes))
	for _, code := range codes {
		out = append(out, domain.Language{Code: code, Name: m.items[code]})
	}
	return out, nil
}

type memWatchlist struct {
	mu    sync.Mutex
	items map[string]struct{}
}

func newMemWatchlist(ids ...string) *memWatchlist {
	m := &memWatchlist{items: make(map[string]struct{})}
	for _, id := range ids {
		m.items[id] = struct{}{}
	}
	return m
}

func (m *memWatchlist) Add(_ context.Context, channelID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items[channelID] = struct{}{}
	return nil
}

func (m *memWatchlist) Remove(_ context.Context, channelID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, channelID)
	return nil
}

func (m *memWatchlist) List(_ context.Context) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	ids := make([]string, 0, len(m.items))
	for id := range m.items {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

// --- localization stub ---

type stubT struct{}

func (stubT) T(_, key string, data map[string]any) string {
	switch key {
	case "announcement.header":
		return "📢 Announcement"
	case "announcement.original":
		return fmt.Sprintf("Original (%v)", data["Lang"])
	case "autotranslate.header":
		return "🔄 Auto Translation"
	case "autotranslate.original":
		return fmt.Sprintf("Original (%v)", data["Lang"])
	case "autotranslate.translated":
		return fmt.Sprintf("Translation (%v)", data["Lang"])
	case "autotranslate.failed":
		return fmt.Sprintf("⚠️ Auto-translation failed: %v", data["Reason"])
	case "translate.header":
		return "🌐 Translation"
	case "translate.original":
		return "Original"
	case "lang.unknown":
		return "Unknown"
	}
	return key
}

func testComposer() *Composer {
	return NewComposer(stubT{}, "en", "English")
}

// staticWatch watches a fixed set of channels.
type staticWatch map[string]bool

func (w staticWatch) IsWatched(channelID string) bool { return w[channelID] }
