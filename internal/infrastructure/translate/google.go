package translate

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"

	"annobot/internal/ports/output"
)

var _ output.Translator = (*GoogleTranslator)(nil)

// Config for the Google Cloud Translate adapter.
type Config struct {
	// CredentialsFile is optional; when empty, application default
	// credentials apply.
	CredentialsFile string
	// Timeout bounds every provider call. A timed-out call surfaces as a
	// provider failure to the caller.
	Timeout time.Duration
	// RatePerSec caps outbound provider calls; the provider is rate-limited
	// and fan-out bursts all destinations at once.
	RatePerSec float64
}

// GoogleTranslator translates via the Google Cloud Translation API with the
// source language auto-detected by the provider.
type GoogleTranslator struct {
	client  *translate.Client
	timeout time.Duration
	limiter *rate.Limiter
}

func New(ctx context.Context, cfg Config) (*GoogleTranslator, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("translate client: %w", err)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RatePerSec <= 0 {
		cfg.RatePerSec = 5
	}
	return &GoogleTranslator{
		client:  client,
		timeout: cfg.Timeout,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSec), 1),
	}, nil
}

func (g *GoogleTranslator) Translate(ctx context.Context, text, targetLang string) (string, error) {
	tag, err := language.Parse(targetLang)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", targetLang, err)
	}

	if err := g.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit wait: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	translations, err := g.client.Translate(ctx, []string{text}, tag, nil)
	if err != nil {
		return "", fmt.Errorf("translate: %w", err)
	}
	if len(translations) == 0 {
		return "", errors.New("translate: provider returned no translation")
	}
	return translations[0].Text, nil
}

func (g *GoogleTranslator) Close() error {
	return g.client.Close()
}
