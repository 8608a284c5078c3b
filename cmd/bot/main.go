package main

import (
	"context"
	"os"

	"annobot/internal/adapters/discord"
	"annobot/internal/application"
	"annobot/internal/config"
	"annobot/internal/infrastructure/database"
	"annobot/internal/infrastructure/detect"
	boti18n "annobot/internal/infrastructure/i18n"
	"annobot/internal/infrastructure/translate"
	"annobot/pkg/logx"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fallback := logx.New("info")
		fallback.Fatal().Err(err).Msg("❌ invalid configuration")
	}
	log := logx.New(cfg.LogLevel)

	ctx := context.Background()
	pool, err := database.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ database connection failed")
	}
	defer pool.Close()
	log.Info().Msg("✅ PostgreSQL connected")

	version, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ migrations failed")
	}
	log.Info().Uint("version", version).Msg("✅ migrations applied")

	channelRepo := database.NewChannelMapRepository(pool)
	languageRepo := database.NewLanguageRepository(pool)
	watchRepo := database.NewWatchlistRepository(pool)

	registry := application.NewRegistryService(channelRepo, languageRepo, watchRepo, log)
	if err := registry.LoadWatchlist(ctx); err != nil {
		log.Fatal().Err(err).Msg("❌ watchlist load failed")
	}

	translator, err := translate.New(ctx, translate.Config{
		CredentialsFile: cfg.GoogleCredentials,
		Timeout:         cfg.TranslateTimeout,
		RatePerSec:      cfg.TranslateRatePerSec,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("❌ translation provider init failed")
	}
	defer translator.Close()

	detector := detect.New()
	localizer := boti18n.NewTranslator(cfg.CanonicalLang, log)

	canonicalName, err := languageRepo.Name(ctx, cfg.CanonicalLang)
	if err != nil {
		canonicalName = cfg.CanonicalLang
	}
	composer := application.NewComposer(localizer, cfg.CanonicalLang, canonicalName)

	session, err := discord.NewSession(cfg.Token)
	if err != nil {
		log.Fatal().Err(err).Msg("❌ discord session failed")
	}
	transport := discord.NewTransport(session)

	announcer := application.NewAnnouncerService(translator, transport, channelRepo, composer, cfg.CanonicalLang, log)
	autoTranslate := application.NewAutoTranslateService(
		detector, translator, transport, registry, composer,
		cfg.CanonicalLang, cfg.CommandPrefix, log,
	)

	bot := discord.NewBot(session, cfg, announcer, autoTranslate, autoTranslate, registry, log)
	if err := bot.Start(); err != nil {
		log.Error().Err(err).Msg("❌ bot start failed")
		os.Exit(1)
	}
}
