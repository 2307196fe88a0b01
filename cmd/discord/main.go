package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/keshon/server-warden/internal/command/confess"
	"github.com/keshon/server-warden/internal/command/core"
	"github.com/keshon/server-warden/internal/command/purge"
	"github.com/keshon/server-warden/internal/config"
	"github.com/keshon/server-warden/internal/discord"
	"github.com/keshon/server-warden/internal/logging"
	"github.com/keshon/server-warden/internal/registry"
	"github.com/keshon/server-warden/internal/storage"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		zlog.Fatal().Err(err).Msg("configuration")
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFile)
	logger.Info().Msg("starting server-warden bot")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		logger.Fatal().Err(err).Msg("open storage")
	}
	defer store.Close()

	reg := registry.New()
	core.Module(reg).Register(reg)
	confess.Module(cfg).Register(reg)
	purge.Module(ctx).Register(reg)
	logger.Info().Int("commands", len(reg.All())).Msg("commands registered")

	bot := discord.NewBot(cfg, store, reg, logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- bot.Run(ctx)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Info().Str("signal", s.String()).Msg("shutting down")
		cancel()
		select {
		case <-errCh:
		case <-time.After(10 * time.Second):
			logger.Warn().Msg("session did not close in time")
		}
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("discord bot error")
		}
		cancel()
	}

	logger.Info().Msg("discord bot exited cleanly")
}
