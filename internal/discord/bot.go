// Package discord adapts the command gate to Discord: it owns the session
// and dispatches chat messages to registered commands.
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"

	"github.com/keshon/server-warden/internal/config"
	"github.com/keshon/server-warden/internal/registry"
	"github.com/keshon/server-warden/internal/storage"
)

// Bot is a Discord bot.
type Bot struct {
	dg    *discordgo.Session
	cfg   *config.Config
	store *storage.Storage
	reg   *registry.Registry
	log   zerolog.Logger
}

func NewBot(cfg *config.Config, store *storage.Storage, reg *registry.Registry, log zerolog.Logger) *Bot {
	return &Bot{
		cfg:   cfg,
		store: store,
		reg:   reg,
		log:   log.With().Str("component", "discord").Logger(),
	}
}

// Run opens the session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	dg, err := discordgo.New("Bot " + b.cfg.DiscordToken)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	b.dg = dg

	dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentMessageContent

	dg.AddHandler(b.onReady)
	dg.AddHandler(b.onMessageCreate)

	if err := dg.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer dg.Close()

	<-ctx.Done()
	b.log.Info().Msg("shutdown signal received, closing session")
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.log.Info().
		Str("user", r.User.Username).
		Int("guilds", len(r.Guilds)).
		Msg("bot is ready")
}
