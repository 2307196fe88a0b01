// Package confess forwards anonymous confessions from direct messages to a
// configured guild channel.
package confess

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/server-warden/internal/command"
	"github.com/keshon/server-warden/internal/config"
	"github.com/keshon/server-warden/internal/module"
	"github.com/keshon/server-warden/pkg/gate"
)

// Module builds the confession module. The command only makes sense in a
// direct message, so the DM-only inhibitor is attached at definition time.
func Module(cfg *config.Config) *module.Module {
	m := module.New("confess")

	gate.Attach(
		m.Command("confess", confessHandler(cfg), nil),
		gate.DMOnly(),
	)

	return m
}

func confessHandler(cfg *config.Config) gate.Handler {
	return func(_ context.Context, inv *gate.Invocation) error {
		mc, ok := inv.Data.(*command.MessageContext)
		if !ok {
			return fmt.Errorf("unexpected payload %T", inv.Data)
		}

		if cfg.ConfessChannelID == "" {
			return command.Reply(mc, "Confessions are not set up on this bot.")
		}

		message := strings.TrimSpace(strings.Join(inv.Args, " "))
		if message == "" {
			return command.Reply(mc, "What do you need to confess? Usage: confess <message>")
		}

		_, err := mc.Session.ChannelMessageSendEmbed(cfg.ConfessChannelID, &discordgo.MessageEmbed{
			Title:       "🎭 Anonymous confession",
			Description: message,
		})
		if err != nil {
			return fmt.Errorf("deliver confession: %w", err)
		}
		return command.Reply(mc, "Your confession has been delivered. Your secret is safe.")
	}
}
