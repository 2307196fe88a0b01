package discord

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/keshon/server-warden/internal/command"
	"github.com/keshon/server-warden/internal/storage"
	"github.com/keshon/server-warden/pkg/gate"
)

// parseInvocation splits a raw message into a command name and arguments. ok
// is false when the message does not start with the prefix or names nothing.
func parseInvocation(prefix, content string) (name string, args []string, ok bool) {
	if prefix == "" || !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}
	fields := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(fields) == 0 {
		return "", nil, false
	}
	return strings.ToLower(fields[0]), fields[1:], true
}

// findRunnable resolves name to a command that may be dispatched. Disabled
// commands are filtered here; Execute never checks the flag itself.
func (b *Bot) findRunnable(name string) (*gate.Command, bool) {
	c, ok := b.reg.Get(name)
	if !ok {
		return nil, false
	}
	if c.Disabled() {
		b.log.Debug().Str("command", c.Name()).Msg("command disabled, skipping")
		return nil, false
	}
	return c, true
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	name, args, ok := parseInvocation(b.cfg.CommandPrefix, m.Content)
	if !ok {
		return
	}
	c, ok := b.findRunnable(name)
	if !ok {
		return
	}

	log := b.log.With().
		Str("command", c.Name()).
		Str("user", m.Author.ID).
		Str("guild", m.GuildID).
		Logger()

	inv := &gate.Invocation{
		DM:      m.GuildID == "",
		GuildID: m.GuildID,
		Args:    args,
		Log:     log,
		Data: &command.MessageContext{
			Session: s,
			Event:   m,
			Storage: b.store,
		},
	}

	if err := c.Execute(context.Background(), inv); err != nil {
		log.Error().Err(err).Msg("command failed")
		_, _ = s.ChannelMessageSendEmbed(m.ChannelID, &discordgo.MessageEmbed{
			Description: "Error running command: " + err.Error(),
		})
		return
	}

	rec := storage.HistoryRecord{
		ChannelID: m.ChannelID,
		UserID:    m.Author.ID,
		Username:  m.Author.Username,
		Command:   c.Name(),
		Datetime:  time.Now().UTC(),
	}
	if err := b.store.AppendHistory(m.GuildID, rec); err != nil {
		log.Warn().Err(err).Msg("failed to record command history")
	}
}
