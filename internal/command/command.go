// Package command holds the transport contexts and reply helpers shared by
// the concrete command packages.
package command

import (
	"github.com/bwmarrin/discordgo"

	"github.com/keshon/server-warden/internal/storage"
)

// MessageContext is what the Discord adapter hands a command invoked from a
// chat message. It travels as gate.Invocation.Data.
type MessageContext struct {
	Session *discordgo.Session
	Event   *discordgo.MessageCreate
	Storage *storage.Storage
}

// Reply sends plain text to the invoking channel.
func Reply(mc *MessageContext, content string) error {
	_, err := mc.Session.ChannelMessageSend(mc.Event.ChannelID, content)
	return err
}

// ReplyEmbed sends an embed to the invoking channel.
func ReplyEmbed(mc *MessageContext, embed *discordgo.MessageEmbed) error {
	_, err := mc.Session.ChannelMessageSendEmbed(mc.Event.ChannelID, embed)
	return err
}
