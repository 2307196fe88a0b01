// Package purge bulk-deletes recent messages in a guild channel.
package purge

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/keshon/server-warden/internal/command"
	"github.com/keshon/server-warden/internal/module"
	"github.com/keshon/server-warden/pkg/cooldown"
	"github.com/keshon/server-warden/pkg/gate"
)

const (
	defaultCount = 10
	maxCount     = 100
)

// Module builds the purge module. Purging is guild-only and rate limited per
// user via a cooldown inhibitor on top of the built-in guard. The cooldown
// sweeper runs until ctx is done.
func Module(ctx context.Context) *module.Module {
	m := module.New("purge")
	cd := cooldown.New(30*time.Second, 1)
	go cooldown.RunSweeper(ctx, cd, time.Minute, time.Hour)

	gate.Attach(
		m.Command("purge", purgeHandler, &gate.Options{Aliases: []string{"nuke"}}),
		gate.GuildOnly(),
		cooldownInhibitor(cd),
	)

	return m
}

// cooldownInhibitor blocks repeat purges from the same user inside the
// cooldown window. It tells the user instead of failing silently; the chain
// still sees a plain block.
func cooldownInhibitor(cd *cooldown.Keeper) gate.Inhibitor {
	return gate.Inhibitor{
		Name: "purge-cooldown",
		Check: func(_ context.Context, inv *gate.Invocation) (bool, error) {
			mc, ok := inv.Data.(*command.MessageContext)
			if !ok {
				return false, fmt.Errorf("unexpected payload %T", inv.Data)
			}
			if cd.Allow(mc.Event.Author.ID) {
				return true, nil
			}
			_ = command.Reply(mc, "Easy there. Purge is on cooldown.")
			return false, nil
		},
	}
}

func purgeHandler(_ context.Context, inv *gate.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return fmt.Errorf("unexpected payload %T", inv.Data)
	}

	count := defaultCount
	if len(inv.Args) > 0 {
		n, err := strconv.Atoi(inv.Args[0])
		if err != nil || n < 1 {
			return command.Reply(mc, "Usage: purge <1-100>")
		}
		count = min(n, maxCount)
	}

	msgs, err := mc.Session.ChannelMessages(mc.Event.ChannelID, count, mc.Event.ID, "", "")
	if err != nil {
		return fmt.Errorf("fetch messages: %w", err)
	}
	if len(msgs) == 0 {
		return command.Reply(mc, "Nothing to purge.")
	}

	ids := make([]string, 0, len(msgs))
	for _, msg := range msgs {
		ids = append(ids, msg.ID)
	}
	if err := mc.Session.ChannelMessagesBulkDelete(mc.Event.ChannelID, ids); err != nil {
		return fmt.Errorf("bulk delete: %w", err)
	}
	return command.Reply(mc, fmt.Sprintf("🧹 Purged %d messages.", len(ids)))
}
