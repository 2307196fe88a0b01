// Package core provides the always-on utility commands.
package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/keshon/server-warden/internal/command"
	"github.com/keshon/server-warden/internal/module"
	"github.com/keshon/server-warden/internal/registry"
	"github.com/keshon/server-warden/pkg/gate"
)

// Module builds the core module. reg is needed by toggle, which flips other
// commands' disabled flag at runtime.
func Module(reg *registry.Registry) *module.Module {
	m := module.New("core")

	m.Command("ping", pingHandler, &gate.Options{Aliases: []string{"pong"}})
	m.Command("roll", rollHandler, &gate.Options{Aliases: []string{"dice"}})
	m.Command("toggle", toggleHandler(reg), nil)

	return m
}

func pingHandler(_ context.Context, inv *gate.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return fmt.Errorf("unexpected payload %T", inv.Data)
	}
	latency := mc.Session.HeartbeatLatency().Milliseconds()
	return command.Reply(mc, fmt.Sprintf("🏓 Pong! Response time: `%dms`", latency))
}

func rollHandler(_ context.Context, inv *gate.Invocation) error {
	mc, ok := inv.Data.(*command.MessageContext)
	if !ok {
		return fmt.Errorf("unexpected payload %T", inv.Data)
	}

	formula := "1d6"
	if len(inv.Args) > 0 {
		formula = strings.ToLower(strings.TrimSpace(inv.Args[0]))
	}

	rolls, total, err := rollDice(formula)
	if err != nil {
		return command.Reply(mc, fmt.Sprintf("Can't parse `%s`. Try something like `2d6+3`.", formula))
	}
	return command.Reply(mc, fmt.Sprintf("🎲 `%s` rolled %v, total **%d**", formula, rolls, total))
}

// toggleHandler flips a command's disabled flag. The toggle command itself is
// off-limits so the switch cannot lock itself out.
func toggleHandler(reg *registry.Registry) gate.Handler {
	return func(_ context.Context, inv *gate.Invocation) error {
		mc, ok := inv.Data.(*command.MessageContext)
		if !ok {
			return fmt.Errorf("unexpected payload %T", inv.Data)
		}
		if len(inv.Args) == 0 {
			return command.Reply(mc, "Usage: toggle <command>")
		}

		name := inv.Args[0]
		if name == "toggle" {
			return command.Reply(mc, "Not toggling the toggle.")
		}
		c, ok := reg.Get(name)
		if !ok {
			return command.Reply(mc, fmt.Sprintf("Unknown command `%s`.", name))
		}

		if c.Disabled() {
			c.Enable()
			return command.Reply(mc, fmt.Sprintf("Command `%s` enabled.", c.Name()))
		}
		c.Disable()
		return command.Reply(mc, fmt.Sprintf("Command `%s` disabled.", c.Name()))
	}
}
