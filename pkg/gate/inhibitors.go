package gate

import (
	"context"
	"fmt"
)

// Attach appends inhibitors to the command held in v and returns it. It is
// the registration-time counterpart of an annotation: modules call it where a
// command is defined. v must be a *Command; anything else is a configuration
// error and panics, so module loading halts instead of silently skipping the
// guard.
func Attach(v any, ins ...Inhibitor) *Command {
	c, ok := v.(*Command)
	if !ok {
		panic(fmt.Sprintf("gate: Attach is only valid on *gate.Command definitions, got %T", v))
	}
	return c.Use(ins...)
}

// DMOnly allows an invocation only when it originated in a direct message.
func DMOnly() Inhibitor {
	return Inhibitor{
		Name: "dm-only",
		Check: func(_ context.Context, inv *Invocation) (bool, error) {
			return inv.DM, nil
		},
	}
}

// GuildOnly allows an invocation only when it carries a guild reference.
func GuildOnly() Inhibitor {
	return Inhibitor{
		Name: "guild-only",
		Check: func(_ context.Context, inv *Invocation) (bool, error) {
			return inv.GuildID != "", nil
		},
	}
}
