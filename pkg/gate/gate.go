// Package gate provides the command-execution gate: a named command whose
// handler only runs after an ordered chain of inhibitors allows the
// invocation. How commands are registered and dispatched (Discord, CLI,
// HTTP) is defined by adapters that wrap this.
package gate

import (
	"context"

	"github.com/rs/zerolog"
)

// Invocation carries what the gate needs to know about one invocation: where
// it came from and how to log. Adapters set Data to their own context (e.g.
// session + event) for handlers and custom inhibitors to unwrap.
type Invocation struct {
	// DM reports whether the invocation originated in a direct-message channel.
	DM bool
	// GuildID is the originating guild, or empty when there is none.
	GuildID string
	// Args are the invocation arguments, already split by the adapter.
	Args []string
	// Log receives gate diagnostics. Adapters must set it; use zerolog.Nop()
	// to silence.
	Log zerolog.Logger
	// Data is the transport payload.
	Data any
}

// Handler is the function a command runs once the inhibitor chain allows the
// invocation.
type Handler func(ctx context.Context, inv *Invocation) error

// Inhibitor is a predicate gating command execution. Check returns true to
// allow and false to block. A returned error is logged as a warning and
// counts as a pass; see (*Command).Execute.
type Inhibitor struct {
	Name  string
	Check func(ctx context.Context, inv *Invocation) (bool, error)
}

// Module is the optional owner of a command. The gate only keeps the
// back-reference; ownership and lifecycle stay with the caller.
type Module interface {
	Name() string
}
