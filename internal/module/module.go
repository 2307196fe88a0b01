// Package module groups commands under a named owner. A module constructs
// its commands with the back-reference set and registers them in bulk.
package module

import (
	"github.com/keshon/server-warden/internal/registry"
	"github.com/keshon/server-warden/pkg/gate"
)

type Module struct {
	name     string
	commands []*gate.Command
}

func New(name string) *Module {
	return &Module{name: name}
}

// Name makes Module satisfy gate.Module.
func (m *Module) Name() string { return m.name }

// Command constructs a command owned by this module. opts may be nil; the
// module back-reference is set either way.
func (m *Module) Command(name string, h gate.Handler, opts *gate.Options) *gate.Command {
	if opts == nil {
		opts = &gate.Options{}
	}
	opts.Module = m
	c := gate.New(name, h, opts)
	m.commands = append(m.commands, c)
	return c
}

// Commands returns the module's commands in definition order.
func (m *Module) Commands() []*gate.Command { return m.commands }

// Register adds all of the module's commands to r.
func (m *Module) Register(r *registry.Registry) {
	r.Register(m.commands...)
}
