// Package registry maps invocation names to commands. It performs no
// dispatch; adapters look commands up and decide how to invoke them.
package registry

import (
	"sort"

	"github.com/keshon/server-warden/pkg/gate"
)

type Registry struct {
	commands map[string]*gate.Command
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{commands: make(map[string]*gate.Command)}
}

// Register adds commands under their name and every alias. Later
// registrations win on collision.
func (r *Registry) Register(cs ...*gate.Command) {
	for _, c := range cs {
		r.commands[c.Name()] = c
		for _, a := range c.Aliases() {
			r.commands[a] = c
		}
	}
}

// Get returns the command registered under name or one of its aliases.
func (r *Registry) Get(name string) (*gate.Command, bool) {
	c, ok := r.commands[name]
	return c, ok
}

// All returns every registered command once, sorted by name.
func (r *Registry) All() []*gate.Command {
	seen := make(map[string]bool, len(r.commands))
	list := make([]*gate.Command, 0, len(r.commands))
	for _, c := range r.commands {
		if seen[c.Name()] {
			continue
		}
		seen[c.Name()] = true
		list = append(list, c)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}
