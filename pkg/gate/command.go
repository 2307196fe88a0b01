package gate

import "context"

// Options are the construction-time settings of a command. The zero value is
// the documented default: enabled, no aliases, no inhibitors, no module.
type Options struct {
	Disabled   bool
	Aliases    []string
	Inhibitors []Inhibitor
	Module     Module
}

// Command is a runnable action gated by an ordered list of inhibitors.
// Construction-time inhibitors and ones appended later via Use form a single
// chain, walked in append order.
type Command struct {
	name       string
	handler    Handler
	disabled   bool
	aliases    []string
	module     Module
	inhibitors []Inhibitor
}

// New creates a command. A missing name or handler is a programming error and
// panics at registration time. opts may be nil.
func New(name string, handler Handler, opts *Options) *Command {
	if name == "" {
		panic("gate: command name must not be empty")
	}
	if handler == nil {
		panic("gate: command " + name + " has no handler")
	}
	c := &Command{name: name, handler: handler}
	if opts != nil {
		c.disabled = opts.Disabled
		c.aliases = append([]string(nil), opts.Aliases...)
		c.module = opts.Module
		c.inhibitors = append([]Inhibitor(nil), opts.Inhibitors...)
	}
	return c
}

// Name returns the command's unique name within its owning scope.
func (c *Command) Name() string { return c.name }

// Aliases returns alternative names a registry may map to this command.
func (c *Command) Aliases() []string { return c.aliases }

// Module returns the owning module, or nil.
func (c *Command) Module() Module { return c.module }

// Inhibitors returns the chain in execution order.
func (c *Command) Inhibitors() []Inhibitor { return c.inhibitors }

// Disabled reports whether the command is administratively disabled. Execute
// does not consult this; dispatchers filter on it before calling Execute.
func (c *Command) Disabled() bool { return c.disabled }

// Enable clears the disabled flag and returns the resulting value (false).
func (c *Command) Enable() bool {
	c.disabled = false
	return c.disabled
}

// Disable sets the disabled flag and returns the resulting value (true).
func (c *Command) Disable() bool {
	c.disabled = true
	return c.disabled
}

// Use appends inhibitors to the chain in the order given and returns the
// command for chaining. Appending the same inhibitor twice means it runs
// twice.
func (c *Command) Use(ins ...Inhibitor) *Command {
	c.inhibitors = append(c.inhibitors, ins...)
	return c
}

// Execute walks the inhibitor chain, then runs the handler.
//
// Each inhibitor is fully evaluated before the next starts. The first one to
// block stops the chain: Execute returns nil without running the handler and
// without any side effect beyond chain logging. An inhibitor that returns an
// error is logged at warn level, naming the inhibitor, and is treated as if
// it allowed the invocation. That fail-open policy is long-standing behavior
// and callers depend on it. Handler errors are not caught here; they
// propagate to the dispatcher.
func (c *Command) Execute(ctx context.Context, inv *Invocation) error {
	for _, in := range c.inhibitors {
		ok, err := in.Check(ctx, inv)
		if err != nil {
			inv.Log.Warn().
				Err(err).
				Str("command", c.name).
				Str("inhibitor", in.Name).
				Msg("inhibitor failed, treating as pass")
			continue
		}
		if !ok {
			return nil
		}
	}
	return c.handler(ctx, inv)
}
