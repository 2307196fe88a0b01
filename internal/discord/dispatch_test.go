package discord

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/server-warden/internal/registry"
	"github.com/keshon/server-warden/pkg/gate"
)

func TestParseInvocation(t *testing.T) {
	tests := []struct {
		content string
		name    string
		args    []string
		ok      bool
	}{
		{"!ping", "ping", []string{}, true},
		{"!PING", "ping", []string{}, true},
		{"!purge 25", "purge", []string{"25"}, true},
		{"!roll 2d6 again", "roll", []string{"2d6", "again"}, true},
		{"!   ", "", nil, false},
		{"ping", "", nil, false},
		{"", "", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			name, args, ok := parseInvocation("!", tt.content)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.name, name)
				assert.Equal(t, tt.args, args)
			}
		})
	}
}

func TestFindRunnableFiltersDisabled(t *testing.T) {
	runs := 0
	c := gate.New("ping", func(context.Context, *gate.Invocation) error {
		runs++
		return nil
	}, nil)

	reg := registry.New()
	reg.Register(c)
	b := &Bot{reg: reg, log: zerolog.Nop()}

	got, ok := b.findRunnable("ping")
	require.True(t, ok)
	assert.Same(t, c, got)

	c.Disable()
	_, ok = b.findRunnable("ping")
	assert.False(t, ok, "disabled commands never reach Execute")
	assert.Zero(t, runs)

	c.Enable()
	_, ok = b.findRunnable("ping")
	assert.True(t, ok)
}

func TestFindRunnableUnknownCommand(t *testing.T) {
	b := &Bot{reg: registry.New(), log: zerolog.Nop()}

	_, ok := b.findRunnable("missing")
	assert.False(t, ok)
}
