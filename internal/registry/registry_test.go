package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keshon/server-warden/pkg/gate"
)

func noop(context.Context, *gate.Invocation) error { return nil }

func TestRegisterAndGet(t *testing.T) {
	r := New()
	c := gate.New("ping", noop, &gate.Options{Aliases: []string{"p", "pong"}})
	r.Register(c)

	for _, name := range []string{"ping", "p", "pong"} {
		got, ok := r.Get(name)
		require.True(t, ok, name)
		assert.Same(t, c, got)
	}

	_, ok := r.Get("missing")
	assert.False(t, ok)
}

func TestAllDeduplicatesAliases(t *testing.T) {
	r := New()
	r.Register(
		gate.New("roll", noop, &gate.Options{Aliases: []string{"dice"}}),
		gate.New("ping", noop, nil),
	)

	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "ping", all[0].Name())
	assert.Equal(t, "roll", all[1].Name())
}
