package gate

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDMOnly(t *testing.T) {
	in := DMOnly()

	ok, err := in.Check(context.Background(), &Invocation{DM: true})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = in.Check(context.Background(), &Invocation{DM: false, GuildID: "123"})
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGuildOnly(t *testing.T) {
	in := GuildOnly()

	ok, err := in.Check(context.Background(), &Invocation{GuildID: "123"})
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = in.Check(context.Background(), &Invocation{GuildID: ""})
	require.NoError(t, err)
	assert.False(t, ok)
}
