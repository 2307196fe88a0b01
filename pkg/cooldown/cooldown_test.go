package cooldown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllowPerKey(t *testing.T) {
	k := New(time.Hour, 1)

	assert.True(t, k.Allow("alice"))
	assert.False(t, k.Allow("alice"), "second call within the window is denied")
	assert.True(t, k.Allow("bob"), "keys are independent")
}

func TestAllowBurst(t *testing.T) {
	k := New(time.Hour, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, k.Allow("alice"), "burst call %d", i)
	}
	assert.False(t, k.Allow("alice"))
}

func TestSweepDropsIdleEntries(t *testing.T) {
	k := New(time.Hour, 1)
	k.Allow("alice")
	k.Allow("bob")

	k.mu.Lock()
	k.entries["alice"].seen = time.Now().Add(-2 * time.Hour)
	k.mu.Unlock()

	assert.Equal(t, 1, k.Sweep(time.Hour))

	k.mu.Lock()
	defer k.mu.Unlock()
	require.Len(t, k.entries, 1)
	assert.Contains(t, k.entries, "bob")
}
