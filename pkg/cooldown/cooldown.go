// Package cooldown provides a per-key rate limiter for command cooldowns.
// Limiters are created on first use; sweep idle entries periodically so the
// map does not grow with every key ever seen.
package cooldown

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	lim  *rate.Limiter
	seen time.Time
}

// Keeper hands out one rate.Limiter per key (typically a user or guild ID).
// Safe for concurrent use.
type Keeper struct {
	mu      sync.Mutex
	every   time.Duration
	burst   int
	entries map[string]*entry
}

// New creates a Keeper allowing burst events immediately and then one event
// per every for each key.
func New(every time.Duration, burst int) *Keeper {
	if burst < 1 {
		burst = 1
	}
	return &Keeper{
		every:   every,
		burst:   burst,
		entries: make(map[string]*entry),
	}
}

// Allow reports whether the event for key may proceed now.
func (k *Keeper) Allow(key string) bool {
	k.mu.Lock()
	defer k.mu.Unlock()

	e, ok := k.entries[key]
	if !ok {
		e = &entry{lim: rate.NewLimiter(rate.Every(k.every), k.burst)}
		k.entries[key] = e
	}
	e.seen = time.Now()
	return e.lim.Allow()
}

// Sweep drops entries not seen for longer than maxIdle and returns how many
// were removed.
func (k *Keeper) Sweep(maxIdle time.Duration) int {
	k.mu.Lock()
	defer k.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-maxIdle)
	for key, e := range k.entries {
		if e.seen.Before(cutoff) {
			delete(k.entries, key)
			removed++
		}
	}
	return removed
}

// RunSweeper sweeps the keeper every interval until ctx is done. Call from
// main or app lifecycle.
func RunSweeper(ctx context.Context, k *Keeper, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			k.Sweep(maxIdle)
		}
	}
}
