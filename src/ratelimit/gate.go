package ratelimit

import (
	"context"
	"sync"
	"time"

	"stock-dashboard/src/interfaces"
)

// Gate spaces out upstream calls so that no two start closer together than
// minInterval. It has no retry or backoff of its own.
type Gate struct {
	minInterval time.Duration
	clock       interfaces.IClock

	mu            sync.Mutex
	lastRequestAt time.Time
}

// -----------------------------------------------------------------------------

func NewGate(minInterval time.Duration, clock interfaces.IClock) *Gate {
	return &Gate{minInterval: minInterval, clock: clock}
}

// -----------------------------------------------------------------------------

// Acquire blocks until the caller may start its upstream call.
//
// The slot is reserved under the lock before sleeping: lastRequestAt is set
// to the instant the caller will proceed, so a concurrent caller computes its
// own wait from that reservation rather than from a stale value.
// If ctx ends while waiting the reservation is kept and ctx.Err() returned.
func (g *Gate) Acquire(ctx context.Context) error {
	g.mu.Lock()
	now := g.clock.Now()
	var wait time.Duration
	if !g.lastRequestAt.IsZero() {
		if elapsed := now.Sub(g.lastRequestAt); elapsed < g.minInterval {
			wait = g.minInterval - elapsed
		}
	}
	g.lastRequestAt = now.Add(wait)
	g.mu.Unlock()

	if wait <= 0 {
		return nil
	}
	return g.clock.Sleep(ctx, wait)
}

// -----------------------------------------------------------------------------

// LastRequestAt returns the start time of the most recently admitted call
func (g *Gate) LastRequestAt() time.Time {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.lastRequestAt
}

func (g *Gate) MinInterval() time.Duration {
	return g.minInterval
}
