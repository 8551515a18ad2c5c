package snapshot

import (
	"context"
	"sync"
	"time"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/ratelimit"

	"golang.org/x/sync/singleflight"
)

const flightKey = "instruments"

// Cache holds the single instrument snapshot and decides when to refresh it.
//
// Reads of a fresh snapshot never touch the upstream. A refresh goes through
// the rate gate and makes exactly one upstream attempt; concurrent refreshes
// share that attempt. A failed refresh leaves the snapshot untouched.
type Cache struct {
	source interfaces.IInstrumentSource
	gate   *ratelimit.Gate
	clock  interfaces.IClock
	ttl    time.Duration
	logger *logger.Logger
	errors *helpers.ErrorHandler

	group singleflight.Group

	mu       sync.RWMutex
	snapshot *models.MSnapshot
}

// flightResult is what a refresh hands to every caller sharing it
type flightResult struct {
	snapshot *models.MSnapshot
	fetched  bool
}

// -----------------------------------------------------------------------------

func NewCache(source interfaces.IInstrumentSource, gate *ratelimit.Gate, clock interfaces.IClock, ttl time.Duration, log *logger.Logger) *Cache {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &Cache{
		source: source,
		gate:   gate,
		clock:  clock,
		ttl:    ttl,
		logger: log,
		errors: helpers.NewErrorHandler(log),
	}
}

// -----------------------------------------------------------------------------

// GetInstruments returns the instrument list and how it was obtained.
// It never returns an error: upstream failures degrade to Stale or Empty.
//
// If ctx ends while a refresh is outstanding the caller gets the current
// fallback immediately; the refresh itself runs to completion and updates
// the snapshot for later callers.
func (c *Cache) GetInstruments(ctx context.Context, force bool) models.MInstrumentsResult {
	if !force {
		if snap := c.current(); snap != nil && c.isFresh(snap) {
			return freshResult(snap, true)
		}
	}

	// The refresh must outlive the caller that started it
	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(flightKey, func() (interface{}, error) {
		return c.refresh(flightCtx, force)
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return c.fallback()
		}
		fr := res.Val.(flightResult)
		return freshResult(fr.snapshot, !fr.fetched)

	case <-ctx.Done():
		c.logger.Debug("Caller gave up waiting for refresh: %v", ctx.Err())
		return c.fallback()
	}
}

// Instruments is GetInstruments without the status: an empty list means
// there is no data to show.
func (c *Cache) Instruments(ctx context.Context, force bool) []models.MInstrument {
	return c.GetInstruments(ctx, force).Instruments
}

// -----------------------------------------------------------------------------

func (c *Cache) refresh(ctx context.Context, force bool) (flightResult, error) {
	// A flight started after another one finished may find fresh data
	if !force {
		if snap := c.current(); snap != nil && c.isFresh(snap) {
			return flightResult{snapshot: snap}, nil
		}
	}

	if err := c.gate.Acquire(ctx); err != nil {
		c.errors.Handle(err, "rate gate")
		return flightResult{}, err
	}

	started := c.clock.Now()
	instruments, err := c.source.FetchInstruments(ctx)
	if err != nil {
		c.errors.Handle(err, c.source.Name()+" refresh")
		return flightResult{}, err
	}

	snap := c.store(instruments)
	c.errors.Reset()
	c.logger.Info("Refreshed %d instruments from %s in %s", len(instruments), c.source.Name(), snap.FetchedAt.Sub(started))

	return flightResult{snapshot: snap, fetched: true}, nil
}

// store replaces the snapshot as a whole. fetchedAt never moves backwards.
func (c *Cache) store(instruments []models.MInstrument) *models.MSnapshot {
	now := c.clock.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.snapshot != nil && now.Before(c.snapshot.FetchedAt) {
		now = c.snapshot.FetchedAt
	}
	if instruments == nil {
		instruments = []models.MInstrument{}
	}
	c.snapshot = &models.MSnapshot{Instruments: instruments, FetchedAt: now}
	return c.snapshot
}

// -----------------------------------------------------------------------------

func (c *Cache) fallback() models.MInstrumentsResult {
	snap := c.current()
	if snap == nil {
		c.logger.Warning("No snapshot available, serving empty instrument list")
		return models.MInstrumentsResult{
			Status:      models.StatusEmpty,
			Instruments: []models.MInstrument{},
		}
	}

	c.logger.Warning("Serving stale snapshot: %d instruments, age %s", len(snap.Instruments), c.age(snap).Truncate(time.Second))
	return models.MInstrumentsResult{
		Status:      models.StatusStale,
		Instruments: cloneInstruments(snap.Instruments),
		FetchedAt:   snap.FetchedAt,
	}
}

func freshResult(snap *models.MSnapshot, cached bool) models.MInstrumentsResult {
	return models.MInstrumentsResult{
		Status:      models.StatusFresh,
		Instruments: cloneInstruments(snap.Instruments),
		FetchedAt:   snap.FetchedAt,
		Cached:      cached,
	}
}

// -----------------------------------------------------------------------------

func (c *Cache) current() *models.MSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.snapshot
}

func (c *Cache) age(snap *models.MSnapshot) time.Duration {
	return c.clock.Now().Sub(snap.FetchedAt)
}

func (c *Cache) isFresh(snap *models.MSnapshot) bool {
	return c.age(snap) < c.ttl
}

// -----------------------------------------------------------------------------

// Snapshot returns a copy of the held snapshot, if any
func (c *Cache) Snapshot() (models.MSnapshot, bool) {
	snap := c.current()
	if snap == nil {
		return models.MSnapshot{}, false
	}
	return models.MSnapshot{
		Instruments: cloneInstruments(snap.Instruments),
		FetchedAt:   snap.FetchedAt,
	}, true
}

// Status reports cache bookkeeping without triggering a refresh
func (c *Cache) Status() models.MCacheStatus {
	status := models.MCacheStatus{
		LastRequestAt:       c.gate.LastRequestAt(),
		ConsecutiveFailures: c.errors.Count(),
	}
	if err, _ := c.errors.LastError(); err != nil {
		status.LastError = err.Error()
	}

	if snap := c.current(); snap != nil {
		status.HasSnapshot = true
		status.Count = len(snap.Instruments)
		status.FetchedAt = snap.FetchedAt
		status.AgeSeconds = c.age(snap).Seconds()
		status.Fresh = c.isFresh(snap)
	}
	return status
}

func (c *Cache) TTL() time.Duration {
	return c.ttl
}

// -----------------------------------------------------------------------------

func cloneInstruments(in []models.MInstrument) []models.MInstrument {
	out := make([]models.MInstrument, len(in))
	copy(out, in)
	return out
}
