package interfaces

import (
	"context"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// IInstrumentSource fetches the full instrument list from an upstream.
// -----------------------------------------------------------------------------

type IInstrumentSource interface {

	// Name returns the unique identifier of the source
	Name() string

	// -----------------------------------------------------------------------------

	// FetchInstruments performs exactly one upstream request and returns the
	// normalized list. An empty, non-nil slice is a valid result.
	FetchInstruments(ctx context.Context) ([]models.MInstrument, error)
}

// -----------------------------------------------------------------------------
// IInstrumentProvider is what the presentation layer reads from.
// -----------------------------------------------------------------------------

type IInstrumentProvider interface {

	// GetInstruments never fails: on upstream trouble it serves the last
	// snapshot (Stale) or nothing (Empty). force bypasses the TTL.
	GetInstruments(ctx context.Context, force bool) models.MInstrumentsResult

	// -----------------------------------------------------------------------------

	// Status reports cache bookkeeping for the health endpoints
	Status() models.MCacheStatus
}
