package interfaces

import (
	"context"
	"time"
)

// IClock is the time source used by the rate limiter and the cache
type IClock interface {
	Now() time.Time

	// Sleep blocks for d or until ctx is done, whichever comes first.
	// A non-positive d returns immediately.
	Sleep(ctx context.Context, d time.Duration) error
}
