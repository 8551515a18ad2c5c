package models

import "time"

// MSnapshot is the cached copy of one complete upstream response.
type MSnapshot struct {
	Instruments []MInstrument `json:"instruments"`
	FetchedAt   time.Time     `json:"fetched_at"`
}

// -----------------------------------------------------------------------------
// Result of a cache read
// -----------------------------------------------------------------------------

// MResultStatus tells callers how an instrument list was obtained.
type MResultStatus string

const (
	// StatusFresh: data is within TTL, either held or just fetched.
	StatusFresh MResultStatus = "fresh"
	// StatusStale: the refresh failed and the previous snapshot was served.
	StatusStale MResultStatus = "stale"
	// StatusEmpty: the refresh failed and nothing was cached yet.
	StatusEmpty MResultStatus = "empty"
)

// MInstrumentsResult is what the cache hands out for every list request.
type MInstrumentsResult struct {
	Status      MResultStatus `json:"status"`
	Instruments []MInstrument `json:"instruments"`
	FetchedAt   time.Time     `json:"fetched_at"`
	Cached      bool          `json:"cached"` // true when no upstream call was made
}

// -----------------------------------------------------------------------------

// MCacheStatus is a point-in-time view of the cache used by health reporting.
type MCacheStatus struct {
	HasSnapshot         bool      `json:"has_snapshot"`
	Count               int       `json:"count"`
	FetchedAt           time.Time `json:"fetched_at"`
	AgeSeconds          float64   `json:"age_seconds"`
	Fresh               bool      `json:"fresh"`
	LastRequestAt       time.Time `json:"last_request_at"`
	ConsecutiveFailures int       `json:"consecutive_failures"`
	LastError           string    `json:"last_error,omitempty"`
}
