package interfaces

import "context"

// -----------------------------------------------------------------------------
// INetworkManager fetches raw upstream payloads.
// -----------------------------------------------------------------------------

type INetworkManager interface {
	// Get issues exactly one GET with params added to the query string and
	// returns the body of a 2xx response. Anything else is a TransportError.
	Get(ctx context.Context, url string, params map[string]string) ([]byte, error)
}
