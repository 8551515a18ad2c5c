package interfaces

// -----------------------------------------------------------------------------
// IProxyManager chooses how the next upstream request leaves the process.
// -----------------------------------------------------------------------------

type IProxyManager interface {
	// GetCurrentProxy returns the proxy URL for the next request, "" for a
	// direct connection.
	GetCurrentProxy() string

	// RotateProxy moves to the next configured proxy after a failed refresh.
	RotateProxy()

	HasProxies() bool

	// GetUserAgent returns the User-Agent header for the next request.
	GetUserAgent() string
}
