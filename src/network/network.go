package network

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

// maxBodyBytes caps how much of an upstream response is read
const maxBodyBytes = 32 << 20

type NetworkManager struct {
	Config       *models.MUpstreamConfig
	ProxyManager interfaces.IProxyManager
	Logger       *logger.Logger

	mu     sync.Mutex
	client *http.Client
}

// -----------------------------------------------------------------------------

func NewNetworkManager(cfg *models.MUpstreamConfig, log *logger.Logger) *NetworkManager {
	if log == nil {
		log = logger.NewNopLogger()
	}

	nm := &NetworkManager{
		Config:       cfg,
		ProxyManager: helpers.NewProxyManager(cfg.Proxies, cfg.UserAgent, log.Named("proxy")),
		Logger:       log,
	}
	nm.client = nm.createClient()
	return nm
}

// -----------------------------------------------------------------------------

func (nm *NetworkManager) createClient() *http.Client {
	transport := http.DefaultTransport.(*http.Transport).Clone()

	if proxyStr := nm.ProxyManager.GetCurrentProxy(); proxyStr != "" {
		if proxyURL, err := url.Parse(proxyStr); err == nil {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   time.Duration(nm.Config.RequestTimeout) * time.Second,
	}
}

// -----------------------------------------------------------------------------

// rotateProxy moves to the next proxy so the following request goes out
// through a different exit. No-op without proxies.
func (nm *NetworkManager) rotateProxy() {
	if !nm.ProxyManager.HasProxies() {
		return
	}

	nm.ProxyManager.RotateProxy()
	client := nm.createClient()

	nm.mu.Lock()
	nm.client = client
	nm.mu.Unlock()
}

// -----------------------------------------------------------------------------

// Get performs one GET request. Any failure, including a non-2xx status, is
// returned as a helpers.TransportError. There is no retry here: the caller
// decides what a failure means.
func (nm *NetworkManager) Get(ctx context.Context, urlStr string, params map[string]string) ([]byte, error) {
	reqURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, helpers.NewTransportError("invalid upstream url", 0, err)
	}

	if len(params) > 0 {
		q := reqURL.Query()
		for k, v := range params {
			q.Set(k, v)
		}
		reqURL.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return nil, helpers.NewTransportError("failed to build request", 0, err)
	}
	req.Header.Set("User-Agent", nm.ProxyManager.GetUserAgent())
	req.Header.Set("Accept", "application/json")

	nm.mu.Lock()
	client := nm.client
	nm.mu.Unlock()

	resp, err := client.Do(req)
	if err != nil {
		nm.Logger.Warning("Request to %s failed: %v", reqURL.Host, err)
		nm.rotateProxy()
		return nil, helpers.NewTransportError("upstream request failed", 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode == http.StatusForbidden {
			nm.Logger.Warning("Request blocked (%d). Rotating proxy.", resp.StatusCode)
			nm.rotateProxy()
		}
		return nil, helpers.NewTransportError(fmt.Sprintf("upstream returned status %d", resp.StatusCode), resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, helpers.NewTransportError("failed to read upstream body", resp.StatusCode, err)
	}

	return body, nil
}
