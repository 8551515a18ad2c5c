package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultName           = "stock-dashboard"
	DefaultHost           = "0.0.0.0"
	DefaultPort           = 8000
	DefaultLogLevel       = "INFO"
	DefaultGrpcHost       = "0.0.0.0"
	DefaultUpstreamURL    = "https://pasardana.id/api/StockSearchResult/GetAll?pageBegin=0&pageLength=1000&sortField=Code&sortOrder=ASC"
	DefaultResultPath     = "$.Result"
	DefaultRequestTimeout = 30 // seconds
	DefaultTTL            = 5 * time.Minute
	DefaultMinInterval    = 1 * time.Second
	DefaultMIC            = "xidx"
	DefaultTimezone       = "Asia/Jakarta"
	DefaultHistoryDays    = 30
	MaxHistoryDays        = 365
)

func (c *Config) applyDefaults() {
	if c.Name == "" {
		c.Name = DefaultName
	}
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.GrpcHost == "" {
		c.GrpcHost = DefaultGrpcHost
	}

	// Upstream defaults
	if c.Upstream.URL == "" {
		c.Upstream.URL = DefaultUpstreamURL
	}
	if c.Upstream.ResultPath == "" {
		c.Upstream.ResultPath = DefaultResultPath
	}
	if c.Upstream.RequestTimeout == 0 {
		c.Upstream.RequestTimeout = DefaultRequestTimeout
	}

	// Cache defaults
	if c.Cache.TTL == 0 {
		c.Cache.TTL = DefaultTTL
	}
	if c.Cache.MinInterval == 0 {
		c.Cache.MinInterval = DefaultMinInterval
	}

	// Market defaults
	if c.Market.MIC == "" {
		c.Market.MIC = DefaultMIC
	}
	if c.Market.Timezone == "" {
		c.Market.Timezone = DefaultTimezone
	}

	if c.Analysis.HistoryDays == 0 {
		c.Analysis.HistoryDays = DefaultHistoryDays
	}
}
