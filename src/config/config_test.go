package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"stock-dashboard/src/helpers"
)

func TestNewConfig(t *testing.T) {
	yaml := `
name: idx-dashboard
host: 127.0.0.1
port: 8081
log_level: DEBUG
grpc_port: 50051
upstream:
  url: https://example.com/api/stocks
  result_path: $.Data
  timeout: 10
  proxies:
    - 10.0.0.1:3128
cache:
  ttl: 2m
  min_interval: 500ms
market:
  mic: xidx
analysis:
  history_days: 60
`
	path := writeTempFile(t, yaml)

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if cfg.Name != "idx-dashboard" {
		t.Errorf("Name = %q, want %q", cfg.Name, "idx-dashboard")
	}
	if cfg.Port != 8081 {
		t.Errorf("Port = %d, want %d", cfg.Port, 8081)
	}
	if cfg.Upstream.URL != "https://example.com/api/stocks" {
		t.Errorf("Upstream.URL = %q", cfg.Upstream.URL)
	}
	if cfg.Upstream.ResultPath != "$.Data" {
		t.Errorf("Upstream.ResultPath = %q, want %q", cfg.Upstream.ResultPath, "$.Data")
	}
	if cfg.Cache.TTL != 2*time.Minute {
		t.Errorf("Cache.TTL = %v, want %v", cfg.Cache.TTL, 2*time.Minute)
	}
	if cfg.Cache.MinInterval != 500*time.Millisecond {
		t.Errorf("Cache.MinInterval = %v, want %v", cfg.Cache.MinInterval, 500*time.Millisecond)
	}
	if len(cfg.Upstream.Proxies) != 1 {
		t.Errorf("Upstream.Proxies = %v, want 1 entry", cfg.Upstream.Proxies)
	}
	if cfg.Analysis.HistoryDays != 60 {
		t.Errorf("Analysis.HistoryDays = %d, want 60", cfg.Analysis.HistoryDays)
	}
}

func TestNewConfigAppliesDefaults(t *testing.T) {
	path := writeTempFile(t, "name: minimal\n")

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}

	if cfg.Cache.TTL != DefaultTTL {
		t.Errorf("Cache.TTL = %v, want default %v", cfg.Cache.TTL, DefaultTTL)
	}
	if cfg.Cache.MinInterval != DefaultMinInterval {
		t.Errorf("Cache.MinInterval = %v, want default %v", cfg.Cache.MinInterval, DefaultMinInterval)
	}
	if cfg.Upstream.URL != DefaultUpstreamURL {
		t.Errorf("Upstream.URL = %q, want default", cfg.Upstream.URL)
	}
	if cfg.Upstream.ResultPath != DefaultResultPath {
		t.Errorf("Upstream.ResultPath = %q, want %q", cfg.Upstream.ResultPath, DefaultResultPath)
	}
	if cfg.Port != DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, DefaultPort)
	}
	if cfg.Market.MIC != DefaultMIC {
		t.Errorf("Market.MIC = %q, want %q", cfg.Market.MIC, DefaultMIC)
	}
}

func TestNewConfigExpandsEnv(t *testing.T) {
	t.Setenv("DASHBOARD_UPSTREAM_URL", "https://mirror.example.com/stocks")

	path := writeTempFile(t, "name: env\nupstream:\n  url: ${DASHBOARD_UPSTREAM_URL}\n")

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if cfg.Upstream.URL != "https://mirror.example.com/stocks" {
		t.Errorf("Upstream.URL = %q, want expanded value", cfg.Upstream.URL)
	}
}

func TestNewConfigLoadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("DOTENV_DASHBOARD_NAME=from-dotenv\n"), 0644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("name: ${DOTENV_DASHBOARD_NAME}\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("DOTENV_DASHBOARD_NAME") })

	cfg, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if cfg.Name != "from-dotenv" {
		t.Errorf("Name = %q, want %q", cfg.Name, "from-dotenv")
	}
}

func TestNewConfigMissingFile(t *testing.T) {
	_, err := NewConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("error = %q, want read failure", err.Error())
	}
}

func TestNewConfigInvalidIsConfigurationError(t *testing.T) {
	path := writeTempFile(t, "name: bad\nport: 80\n")

	_, err := NewConfig(path)
	var cfgErr *helpers.ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("error = %v, want ConfigurationError", err)
	}
	if !strings.Contains(err.Error(), "invalid server port number: 80") {
		t.Errorf("error = %q, want the validation cause", err.Error())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:    "defaults are valid",
			mutate:  func(c *Config) {},
			wantErr: "",
		},
		{
			name:    "privileged port",
			mutate:  func(c *Config) { c.Port = 80 },
			wantErr: "invalid server port number: 80 (must be between 1025 and 65535)",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "TRACE" },
			wantErr: `invalid log level: "TRACE"`,
		},
		{
			name:    "grpc collides with http",
			mutate:  func(c *Config) { c.GrpcPort = c.Port },
			wantErr: "grpc port 8000 collides with server port",
		},
		{
			name:    "negative min interval",
			mutate:  func(c *Config) { c.Cache.MinInterval = -time.Second },
			wantErr: "cache min interval cannot be negative",
		},
		{
			name:    "zero ttl",
			mutate:  func(c *Config) { c.Cache.TTL = 0 },
			wantErr: "cache ttl must be greater than 0",
		},
		{
			name:    "history too long",
			mutate:  func(c *Config) { c.Analysis.HistoryDays = 1000 },
			wantErr: "analysis history days must be between 1 and 365",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Errorf("Validate() expected error %q, got nil", tt.wantErr)
			} else if err.Error() != tt.wantErr {
				t.Errorf("Validate() error = %q, want %q", err.Error(), tt.wantErr)
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Name = "saved"
	path := filepath.Join(t.TempDir(), "out.yaml")

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := NewConfig(path)
	if err != nil {
		t.Fatalf("NewConfig failed: %v", err)
	}
	if loaded.Name != "saved" {
		t.Errorf("Name = %q, want %q", loaded.Name, "saved")
	}
	if loaded.Cache.TTL != cfg.Cache.TTL {
		t.Errorf("Cache.TTL = %v, want %v", loaded.Cache.TTL, cfg.Cache.TTL)
	}
}

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}
