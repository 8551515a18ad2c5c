package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"stock-dashboard/src/helpers"
	"stock-dashboard/src/models"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// -----------------------------------------------------------------------------

// Config wraps models.MConfig and provides business logic methods
type Config struct {
	*models.MConfig
}

// -----------------------------------------------------------------------------

// NewConfig creates a new MConfig instance from YAML file.
// A .env file next to the config (or in the working directory) is loaded first
// so that ${VAR} references in the YAML can be resolved from it.
func NewConfig(configPath string) (*Config, error) {
	// 1. Load .env files; existing environment variables win
	if err := loadDotEnv(configPath); err != nil {
		return nil, err
	}

	// 2. Read the YAML file content
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", configPath, err)
	}

	// 3. Expand ${VAR} and unmarshal into the models struct
	expanded := os.ExpandEnv(string(data))

	var modelConfig models.MConfig
	if err := yaml.Unmarshal([]byte(expanded), &modelConfig); err != nil {
		return nil, fmt.Errorf("failed to parse config from YAML: %w", err)
	}

	config := &Config{MConfig: &modelConfig}
	config.applyDefaults()

	// 4. Validate the loaded configuration
	if err := config.Validate(); err != nil {
		return nil, helpers.NewConfigurationError("config validation failed", err)
	}

	return config, nil
}

// -----------------------------------------------------------------------------

// Default returns a validated configuration made only of default values.
// Used by the CLI when no config file is given.
func Default() *Config {
	config := &Config{MConfig: &models.MConfig{}}
	config.applyDefaults()
	return config
}

// -----------------------------------------------------------------------------

func loadDotEnv(configPath string) error {
	candidates := []string{filepath.Join(filepath.Dir(configPath), ".env"), ".env"}
	seen := make(map[string]bool)

	for _, path := range candidates {
		abs, err := filepath.Abs(path)
		if err != nil || seen[abs] {
			continue
		}
		seen[abs] = true

		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load env file '%s': %w", path, err)
		}
	}
	return nil
}

// -----------------------------------------------------------------------------

// Validate performs basic configuration validation
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("application name cannot be empty")
	}

	switch c.LogLevel {
	case "DEBUG", "INFO", "WARNING", "ERROR":
	default:
		return fmt.Errorf("invalid log level: %q", c.LogLevel)
	}

	// Server
	if c.Host == "" {
		return fmt.Errorf("server host cannot be empty")
	}
	if c.Port <= 1024 || c.Port > 65535 {
		return fmt.Errorf("invalid server port number: %d (must be between 1025 and 65535)", c.Port)
	}
	if c.GrpcPort < 0 || c.GrpcPort > 65535 {
		return fmt.Errorf("invalid grpc port number: %d", c.GrpcPort)
	}
	if c.GrpcPort != 0 && c.GrpcPort == c.Port {
		return fmt.Errorf("grpc port %d collides with server port", c.GrpcPort)
	}

	// Upstream
	if c.Upstream.URL == "" {
		return fmt.Errorf("upstream url cannot be empty")
	}
	if c.Upstream.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be greater than 0")
	}
	if c.Upstream.ResultPath == "" {
		return fmt.Errorf("upstream result path cannot be empty")
	}

	// Cache
	if c.Cache.TTL <= 0 {
		return fmt.Errorf("cache ttl must be greater than 0")
	}
	if c.Cache.MinInterval < 0 {
		return fmt.Errorf("cache min interval cannot be negative")
	}

	// Market
	if c.Market.MIC == "" {
		return fmt.Errorf("market mic cannot be empty")
	}

	if c.Analysis.HistoryDays <= 0 || c.Analysis.HistoryDays > MaxHistoryDays {
		return fmt.Errorf("analysis history days must be between 1 and %d", MaxHistoryDays)
	}

	return nil
}

// -----------------------------------------------------------------------------

// Save persists the current configuration to the specified YAML file path
func (c *Config) Save(configPath string) error {
	// 1. Marshal the struct to YAML
	data, err := yaml.Marshal(c.MConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// 2. Write to file (0644 permissions)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config to file '%s': %w", configPath, err)
	}

	return nil
}
