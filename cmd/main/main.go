package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-dashboard/src/config"
	"stock-dashboard/src/logger"
)

const (
	bootFetchTimeout = 45 * time.Second
	shutdownTimeout  = 10 * time.Second
)

// -----------------------------------------------------------------------------

func main() {

	// Parse command line flags
	configPath := flag.String("config", "config/default.yaml", "path to config file")
	flag.Parse()

	// Load config from YAML file
	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Setup logger
	appLogger := logger.NewLogger(cfg.LogLevel, cfg.Name)
	defer appLogger.Sync()

	// 1. Wire components
	app := setup(cfg, appLogger)

	// 2. Warm the cache; a failure here only means the first requests get an empty list
	appLogger.Info("Fetching initial instrument list...")
	bootCtx, bootCancel := context.WithTimeout(context.Background(), bootFetchTimeout)
	result := app.cache.GetInstruments(bootCtx, false)
	bootCancel()
	appLogger.Info("Initial load: %s, %d instruments", result.Status, len(result.Instruments))

	// 3. Start servers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errs := startServers(ctx, app, appLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-quit:
		appLogger.Info("Received %s, shutting down...", sig)
	case err := <-errs:
		appLogger.Error("Server failed: %v", err)
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	stopServers(shutdownCtx, app, appLogger)

	appLogger.Info("Bye.")
}
