package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/config"
	"stock-dashboard/src/data_source/pasardana"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/network"
	"stock-dashboard/src/ratelimit"
	"stock-dashboard/src/snapshot"
	"stock-dashboard/src/utils"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

const fetchTimeout = 45 * time.Second

// cli bundles what every subcommand needs. As a short lived process it
// builds the pipeline once per invocation.
type cli struct {
	config   *config.Config
	cache    *snapshot.Cache
	analysis *analysis.AnalysisFacade
	market   *utils.MarketScheduler
}

func newCLI() (*cli, error) {
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.NewConfig(*configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	log := logger.NewStderrLogger("ERROR", "stocks")
	clock := utils.NewSystemClock()

	nm := network.NewNetworkManager(&cfg.Upstream, log)
	source := pasardana.NewPasardanaSource(&cfg.Upstream, nm, log)
	gate := ratelimit.NewGate(cfg.Cache.MinInterval, clock)

	return &cli{
		config:   cfg,
		cache:    snapshot.NewCache(source, gate, clock, cfg.Cache.TTL, log),
		analysis: analysis.NewAnalysisFacade(&cfg.Analysis, clock, log),
		market:   utils.NewMarketScheduler(&cfg.Market, clock, log),
	}, nil
}

// instruments loads the list, printing a warning when it is not fresh
func (c *cli) instruments(ctx context.Context, force bool) models.MInstrumentsResult {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	result := c.cache.GetInstruments(ctx, force)
	switch result.Status {
	case models.StatusEmpty:
		fmt.Fprintln(os.Stderr, "warning: upstream unavailable, no instruments to show")
	case models.StatusStale:
		fmt.Fprintf(os.Stderr, "warning: upstream unavailable, showing data from %s\n", result.FetchedAt.Format(time.RFC3339))
	}
	return result
}

// -----------------------------------------------------------------------------

// printMarkdown renders md for the terminal unless -plain is set
func printMarkdown(md string) subcommands.ExitStatus {
	if *plain {
		fmt.Print(md)
		return subcommands.ExitSuccess
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(120),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating renderer: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := r.Render(md)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering output: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(out)
	return subcommands.ExitSuccess
}
