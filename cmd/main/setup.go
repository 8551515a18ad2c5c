package main

import (
	"time"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/config"
	"stock-dashboard/src/data_source/pasardana"
	"stock-dashboard/src/grpc_control"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/network"
	"stock-dashboard/src/ratelimit"
	"stock-dashboard/src/server"
	"stock-dashboard/src/snapshot"
	"stock-dashboard/src/utils"
)

const healthSyncInterval = 15 * time.Second

// application is the composition root: every long-lived component, built once
type application struct {
	config *config.Config
	cache  *snapshot.Cache
	api    *server.APIServer
	health *grpc_control.HealthService
}

// -----------------------------------------------------------------------------

func setup(cfg *config.Config, log *logger.Logger) *application {
	clock := utils.NewSystemClock()

	var networkManager interfaces.INetworkManager = network.NewNetworkManager(&cfg.Upstream, log.Named("network"))
	var source interfaces.IInstrumentSource = pasardana.NewPasardanaSource(&cfg.Upstream, networkManager, log.Named("pasardana"))

	gate := ratelimit.NewGate(cfg.Cache.MinInterval, clock)
	cache := snapshot.NewCache(source, gate, clock, cfg.Cache.TTL, log.Named("cache"))

	analyzer := analysis.NewAnalysisFacade(&cfg.Analysis, clock, log.Named("analysis"))
	market := utils.NewMarketScheduler(&cfg.Market, clock, log.Named("market"))

	app := &application{
		config: cfg,
		cache:  cache,
		api:    server.NewAPIServer(cfg.MConfig, cache, analyzer, market, log.Named("http")),
	}

	if cfg.GrpcPort != 0 {
		app.health = grpc_control.NewHealthService(cache, healthSyncInterval, log.Named("grpc"))
	}
	return app
}
