package main

import (
	"context"
	"fmt"

	"stock-dashboard/src/logger"
)

// startServers launches the HTTP API and, when configured, the gRPC health
// service. The returned channel receives the first fatal server error.
func startServers(ctx context.Context, app *application, log *logger.Logger) <-chan error {
	errs := make(chan error, 2)

	go func() {
		if err := app.api.Start(); err != nil {
			errs <- err
		}
	}()

	if app.health != nil {
		addr := fmt.Sprintf("%s:%d", app.config.GrpcHost, app.config.GrpcPort)
		go app.health.Run(ctx)
		go func() {
			if err := app.health.Serve(addr); err != nil {
				errs <- err
			}
		}()
	} else {
		log.Info("gRPC health service disabled")
	}

	return errs
}

// -----------------------------------------------------------------------------

func stopServers(ctx context.Context, app *application, log *logger.Logger) {
	if err := app.api.Stop(ctx); err != nil {
		log.Error("HTTP shutdown failed: %v", err)
	}
	if app.health != nil {
		app.health.Stop()
	}
}
