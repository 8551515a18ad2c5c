package grpc_control

import (
	"context"
	"fmt"
	"net"
	"time"

	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// InstrumentsService is the health-checked service name
const InstrumentsService = "stockdashboard.Instruments"

// HealthService publishes cache availability over the standard gRPC health
// protocol so orchestrators can probe the process. The instruments service
// is SERVING while a snapshot exists, stale or not.
type HealthService struct {
	provider interfaces.IInstrumentProvider
	health   *health.Server
	interval time.Duration
	logger   *logger.Logger

	server *grpc.Server
}

// -----------------------------------------------------------------------------

func NewHealthService(provider interfaces.IInstrumentProvider, interval time.Duration, log *logger.Logger) *HealthService {
	if log == nil {
		log = logger.NewNopLogger()
	}
	hs := &HealthService{
		provider: provider,
		health:   health.NewServer(),
		interval: interval,
		logger:   log,
	}
	hs.Sync()
	return hs
}

// -----------------------------------------------------------------------------

// Sync copies the cache state into the health server
func (hs *HealthService) Sync() healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if hs.provider.Status().HasSnapshot {
		status = healthpb.HealthCheckResponse_SERVING
	}
	hs.health.SetServingStatus(InstrumentsService, status)
	// The process itself is always up
	hs.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	return status
}

// Run re-syncs every interval until ctx is done
func (hs *HealthService) Run(ctx context.Context) {
	ticker := time.NewTicker(hs.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hs.Sync()
		}
	}
}

// -----------------------------------------------------------------------------

// Register attaches the health and reflection services to s
func (hs *HealthService) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, hs.health)
	reflection.Register(s)
}

// -----------------------------------------------------------------------------

// Serve listens on addr and blocks until Stop
func (hs *HealthService) Serve(addr string) error {
	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", addr, err)
	}

	hs.server = grpc.NewServer()
	hs.Register(hs.server)

	hs.logger.Info("gRPC health service listening on %s", addr)
	if err := hs.server.Serve(lis); err != nil && err != grpc.ErrServerStopped {
		return fmt.Errorf("grpc server failed: %w", err)
	}
	return nil
}

// Stop marks everything NOT_SERVING and stops the server gracefully
func (hs *HealthService) Stop() {
	hs.health.Shutdown()
	if hs.server != nil {
		hs.server.GracefulStop()
	}
}
