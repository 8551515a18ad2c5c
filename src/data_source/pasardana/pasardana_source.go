package pasardana

import (
	"context"
	"fmt"

	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------

// PasardanaSource reads the full IDX stock list from the Pasardana
// StockSearchResult endpoint (or any endpoint with the same record shape).
type PasardanaSource struct {
	network    interfaces.INetworkManager
	url        string
	resultPath string
	logger     *logger.Logger
}

// -----------------------------------------------------------------------------

func NewPasardanaSource(cfg *models.MUpstreamConfig, network interfaces.INetworkManager, log *logger.Logger) *PasardanaSource {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &PasardanaSource{
		network:    network,
		url:        cfg.URL,
		resultPath: cfg.ResultPath,
		logger:     log,
	}
}

// -----------------------------------------------------------------------------

func (s *PasardanaSource) Name() string {
	return "pasardana"
}

// -----------------------------------------------------------------------------

// FetchInstruments performs one GET and normalizes the body.
func (s *PasardanaSource) FetchInstruments(ctx context.Context) ([]models.MInstrument, error) {
	body, err := s.network.Get(ctx, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%s fetch failed: %w", s.Name(), err)
	}

	instruments, err := NormalizeInstruments(body, s.resultPath)
	if err != nil {
		return nil, fmt.Errorf("%s response rejected: %w", s.Name(), err)
	}

	s.logger.Debug("Fetched %d instruments (%d bytes)", len(instruments), len(body))
	return instruments, nil
}
