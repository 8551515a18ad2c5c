package testutils

import (
	"context"
	"sync"
	"time"

	"stock-dashboard/src/models"
)

// -----------------------------------------------------------------------------
// MockInstrumentSource
// -----------------------------------------------------------------------------

// MockInstrumentSource returns canned responses and counts calls.
// Each call records the clock time it started at when Clock is set.
type MockInstrumentSource struct {
	Clock interface{ Now() time.Time }

	// Hold, when non-nil, blocks every fetch until it is closed.
	Hold chan struct{}

	mu          sync.Mutex
	instruments []models.MInstrument
	err         error
	calls       int
	startedAt   []time.Time
}

func NewMockInstrumentSource(instruments []models.MInstrument) *MockInstrumentSource {
	return &MockInstrumentSource{instruments: instruments}
}

func (m *MockInstrumentSource) Name() string {
	return "mock"
}

func (m *MockInstrumentSource) FetchInstruments(ctx context.Context) ([]models.MInstrument, error) {
	m.mu.Lock()
	m.calls++
	if m.Clock != nil {
		m.startedAt = append(m.startedAt, m.Clock.Now())
	}
	hold := m.Hold
	m.mu.Unlock()

	if hold != nil {
		<-hold
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]models.MInstrument, len(m.instruments))
	copy(out, m.instruments)
	return out, nil
}

// SetResponse replaces what the next fetches return
func (m *MockInstrumentSource) SetResponse(instruments []models.MInstrument, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.instruments = instruments
	m.err = err
}

func (m *MockInstrumentSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func (m *MockInstrumentSource) StartedAt() []time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]time.Time, len(m.startedAt))
	copy(out, m.startedAt)
	return out
}

// -----------------------------------------------------------------------------
// MockProvider
// -----------------------------------------------------------------------------

// MockProvider implements interfaces.IInstrumentProvider with a fixed result
type MockProvider struct {
	mu     sync.Mutex
	Result models.MInstrumentsResult
	State  models.MCacheStatus
	Forced int
}

func NewMockProvider(status models.MResultStatus, instruments []models.MInstrument) *MockProvider {
	return &MockProvider{
		Result: models.MInstrumentsResult{
			Status:      status,
			Instruments: instruments,
			FetchedAt:   time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		},
		State: models.MCacheStatus{
			HasSnapshot: status != models.StatusEmpty,
			Count:       len(instruments),
		},
	}
}

func (p *MockProvider) GetInstruments(ctx context.Context, force bool) models.MInstrumentsResult {
	p.mu.Lock()
	defer p.mu.Unlock()
	if force {
		p.Forced++
	}
	res := p.Result
	res.Instruments = append([]models.MInstrument{}, p.Result.Instruments...)
	return res
}

func (p *MockProvider) Status() models.MCacheStatus {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.State
}

// SetState replaces the status reported by Status
func (p *MockProvider) SetState(state models.MCacheStatus) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.State = state
}

func (p *MockProvider) ForcedCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.Forced
}

// -----------------------------------------------------------------------------
// Fixtures
// -----------------------------------------------------------------------------

// SampleInstruments returns a small, realistic IDX list
func SampleInstruments() []models.MInstrument {
	return []models.MInstrument{
		{
			Id: 1, Code: "BBCA", Name: "Bank Central Asia Tbk.", SectorName: "Finance", SubSectorName: "Bank",
			Last: 9500, PrevClosingPrice: 9400, AdjustedHighPrice: 9550, AdjustedLowPrice: 9375,
			Volume: 61234500, Value: 581727750000, OneDay: 0.0106, Ytd: 0.0215,
			Per: 24.1, Pbr: 4.8, Roe: 0.21, Capitalization: 1171000000000000, BetaOneYear: 0.82,
			LastDate: "2026-03-02T00:00:00",
		},
		{
			Id: 2, Code: "TLKM", Name: "Telkom Indonesia (Persero) Tbk.", SectorName: "Infrastructure", SubSectorName: "Telecommunication",
			Last: 3200, PrevClosingPrice: 3250, AdjustedHighPrice: 3260, AdjustedLowPrice: 3180,
			Volume: 98000000, Value: 313600000000, OneDay: -0.0154, Ytd: -0.12,
			Per: 11.5, Pbr: 2.1, Roe: 0.17, Capitalization: 317000000000000, BetaOneYear: 1.1,
			LastDate: "2026-03-02T00:00:00",
		},
		{
			Id: 3, Code: "BBRI", Name: "Bank Rakyat Indonesia (Persero) Tbk.", SectorName: "Finance", SubSectorName: "Bank",
			Last: 4500, PrevClosingPrice: 4450, AdjustedHighPrice: 4520, AdjustedLowPrice: 4430,
			Volume: 150000000, Value: 675000000000, OneDay: 0.0112, Ytd: 0.05,
			Per: 9.8, Pbr: 2.0, Roe: 0.19, Capitalization: 682000000000000, BetaOneYear: 1.2,
			LastDate: "2026-03-02T00:00:00",
		},
		{
			Id: 4, Code: "GOTO", Name: "GoTo Gojek Tokopedia Tbk.", SectorName: "Technology", SubSectorName: "Online Applications",
			Last: 68, PrevClosingPrice: 70, AdjustedHighPrice: 71, AdjustedLowPrice: 67,
			Volume: 2100000000, Value: 142800000000, OneDay: -0.0286, Ytd: -0.19,
			Per: 0, Pbr: 1.3, Roe: -0.08, Capitalization: 80800000000000, BetaOneYear: 1.7,
			LastDate: "2026-03-02T00:00:00",
		},
	}
}
