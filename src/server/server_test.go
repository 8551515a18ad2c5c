package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/config"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
	"stock-dashboard/src/testutils"
	"stock-dashboard/src/utils"

	"github.com/gin-gonic/gin"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// Monday 10:00 in Jakarta
var now = time.Date(2026, 3, 2, 3, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T, provider *testutils.MockProvider) *APIServer {
	t.Helper()
	cfg := config.Default()
	clock := testutils.NewFakeClock(now)
	market := utils.NewMarketScheduler(&models.MMarketConfig{MIC: "zzzz", Timezone: "Asia/Jakarta"}, clock, nil)
	facade := analysis.NewAnalysisFacade(&cfg.Analysis, clock, nil)
	return NewAPIServer(cfg.MConfig, provider, facade, market, logger.NewNopLogger())
}

func doGet(t *testing.T, s *APIServer, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)

	var body map[string]interface{}
	if rec.Body.Len() > 0 && rec.Header().Get("Content-Type") != "" {
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid JSON from %s: %v (%s)", target, err, rec.Body.String())
		}
	}
	return rec, body
}

// -----------------------------------------------------------------------------

func TestGetStocks(t *testing.T) {
	provider := testutils.NewMockProvider(models.StatusFresh, testutils.SampleInstruments())
	s := newTestServer(t, provider)

	tests := []struct {
		name      string
		target    string
		wantCount int
	}{
		{"all", "/api/stocks", 4},
		{"search", "/api/stocks?q=bank", 2},
		{"sector", "/api/stocks?sector=Technology", 1},
		{"watchlist", "/api/stocks?codes=tlkm,goto", 2},
		{"no match", "/api/stocks?q=zzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, body := doGet(t, s, tt.target)
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if body["status"] != "fresh" {
				t.Errorf("status = %v, want fresh", body["status"])
			}
			if got := int(body["count"].(float64)); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
			if got := len(body["instruments"].([]interface{})); got != tt.wantCount {
				t.Errorf("len(instruments) = %d, want %d", got, tt.wantCount)
			}
		})
	}

	if provider.ForcedCalls() != 0 {
		t.Errorf("forced calls = %d, want 0", provider.ForcedCalls())
	}
}

func TestGetStocksRefresh(t *testing.T) {
	provider := testutils.NewMockProvider(models.StatusFresh, testutils.SampleInstruments())
	s := newTestServer(t, provider)

	rec, _ := doGet(t, s, "/api/stocks?refresh=true")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if provider.ForcedCalls() != 1 {
		t.Errorf("forced calls = %d, want 1", provider.ForcedCalls())
	}

	rec, _ = doGet(t, s, "/api/stocks?refresh=maybe")
	if rec.Code != http.StatusBadRequest {
		t.Errorf("bad refresh status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetStocksEmptyIsNotAnError(t *testing.T) {
	provider := testutils.NewMockProvider(models.StatusEmpty, []models.MInstrument{})
	provider.Result.FetchedAt = time.Time{}
	s := newTestServer(t, provider)

	rec, body := doGet(t, s, "/api/stocks")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body["status"] != "empty" {
		t.Errorf("status = %v, want empty", body["status"])
	}
	if body["fetched_at"] != nil {
		t.Errorf("fetched_at = %v, want null", body["fetched_at"])
	}
	if list, ok := body["instruments"].([]interface{}); !ok || len(list) != 0 {
		t.Errorf("instruments = %v, want []", body["instruments"])
	}
}

func TestGetStock(t *testing.T) {
	provider := testutils.NewMockProvider(models.StatusStale, testutils.SampleInstruments())
	s := newTestServer(t, provider)

	rec, body := doGet(t, s, "/api/stocks/bbca")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body["status"] != "stale" {
		t.Errorf("status = %v, want stale", body["status"])
	}
	detail := body["detail"].(map[string]interface{})
	display := detail["display"].(map[string]interface{})
	if display["last"] != "Rp 9.500" {
		t.Errorf("display.last = %v, want Rp 9.500", display["last"])
	}

	rec, body = doGet(t, s, "/api/stocks/NOPE")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if body["code"] != "NOPE" {
		t.Errorf("code = %v, want NOPE", body["code"])
	}
}

func TestGetHistory(t *testing.T) {
	provider := testutils.NewMockProvider(models.StatusFresh, testutils.SampleInstruments())
	s := newTestServer(t, provider)

	rec, body := doGet(t, s, "/api/stocks/TLKM/history?days=10")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	candles := body["candles"].([]interface{})
	if len(candles) != 10 {
		t.Errorf("len(candles) = %d, want 10", len(candles))
	}
	last := candles[len(candles)-1].(map[string]interface{})
	if last["close"] != 3200.0 {
		t.Errorf("last close = %v, want 3200", last["close"])
	}

	for _, target := range []string{"/api/stocks/TLKM/history?days=abc", "/api/stocks/TLKM/history?days=5000"} {
		if rec, _ := doGet(t, s, target); rec.Code != http.StatusBadRequest {
			t.Errorf("%s status = %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
	}
}

func TestGetSectorsAndMovers(t *testing.T) {
	provider := testutils.NewMockProvider(models.StatusFresh, testutils.SampleInstruments())
	s := newTestServer(t, provider)

	rec, body := doGet(t, s, "/api/sectors")
	if rec.Code != http.StatusOK {
		t.Fatalf("sectors status = %d", rec.Code)
	}
	sectors := body["sectors"].([]interface{})
	if len(sectors) != 3 {
		t.Errorf("len(sectors) = %d, want 3", len(sectors))
	}
	if first := sectors[0].(map[string]interface{}); first["sector"] != "Finance" {
		t.Errorf("first sector = %v, want Finance", first["sector"])
	}

	rec, body = doGet(t, s, "/api/movers?limit=1")
	if rec.Code != http.StatusOK {
		t.Fatalf("movers status = %d", rec.Code)
	}
	gainers := body["gainers"].([]interface{})
	if len(gainers) != 1 || gainers[0].(map[string]interface{})["Code"] != "BBRI" {
		t.Errorf("gainers = %v, want [BBRI]", gainers)
	}

	if rec, _ := doGet(t, s, "/api/movers?limit=-1"); rec.Code != http.StatusBadRequest {
		t.Errorf("negative limit status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestGetHealth(t *testing.T) {
	tests := []struct {
		name  string
		state models.MCacheStatus
		want  string
	}{
		{"no snapshot", models.MCacheStatus{}, "empty"},
		{"fresh", models.MCacheStatus{HasSnapshot: true, Fresh: true, Count: 4}, "ok"},
		{"expired", models.MCacheStatus{HasSnapshot: true, Count: 4}, "degraded"},
		{"failing", models.MCacheStatus{HasSnapshot: true, Fresh: true, ConsecutiveFailures: 2}, "degraded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := testutils.NewMockProvider(models.StatusFresh, nil)
			provider.State = tt.state
			s := newTestServer(t, provider)

			rec, body := doGet(t, s, "/api/health")
			if rec.Code != http.StatusOK {
				t.Fatalf("status code = %d", rec.Code)
			}
			if body["status"] != tt.want {
				t.Errorf("status = %v, want %v", body["status"], tt.want)
			}
			if body["market_open"] != true {
				t.Errorf("market_open = %v, want true", body["market_open"])
			}
		})
	}
}

func TestGetMarketAndConfig(t *testing.T) {
	s := newTestServer(t, testutils.NewMockProvider(models.StatusFresh, nil))

	rec, body := doGet(t, s, "/api/market")
	if rec.Code != http.StatusOK {
		t.Fatalf("market status = %d", rec.Code)
	}
	if body["open"] != true || body["fallback"] != true {
		t.Errorf("market = %v, want open fallback calendar", body)
	}

	rec, body = doGet(t, s, "/api/config")
	if rec.Code != http.StatusOK {
		t.Fatalf("config status = %d", rec.Code)
	}
	if body["ttl_seconds"] != 300.0 || body["min_interval_ms"] != 1000.0 {
		t.Errorf("config = %v, want ttl 300s and interval 1000ms", body)
	}
}

func TestMiddleware(t *testing.T) {
	s := newTestServer(t, testutils.NewMockProvider(models.StatusFresh, nil))

	rec, _ := doGet(t, s, "/api/health")
	if rec.Header().Get(requestIDHeader) == "" {
		t.Error("X-Request-ID not set")
	}

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	req.Header.Set("Origin", "http://localhost:3000")
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if got := rec.Header().Get(requestIDHeader); got != "abc-123" {
		t.Errorf("X-Request-ID = %q, want propagated %q", got, "abc-123")
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/stocks", nil)
	rec = httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", rec.Code, http.StatusNoContent)
	}
}

func TestStaticAssets(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "app.js"), []byte("console.log(1)"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := config.Default()
	cfg.StaticDir = dir
	clock := testutils.NewFakeClock(now)
	s := NewAPIServer(cfg.MConfig, testutils.NewMockProvider(models.StatusFresh, nil),
		analysis.NewAnalysisFacade(&cfg.Analysis, clock, nil),
		utils.NewMarketScheduler(&cfg.Market, clock, nil), logger.NewNopLogger())

	req := httptest.NewRequest(http.MethodGet, "/ui/app.js", nil)
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "console.log(1)" {
		t.Errorf("GET /ui/app.js = %d %q", rec.Code, rec.Body.String())
	}
}
