package server

import (
	"net/http"
	"strings"

	"stock-dashboard/src/analysis"
	"stock-dashboard/src/models"

	"github.com/gin-gonic/gin"
)

const (
	defaultMoversLimit = 5
	maxMoversLimit     = 50
)

// -----------------------------------------------------------------------------
// Instruments
// -----------------------------------------------------------------------------

func (s *APIServer) getStocks(c *gin.Context) {
	refresh, err := boolQuery(c, "refresh")
	if err != nil {
		badRequest(c, err)
		return
	}

	result := s.provider.GetInstruments(c.Request.Context(), refresh)
	list := analysis.FilterInstruments(result.Instruments, analysis.InstrumentFilter{
		Query:  c.Query("q"),
		Sector: c.Query("sector"),
		Codes:  splitCodes(c.Query("codes")),
	})

	c.JSON(http.StatusOK, gin.H{
		"status":      result.Status,
		"fetched_at":  timeOrNil(result.FetchedAt),
		"cached":      result.Cached,
		"count":       len(list),
		"total":       len(result.Instruments),
		"instruments": list,
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getStock(c *gin.Context) {
	result, in, ok := s.lookup(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     result.Status,
		"fetched_at": timeOrNil(result.FetchedAt),
		"detail":     s.analysis.BuildDetail(in, result.Instruments),
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getHistory(c *gin.Context) {
	days, err := intQuery(c, "days", 0)
	if err != nil {
		badRequest(c, err)
		return
	}

	_, in, ok := s.lookup(c)
	if !ok {
		return
	}

	history, err := s.analysis.History(in, days)
	if err != nil {
		badRequest(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

// lookup resolves :code against the cached list and writes a 404 when absent
func (s *APIServer) lookup(c *gin.Context) (models.MInstrumentsResult, models.MInstrument, bool) {
	code := strings.ToUpper(c.Param("code"))
	result := s.provider.GetInstruments(c.Request.Context(), false)

	in, ok := analysis.FindInstrument(result.Instruments, code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "instrument not found",
			"code":   code,
			"status": result.Status,
		})
		return result, models.MInstrument{}, false
	}
	return result, in, true
}

// -----------------------------------------------------------------------------
// Aggregates
// -----------------------------------------------------------------------------

func (s *APIServer) getSectors(c *gin.Context) {
	result := s.provider.GetInstruments(c.Request.Context(), false)
	c.JSON(http.StatusOK, gin.H{
		"status":  result.Status,
		"sectors": s.analysis.SectorSummaries(result.Instruments),
	})
}

// -----------------------------------------------------------------------------

func (s *APIServer) getMovers(c *gin.Context) {
	limit, err := intQuery(c, "limit", defaultMoversLimit)
	if err != nil {
		badRequest(c, err)
		return
	}
	if limit > maxMoversLimit {
		limit = maxMoversLimit
	}

	result := s.provider.GetInstruments(c.Request.Context(), false)
	movers := s.analysis.TopMovers(result.Instruments, limit)
	c.JSON(http.StatusOK, gin.H{
		"status":  result.Status,
		"gainers": movers.Gainers,
		"losers":  movers.Losers,
	})
}

// -----------------------------------------------------------------------------
// Service info
// -----------------------------------------------------------------------------

func (s *APIServer) getMarket(c *gin.Context) {
	c.JSON(http.StatusOK, s.market.Status())
}

// -----------------------------------------------------------------------------

func (s *APIServer) getConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":            s.Config.Name,
		"ttl_seconds":     s.Config.Cache.TTL.Seconds(),
		"min_interval_ms": s.Config.Cache.MinInterval.Milliseconds(),
		"history_days":    s.Config.Analysis.HistoryDays,
		"mic":             s.Config.Market.MIC,
	})
}

// -----------------------------------------------------------------------------

// getHealth never triggers an upstream call
func (s *APIServer) getHealth(c *gin.Context) {
	cache := s.provider.Status()

	status := "ok"
	switch {
	case !cache.HasSnapshot:
		status = "empty"
	case cache.ConsecutiveFailures > 0 || !cache.Fresh:
		status = "degraded"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":      status,
		"cache":       cache,
		"market_open": s.market.IsOpen(),
	})
}
