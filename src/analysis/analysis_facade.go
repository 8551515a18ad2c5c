package analysis

import (
	"fmt"
	"sort"

	"stock-dashboard/src/analysis/core"
	"stock-dashboard/src/config"
	"stock-dashboard/src/format"
	"stock-dashboard/src/interfaces"
	"stock-dashboard/src/logger"
	"stock-dashboard/src/models"
)

const unknownSector = "Unknown"

type AnalysisFacade struct {
	Config *models.MAnalysisConfig
	Logger *logger.Logger
	clock  interfaces.IClock
}

// -----------------------------------------------------------------------------

func NewAnalysisFacade(cfg *models.MAnalysisConfig, clock interfaces.IClock, log *logger.Logger) *AnalysisFacade {
	if log == nil {
		log = logger.NewNopLogger()
	}
	return &AnalysisFacade{
		Config: cfg,
		Logger: log,
		clock:  clock,
	}
}

// -----------------------------------------------------------------------------

// BuildDetail assembles the instrument view. universe is the full list the
// instrument came from and is used to compare it with its sector peers.
func (a *AnalysisFacade) BuildDetail(in models.MInstrument, universe []models.MInstrument) models.MInstrumentDetail {
	change := core.CalculateChange(in.Last, in.PrevClosingPrice)
	changePct := core.CalculateChangePercent(in.Last, in.PrevClosingPrice)

	return models.MInstrumentDetail{
		Instrument:    in,
		Change:        change,
		ChangePercent: changePct,
		Display: models.MInstrumentDisplay{
			Last:          format.Currency(in.Last),
			PrevClose:     format.Currency(in.PrevClosingPrice),
			High:          format.Currency(in.AdjustedHighPrice),
			Low:           format.Currency(in.AdjustedLowPrice),
			Change:        signedNumber(change),
			ChangePercent: format.SignedPercent(changePct),
			Volume:        format.Number(in.Volume),
			Value:         format.Currency(in.Value),
			MarketCap:     format.MarketCap(in.Capitalization),
		},
		Fundamentals: RateFundamentals(in),
		SectorZScore: a.sectorZScore(in, universe),
	}
}

func (a *AnalysisFacade) sectorZScore(in models.MInstrument, universe []models.MInstrument) float64 {
	var peers []float64
	for _, other := range universe {
		if sectorOf(other) == sectorOf(in) {
			peers = append(peers, other.OneDay)
		}
	}
	mean, std := core.CalculateMeanStd(peers)
	return core.CalculateZScore(in.OneDay, mean, std)
}

// -----------------------------------------------------------------------------

// History returns the synthetic chart series for an instrument.
// days <= 0 selects the configured default.
func (a *AnalysisFacade) History(in models.MInstrument, days int) (models.MHistory, error) {
	if days <= 0 {
		days = a.Config.HistoryDays
	}
	if days > config.MaxHistoryDays {
		return models.MHistory{}, fmt.Errorf("history days must be between 1 and %d, got %d", config.MaxHistoryDays, days)
	}

	candles := GenerateHistory(in.Code, in.Last, days, a.clock.Now())

	opens := make([]float64, len(candles))
	highs := make([]float64, len(candles))
	lows := make([]float64, len(candles))
	closes := make([]float64, len(candles))
	for i, c := range candles {
		opens[i], highs[i], lows[i], closes[i] = c.Open, c.High, c.Low, c.Close
	}

	ohlc := core.ComputeOHLC(opens, highs, lows, closes)
	_, volatility := core.CalculateMeanStd(core.DailyReturns(closes))

	history := models.MHistory{
		Code:      in.Code,
		Synthetic: true,
		Candles:   candles,
		Summary: models.MCandle{
			Open:  ohlc["open"],
			High:  ohlc["high"],
			Low:   ohlc["low"],
			Close: ohlc["close"],
		},
		Change:     core.CalculateChangePercent(ohlc["close"], ohlc["open"]),
		Volatility: volatility,
	}
	if len(candles) > 0 {
		history.Summary.Date = candles[0].Date + "/" + candles[len(candles)-1].Date
	}
	return history, nil
}

// -----------------------------------------------------------------------------

// SectorSummaries groups instruments by sector, largest total market cap first
func (a *AnalysisFacade) SectorSummaries(list []models.MInstrument) []models.MSectorSummary {
	groups := make(map[string][]models.MInstrument)
	for _, in := range list {
		sector := sectorOf(in)
		groups[sector] = append(groups[sector], in)
	}

	summaries := make([]models.MSectorSummary, 0, len(groups))
	for sector, members := range groups {
		oneDay := make([]float64, len(members))
		ytd := make([]float64, len(members))
		capitalization := 0.0
		for i, in := range members {
			oneDay[i] = in.OneDay
			ytd[i] = in.Ytd
			capitalization += in.Capitalization
		}

		avgOneDay, stdOneDay := core.CalculateMeanStd(oneDay)
		avgYtd, _ := core.CalculateMeanStd(ytd)

		summaries = append(summaries, models.MSectorSummary{
			Sector:         sector,
			Count:          len(members),
			AvgOneDay:      avgOneDay,
			StdOneDay:      stdOneDay,
			AvgYtd:         avgYtd,
			Capitalization: capitalization,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Capitalization != summaries[j].Capitalization {
			return summaries[i].Capitalization > summaries[j].Capitalization
		}
		return summaries[i].Sector < summaries[j].Sector
	})
	return summaries
}

// -----------------------------------------------------------------------------

// TopMovers returns up to limit gainers (OneDay > 0, best first) and losers
// (OneDay < 0, worst first). Ties keep upstream order.
func (a *AnalysisFacade) TopMovers(list []models.MInstrument, limit int) models.MMovers {
	movers := models.MMovers{
		Gainers: []models.MInstrument{},
		Losers:  []models.MInstrument{},
	}
	if limit <= 0 {
		return movers
	}

	for _, in := range list {
		switch {
		case in.OneDay > 0:
			movers.Gainers = append(movers.Gainers, in)
		case in.OneDay < 0:
			movers.Losers = append(movers.Losers, in)
		}
	}

	sort.SliceStable(movers.Gainers, func(i, j int) bool { return movers.Gainers[i].OneDay > movers.Gainers[j].OneDay })
	sort.SliceStable(movers.Losers, func(i, j int) bool { return movers.Losers[i].OneDay < movers.Losers[j].OneDay })

	if len(movers.Gainers) > limit {
		movers.Gainers = movers.Gainers[:limit]
	}
	if len(movers.Losers) > limit {
		movers.Losers = movers.Losers[:limit]
	}
	return movers
}

// -----------------------------------------------------------------------------

func sectorOf(in models.MInstrument) string {
	if in.SectorName == "" {
		return unknownSector
	}
	return in.SectorName
}

func signedNumber(v float64) string {
	if v > 0 {
		return "+" + format.Number(v)
	}
	return format.Number(v)
}
