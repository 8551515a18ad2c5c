package models

// MRating is a ratio together with its display string and verdict.
type MRating struct {
	Value   float64 `json:"value"`
	Display string  `json:"display"`
	Label   string  `json:"label"`
	Tone    string  `json:"tone"` // positive, caution, negative, info
	Comment string  `json:"comment"`
}

// MFundamentalAnalysis groups the per-instrument ratio verdicts.
type MFundamentalAnalysis struct {
	PER       MRating `json:"per"`
	PBV       MRating `json:"pbv"`
	ROE       MRating `json:"roe"`
	Beta      MRating `json:"beta"`
	YTD       MRating `json:"ytd"`
	MarketCap string  `json:"market_cap"`
	CapTier   string  `json:"cap_tier"` // Blue Chip, Mid Cap or Small Cap
}

// MInstrumentDisplay holds preformatted strings for the detail view.
type MInstrumentDisplay struct {
	Last          string `json:"last"`
	PrevClose     string `json:"prev_close"`
	High          string `json:"high"`
	Low           string `json:"low"`
	Change        string `json:"change"`
	ChangePercent string `json:"change_percent"`
	Volume        string `json:"volume"`
	Value         string `json:"value"`
	MarketCap     string `json:"market_cap"`
}

// MInstrumentDetail is the payload of the instrument detail endpoint.
type MInstrumentDetail struct {
	Instrument    MInstrument          `json:"instrument"`
	Change        float64              `json:"change"`
	ChangePercent float64              `json:"change_percent"`
	Display       MInstrumentDisplay   `json:"display"`
	Fundamentals  MFundamentalAnalysis `json:"fundamentals"`
	SectorZScore  float64              `json:"sector_zscore"` // today's move against sector peers
}

// MSectorSummary aggregates instruments sharing a sector.
type MSectorSummary struct {
	Sector         string  `json:"sector"`
	Count          int     `json:"count"`
	AvgOneDay      float64 `json:"avg_one_day"`
	StdOneDay      float64 `json:"std_one_day"`
	AvgYtd         float64 `json:"avg_ytd"`
	Capitalization float64 `json:"capitalization"`
}

// MMovers lists the best and worst daily performers.
type MMovers struct {
	Gainers []MInstrument `json:"gainers"`
	Losers  []MInstrument `json:"losers"`
}

// MMarketStatus reports whether the exchange is trading.
type MMarketStatus struct {
	MIC        string `json:"mic"`
	Open       bool   `json:"open"`
	TradingDay bool   `json:"trading_day"`
	LocalTime  string `json:"local_time"`
	Fallback   bool   `json:"fallback"`
}
