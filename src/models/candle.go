package models

// MCandle is one synthetic daily bar for the technical chart.
type MCandle struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Open  float64 `json:"open"`
	High  float64 `json:"high"`
	Low   float64 `json:"low"`
	Close float64 `json:"close"`
}

// MHistory is a candle series plus a summary of the whole period.
type MHistory struct {
	Code       string    `json:"code"`
	Synthetic  bool      `json:"synthetic"`
	Candles    []MCandle `json:"candles"`
	Summary    MCandle   `json:"summary"`    // open of the first day, close of the last
	Change     float64   `json:"change"`     // fractional close-to-close over the period
	Volatility float64   `json:"volatility"` // std of daily close-to-close returns
}
