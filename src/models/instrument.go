package models

// MInstrument is one row of the upstream stock list.
// Return fields are signed fractions (-0.012 means -1.2%), not percentages.
type MInstrument struct {
	Id            int64  `json:"Id"`
	Code          string `json:"Code"`
	Name          string `json:"Name"`
	SectorName    string `json:"SectorName"`
	SubSectorName string `json:"SubSectorName"`

	// Prices
	Last              float64 `json:"Last"`
	PrevClosingPrice  float64 `json:"PrevClosingPrice"`
	AdjustedHighPrice float64 `json:"AdjustedHighPrice"`
	AdjustedLowPrice  float64 `json:"AdjustedLowPrice"`
	Volume            float64 `json:"Volume"`
	Value             float64 `json:"Value"`

	// Trailing returns
	OneDay     float64 `json:"OneDay"`
	OneWeek    float64 `json:"OneWeek"`
	OneMonth   float64 `json:"OneMonth"`
	ThreeMonth float64 `json:"ThreeMonth"`
	SixMonth   float64 `json:"SixMonth"`
	OneYear    float64 `json:"OneYear"`
	Ytd        float64 `json:"Ytd"`

	// Fundamentals
	Per            float64 `json:"Per"`
	Pbr            float64 `json:"Pbr"`
	Roe            float64 `json:"Roe"`
	Capitalization float64 `json:"Capitalization"`
	BetaOneYear    float64 `json:"BetaOneYear"`

	LastDate string `json:"LastDate"`
}
