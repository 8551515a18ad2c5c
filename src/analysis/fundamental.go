package analysis

import (
	"stock-dashboard/src/format"
	"stock-dashboard/src/models"
)

// Tones drive the colour of a verdict in the UI.
const (
	TonePositive = "positive"
	ToneCaution  = "caution"
	ToneNegative = "negative"
	ToneInfo     = "info"
)

// band is one step of a threshold ladder: a value strictly above Above gets
// this verdict. Bands are checked top down; the last one catches the rest.
type band struct {
	Above   float64
	Label   string
	Tone    string
	Comment string
}

var (
	perBands = []band{
		{30, "Very high (overvalued)", ToneNegative, "Very rich valuation, high growth is priced in"},
		{20, "High (growth stock)", ToneCaution, "Growth stock with high expectations"},
		{10, "Fair", TonePositive, "Reasonable valuation"},
		{0, "Cheap (undervalued)", ToneInfo, "Potentially undervalued"},
	}
	pbvBands = []band{
		{5, "Very high", ToneNegative, "Assets are priced very expensively"},
		{3, "High", ToneCaution, "High growth expectations"},
		{1, "Fair", TonePositive, "Fairly priced against book value"},
		{0, "Cheap", ToneInfo, "Trading below book value"},
	}
	roeBands = []band{
		{0.2, "Excellent", TonePositive, "Very efficient at generating profit"},
		{0.15, "Good", TonePositive, "Effective management"},
		{0.1, "Adequate", ToneCaution, "Reasonably efficient"},
		{0, "Weak", ToneNegative, "Efficiency needs to improve"},
	}
	betaBands = []band{
		{1.5, "Very volatile", ToneNegative, "Very sensitive to market moves"},
		{1, "More volatile than the market", ToneCaution, "Swings more than the composite index"},
		{0.5, "Balanced", TonePositive, "Price moves are relatively stable"},
		{0, "Defensive", ToneInfo, "Tends to hold up when the market is turbulent"},
	}
	ytdBands = []band{
		{0.5, "Explosive", TonePositive, "Very strong performance this year"},
		{0.2, "Strong", TonePositive, "Ahead of expectations"},
		{0, "Stable", ToneCaution, "Positive growth"},
		{0, "Down", ToneNegative, "Below expectations"},
	}
)

// Market cap tiers in rupiah
const (
	blueChipCap = 100_000_000_000_000
	midCap      = 10_000_000_000_000
)

// -----------------------------------------------------------------------------

// RateFundamentals interprets the valuation ratios of an instrument.
// A zero ratio means the upstream has no figure: it keeps its verdict but
// displays as "N/A".
func RateFundamentals(in models.MInstrument) models.MFundamentalAnalysis {
	return models.MFundamentalAnalysis{
		PER:       rate(in.Per, perBands, format.Ratio(in.Per)),
		PBV:       rate(in.Pbr, pbvBands, format.Ratio(in.Pbr)),
		ROE:       rate(in.Roe, roeBands, percentOrNA(in.Roe)),
		Beta:      rate(in.BetaOneYear, betaBands, numberOrNA(in.BetaOneYear)),
		YTD:       rate(in.Ytd, ytdBands, format.Percent(in.Ytd)),
		MarketCap: format.MarketCap(in.Capitalization),
		CapTier:   CapTier(in.Capitalization),
	}
}

// CapTier classifies by market capitalization
func CapTier(capitalization float64) string {
	switch {
	case capitalization > blueChipCap:
		return "Blue Chip"
	case capitalization > midCap:
		return "Mid Cap"
	default:
		return "Small Cap"
	}
}

// -----------------------------------------------------------------------------

func rate(value float64, bands []band, display string) models.MRating {
	b := bands[len(bands)-1]
	for _, candidate := range bands[:len(bands)-1] {
		if value > candidate.Above {
			b = candidate
			break
		}
	}
	return models.MRating{
		Value:   value,
		Display: display,
		Label:   b.Label,
		Tone:    b.Tone,
		Comment: b.Comment,
	}
}

func percentOrNA(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return format.Percent(v)
}

func numberOrNA(v float64) string {
	if v == 0 {
		return "N/A"
	}
	return format.Number(v)
}
