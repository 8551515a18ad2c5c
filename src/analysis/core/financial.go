package core

import "math"

// -----------------------------------------------------------------------------

// ComputeOHLC summarizes a run of bars: first open, highest high, lowest low,
// last close.
func ComputeOHLC(opens, highs, lows, closes []float64) map[string]float64 {
	if len(closes) == 0 || len(opens) != len(closes) || len(highs) != len(closes) || len(lows) != len(closes) {
		return map[string]float64{
			"open": 0, "high": 0, "low": 0, "close": 0,
		}
	}

	high := math.Inf(-1)
	low := math.Inf(1)
	for i := range closes {
		if highs[i] > high {
			high = highs[i]
		}
		if lows[i] < low {
			low = lows[i]
		}
	}

	return map[string]float64{
		"open":  opens[0],
		"high":  high,
		"low":   low,
		"close": closes[len(closes)-1],
	}
}

// -----------------------------------------------------------------------------

// CalculateChange returns the absolute price change.
func CalculateChange(current, previous float64) float64 {
	if previous == 0 {
		return 0.0
	}
	return current - previous
}

// CalculateChangePercent calculates the change as a fraction (0.01 is 1%).
func CalculateChangePercent(current, previous float64) float64 {
	if previous == 0 {
		return 0.0
	}
	return (current - previous) / previous
}

// -----------------------------------------------------------------------------

// DailyReturns computes close-to-close fractional returns. The result has
// one element fewer than closes.
func DailyReturns(closes []float64) []float64 {
	if len(closes) < 2 {
		return []float64{}
	}
	returns := make([]float64, 0, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		returns = append(returns, CalculateChangePercent(closes[i], closes[i-1]))
	}
	return returns
}
