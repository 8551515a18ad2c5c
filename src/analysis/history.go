package analysis

import (
	"hash/fnv"
	"math"
	"math/rand/v2"
	"time"

	"stock-dashboard/src/models"
)

// dailyVolatility is the maximum daily move as a fraction of the last price
const dailyVolatility = 0.03

// GenerateHistory builds a synthetic daily candle series ending at end with a
// close equal to last. It walks backwards: each day's open becomes the
// previous day's close. The walk is seeded from code, so the same
// instrument always gets the same shape. Candles are ordered oldest first.
//
// The series is for chart illustration only; it is not market data.
func GenerateHistory(code string, last float64, days int, end time.Time) []models.MCandle {
	if days <= 0 {
		return []models.MCandle{}
	}

	rng := rand.New(rand.NewPCG(seedFor(code), uint64(days)))
	volatility := last * dailyVolatility
	current := last

	candles := make([]models.MCandle, days)
	for i := 0; i < days; i++ {
		date := end.AddDate(0, 0, -i)
		change := (rng.Float64() - 0.5) * volatility

		closePrice := current
		open := current - change
		high := math.Max(open, closePrice) + rng.Float64()*volatility*0.5
		low := math.Min(open, closePrice) - rng.Float64()*volatility*0.5

		candles[days-1-i] = models.MCandle{
			Date:  date.Format("2006-01-02"),
			Open:  math.Round(math.Max(open, 0)),
			High:  math.Round(math.Max(high, 0)),
			Low:   math.Round(math.Max(low, 0)),
			Close: math.Round(closePrice),
		}

		current = open
	}
	return candles
}

func seedFor(code string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(code))
	return h.Sum64()
}
