package catalog

import (
	"math"
	"math/rand"
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
)

// GenerateOHLCV produces a random-walk candle series ending at now.
func GenerateOHLCV(basePrice float64, timeFrame domain.TimeFrame, count int, volatility float64) []domain.OHLCV {
	interval := domain.TimeFrameSeconds[timeFrame]
	now := time.Now().Unix()
	start := now - int64(count)*interval

	price := basePrice * (0.9 + rand.Float64()*0.2)
	out := make([]domain.OHLCV, 0, count)

	for i := 0; i < count; i++ {
		change := (rand.Float64() - 0.5) * volatility
		open := price
		closeP := open * (1 + change)

		high := math.Max(open, closeP) * (1 + rand.Float64()*volatility*0.5)
		low := math.Min(open, closeP) * (1 - rand.Float64()*volatility*0.5)

		const baseVolume = 1_000_000
		volume := baseVolume * (0.5 + rand.Float64())

		out = append(out, domain.OHLCV{
			Time:   start + int64(i)*interval,
			Open:   round8(open),
			High:   round8(high),
			Low:    round8(low),
			Close:  round8(closeP),
			Volume: int64(volume),
		})

		price = closeP
	}

	return out
}

// TokenChart generates chart data for a catalog token, using its baseline
// price as the anchor. Unknown tokens anchor at 1.0.
func TokenChart(tokenID string, timeFrame domain.TimeFrame, count int) []domain.OHLCV {
	basePrice, ok := BasePrice(tokenID)
	if !ok {
		basePrice = 1.0
	}

	volatility := 0.03
	if tokenID == "sol" {
		volatility = 0.015
	}

	return GenerateOHLCV(basePrice, timeFrame, count, volatility)
}

func round8(v float64) float64 {
	return math.Round(v*1e8) / 1e8
}
