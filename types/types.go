package types

import (
	"sort"
	"time"
)

// Candle is a single OHLCV bar for one time bucket. The close time is the
// ordering key for a series; candles are never mutated after construction.
type Candle struct {
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64

	OpenTime  time.Time
	CloseTime time.Time
}

// Adverse returns the worst intrabar price for the given direction: the low
// for a long, the high for a short.
func (c Candle) Adverse(isBull bool) float64 {
	if isBull {
		return c.Low
	}
	return c.High
}

// SortCandles orders a series by close time and discards bars that share a
// close time with an earlier bar. It returns the (possibly shortened) slice.
func SortCandles(candles []Candle) []Candle {
	sort.SliceStable(candles, func(i, j int) bool {
		return candles[i].CloseTime.Before(candles[j].CloseTime)
	})
	out := candles[:0]
	for _, c := range candles {
		if len(out) > 0 && !out[len(out)-1].CloseTime.Before(c.CloseTime) {
			continue
		}
		out = append(out, c)
	}
	return out
}
