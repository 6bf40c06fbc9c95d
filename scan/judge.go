// Package scan holds the exploratory analysis tools: a rolling-window
// extremum tracker and a finder for historical bull runs worth laddering
// into. Nothing here is required by the simulation loop itself.
package scan

import "github.com/evdnx/gobt/types"

// RollJudge keeps the most recent candles and answers whether the latest one
// is the window extremum.
type RollJudge struct {
	cache     []types.Candle
	maxLength int
}

// NewRollJudge creates a judge over a window of maxLength candles.
func NewRollJudge(maxLength int) *RollJudge {
	return &RollJudge{cache: make([]types.Candle, 0, maxLength), maxLength: maxLength}
}

// Update pushes a candle, evicting the oldest once the window is full.
func (j *RollJudge) Update(c types.Candle) {
	if len(j.cache) >= j.maxLength {
		copy(j.cache, j.cache[1:])
		j.cache = j.cache[:len(j.cache)-1]
	}
	j.cache = append(j.cache, c)
}

// window returns the most recent size candles, newest last.
func (j *RollJudge) window(size int) []types.Candle {
	if size > len(j.cache) {
		size = len(j.cache)
	}
	return j.cache[len(j.cache)-size:]
}

// Max returns the candle with the highest high among the most recent size.
func (j *RollJudge) Max(size int) types.Candle {
	w := j.window(size)
	best := w[0]
	for _, c := range w[1:] {
		if c.High > best.High {
			best = c
		}
	}
	return best
}

// Min returns the candle with the lowest low among the most recent size.
func (j *RollJudge) Min(size int) types.Candle {
	w := j.window(size)
	best := w[0]
	for _, c := range w[1:] {
		if c.Low < best.Low {
			best = c
		}
	}
	return best
}

// IsMax reports whether the latest candle set the window high.
func (j *RollJudge) IsMax(size int) bool {
	return j.cache[len(j.cache)-1].CloseTime.Equal(j.Max(size).CloseTime)
}

// IsMin reports whether the latest candle set the window low.
func (j *RollJudge) IsMin(size int) bool {
	return j.cache[len(j.cache)-1].CloseTime.Equal(j.Min(size).CloseTime)
}
