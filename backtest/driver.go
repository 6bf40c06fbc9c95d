// Package backtest drives strategies over historical candle series.
package backtest

import (
	"sync"

	"github.com/evdnx/gobt/strategy"
	"github.com/evdnx/gobt/types"
)

// Result is the outcome of one strategy run.
type Result struct {
	// Value is the terminal strategy value, realized where possible.
	Value float64
	// Err is set when the run aborted on a configuration violation.
	Err error
}

// Run feeds the candles in order into s, stopping early once the strategy
// reaches a terminal state. If the series ends with the strategy still live,
// any residual position is force-closed at the last candle's close price.
// The caller must supply candles already sorted and deduplicated by close
// time (see types.SortCandles).
func Run(s strategy.Strategy, candles []types.Candle) Result {
	for _, c := range candles {
		if err := s.Update(c); err != nil {
			return Result{Value: s.Value(), Err: err}
		}
		if s.Done() {
			return Result{Value: s.Value()}
		}
	}
	if len(candles) == 0 {
		return Result{Value: s.Value()}
	}
	return Result{Value: s.Close(candles[len(candles)-1].Close)}
}

// RunParallel executes each strategy over the same candle series on its own
// goroutine. The strategies share no mutable state except, for geo instances,
// the capital pool they were constructed with. Results are positional.
func RunParallel(strategies []strategy.Strategy, candles []types.Candle) []Result {
	results := make([]Result, len(strategies))
	var wg sync.WaitGroup
	for i, s := range strategies {
		wg.Add(1)
		go func(i int, s strategy.Strategy) {
			defer wg.Done()
			results[i] = Run(s, candles)
		}(i, s)
	}
	wg.Wait()
	return results
}
