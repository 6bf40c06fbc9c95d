package scan

import (
	"math"
	"time"

	"github.com/evdnx/goti"

	"github.com/evdnx/gobt/types"
)

// DrawPoint records the deepest drawdown observed before a run set a new
// high, paired with the rise at that point. The profile shows how much pain a
// ladder would have had to sit through.
type DrawPoint struct {
	Increase float64
	MaxDraw  float64
}

// Run is one detected bull run.
type Run struct {
	Entry types.Candle
	End   types.Candle
	Max   types.Candle
	// ReturnRate is End.Close / Entry.Low.
	ReturnRate float64
	// DrawProfile lists the drawdowns survived before each new high.
	DrawProfile []DrawPoint
	// Confirmed is set when an RSI bullish crossover fired after the entry.
	Confirmed bool
}

// FindBullRuns walks a candle series and extracts the rallies that rose more
// than 50% before their drawdown breached min(increase*0.5 + 0.1, 0.5). The
// entry of a run is its lowest low; a lower low restarts the search.
func FindBullRuns(candles []types.Candle) ([]Run, error) {
	suite, err := goti.NewIndicatorSuiteWithConfig(goti.DefaultConfig())
	if err != nil {
		return nil, err
	}

	var (
		runs              []Run
		entry, max        types.Candle
		startNew          = true
		maxDraw           float64
		maxDrawBeforeMax  float64
		profile           []DrawPoint
		lastBullCrossover time.Time
	)
	if len(candles) == 0 {
		return nil, nil
	}
	last := candles[len(candles)-1]
	for _, c := range candles {
		if addErr := suite.Add(c.High, c.Low, c.Close, c.Volume); addErr == nil {
			if ok, rsiErr := suite.GetRSI().IsBullishCrossover(); rsiErr == nil && ok {
				lastBullCrossover = c.CloseTime
			}
		}
		if startNew || c.Low < entry.Low {
			entry = c
			max = c
			maxDraw = 0
			maxDrawBeforeMax = 0
			profile = nil
			startNew = false
			continue
		}
		if max.High < c.High {
			if maxDraw > maxDrawBeforeMax {
				maxDrawBeforeMax = maxDraw
				profile = append(profile, DrawPoint{
					Increase: max.High/entry.Low - 1,
					MaxDraw:  maxDraw,
				})
			}
			max = c
		}
		maxDraw = math.Max(maxDraw, 1-c.Low/max.High)
		increase := max.High/entry.Low - 1
		if maxDraw > math.Min(increase*0.5+0.1, 0.5) {
			if increase > 0.5 {
				runs = append(runs, Run{
					Entry:       entry,
					End:         c,
					Max:         max,
					ReturnRate:  c.Close / entry.Low,
					DrawProfile: append([]DrawPoint(nil), profile...),
					Confirmed:   !lastBullCrossover.Before(entry.CloseTime),
				})
			}
			startNew = true
		}
	}
	if !startNew && max.High/entry.Low > 1.5 {
		runs = append(runs, Run{
			Entry:       entry,
			End:         last,
			Max:         max,
			ReturnRate:  last.Close / entry.Low,
			DrawProfile: append([]DrawPoint(nil), profile...),
			Confirmed:   !lastBullCrossover.Before(entry.CloseTime),
		})
	}
	return runs, nil
}
