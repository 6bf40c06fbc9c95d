package strategy

import (
	"time"

	"github.com/evdnx/gobt/types"
)

var base = time.Unix(1_600_000_000, 0).UTC()

// bar builds an hourly candle; i is the bar index since base.
func bar(i int, open, high, low, close float64) types.Candle {
	return types.Candle{
		Open:      open,
		High:      high,
		Low:       low,
		Close:     close,
		Volume:    1000,
		OpenTime:  base.Add(time.Duration(i) * time.Hour),
		CloseTime: base.Add(time.Duration(i+1) * time.Hour),
	}
}

// flat builds a bar that trades in a tight band around price.
func flat(i int, price float64) types.Candle {
	return bar(i, price, price*1.001, price*0.999, price)
}
