package types

import (
	"testing"
	"time"
)

func bar(closeOffset time.Duration, close float64) Candle {
	base := time.Unix(1_600_000_000, 0).UTC()
	return Candle{
		Open:      close,
		High:      close,
		Low:       close,
		Close:     close,
		OpenTime:  base.Add(closeOffset - time.Minute),
		CloseTime: base.Add(closeOffset),
	}
}

func TestSortCandlesOrdersByCloseTime(t *testing.T) {
	in := []Candle{bar(3*time.Minute, 3), bar(time.Minute, 1), bar(2*time.Minute, 2)}
	out := SortCandles(in)
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}
	for i := 1; i < len(out); i++ {
		if !out[i-1].CloseTime.Before(out[i].CloseTime) {
			t.Fatalf("candles not strictly ordered at %d", i)
		}
	}
}

func TestSortCandlesDropsDuplicateCloseTimes(t *testing.T) {
	in := []Candle{bar(time.Minute, 1), bar(time.Minute, 99), bar(2*time.Minute, 2)}
	out := SortCandles(in)
	if len(out) != 2 {
		t.Fatalf("len = %d, want 2 after dedupe", len(out))
	}
	if out[0].Close != 1 {
		t.Fatalf("dedupe should keep the first bar of a tie, kept close %v", out[0].Close)
	}
}

func TestAdverse(t *testing.T) {
	c := Candle{High: 10, Low: 5}
	if c.Adverse(true) != 5 {
		t.Fatalf("long adverse = %v, want the low", c.Adverse(true))
	}
	if c.Adverse(false) != 10 {
		t.Fatalf("short adverse = %v, want the high", c.Adverse(false))
	}
}
