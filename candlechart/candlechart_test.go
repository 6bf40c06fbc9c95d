package candlechart

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

const klineRows = `open_time,open,high,low,close,volume,close_time,quote_volume,count
1609459320000,101,103,100,102,5,1609459379999,0,0
1609459200000,100,102,99,101,10,1609459259999,0,0
1609459260000,101,103,100,102,7,1609459319999,0,0
1609459260000,999,999,999,999,1,1609459319999,0,0
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadFromCSVFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "klines.csv", klineRows)
	chart, err := ReadFromCSV(path, time.Minute)
	if err != nil {
		t.Fatalf("ReadFromCSV failed: %v", err)
	}
	// Header skipped, duplicate close time dropped, rows re-sorted.
	if len(chart.Candles) != 3 {
		t.Fatalf("got %d candles, want 3", len(chart.Candles))
	}
	for i := 1; i < len(chart.Candles); i++ {
		if !chart.Candles[i-1].CloseTime.Before(chart.Candles[i].CloseTime) {
			t.Fatalf("candles not strictly ordered at %d", i)
		}
	}
	first := chart.Candles[0]
	if first.Open != 100 || first.High != 102 || first.Low != 99 || first.Close != 101 || first.Volume != 10 {
		t.Fatalf("first candle = %+v", first)
	}
	if want := time.UnixMilli(1609459259999).UTC(); !first.CloseTime.Equal(want) {
		t.Fatalf("close time = %v, want %v", first.CloseTime, want)
	}
}

func TestReadFromCSVDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.csv", "1609459200000,100,102,99,101,10,1609459259999\n")
	writeFile(t, dir, "b.csv", "1609459260000,101,103,100,102,7,1609459319999\n")
	chart, err := ReadFromCSV(dir, time.Minute)
	if err != nil {
		t.Fatalf("ReadFromCSV failed: %v", err)
	}
	if len(chart.Candles) != 2 {
		t.Fatalf("got %d candles, want 2", len(chart.Candles))
	}
}

func TestReadFromCSVMissingPath(t *testing.T) {
	if _, err := ReadFromCSV(filepath.Join(t.TempDir(), "nope"), time.Minute); err == nil {
		t.Fatal("expected an error for a missing path")
	}
}

func TestReadFromCSVMalformedRow(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.csv", "1609459200000,abc,102,99,101,10,1609459259999\n")
	if _, err := ReadFromCSV(path, time.Minute); err == nil {
		t.Fatal("expected an error for a non-numeric price")
	}
}
