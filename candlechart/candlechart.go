// Package candlechart loads historical kline data from flat CSV files. It is
// the data source the backtest core consumes; the core packages never import
// it and only see the resulting candle slice.
package candlechart

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/evdnx/gobt/types"
)

// Chart is an ordered, deduplicated candle series at a fixed bar interval.
type Chart struct {
	Interval time.Duration
	Candles  []types.Candle
}

// ReadFromCSV loads a kline CSV file, or every file in a directory, and
// returns the candles sorted by close time with duplicate close times
// dropped. Rows follow the exchange kline export layout:
//
//	open_time, open, high, low, close, volume, close_time, ...
//
// with times in milliseconds since the epoch. Trailing columns (quote volume,
// trade count, taker volumes) are ignored. Rows whose leading field is not
// numeric (headers) are skipped.
func ReadFromCSV(path string, interval time.Duration) (*Chart, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("candlechart: %w", err)
	}
	chart := &Chart{Interval: interval}
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, fmt.Errorf("candlechart: %w", err)
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			candles, err := readFile(filepath.Join(path, e.Name()))
			if err != nil {
				return nil, err
			}
			chart.Candles = append(chart.Candles, candles...)
		}
	} else {
		if chart.Candles, err = readFile(path); err != nil {
			return nil, err
		}
	}
	chart.Candles = types.SortCandles(chart.Candles)
	return chart, nil
}

func readFile(path string) ([]types.Candle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("candlechart: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	var candles []types.Candle
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("candlechart: %s: %w", path, err)
		}
		if len(rec) < 7 {
			return nil, fmt.Errorf("candlechart: %s: row has %d fields, need 7", path, len(rec))
		}
		openMs, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			// Header row.
			continue
		}
		closeMs, err := strconv.ParseInt(rec[6], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("candlechart: %s: close time: %w", path, err)
		}
		var vals [5]float64
		for i := 1; i <= 5; i++ {
			if vals[i-1], err = strconv.ParseFloat(rec[i], 64); err != nil {
				return nil, fmt.Errorf("candlechart: %s: field %d: %w", path, i, err)
			}
		}
		candles = append(candles, types.Candle{
			Open:      vals[0],
			High:      vals[1],
			Low:       vals[2],
			Close:     vals[3],
			Volume:    vals[4],
			OpenTime:  time.UnixMilli(openMs).UTC(),
			CloseTime: time.UnixMilli(closeMs).UTC(),
		})
	}
	return candles, nil
}
