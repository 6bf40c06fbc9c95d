package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Env holds the settings the backtest entrypoint reads from the environment.
type Env struct {
	// DataDir is the CSV kline file or directory to load.
	DataDir string
	// CandleInterval is the bar duration of the loaded data.
	CandleInterval time.Duration
	// Bull selects the trade direction.
	Bull bool
	// Capital is the starting capital for a roll run.
	Capital float64
}

// FromEnv loads variables from .env (if present) and the process environment,
// falling back to sensible defaults.
func FromEnv() Env {
	if err := godotenv.Load(); err != nil {
		log.Println("config: no .env file, relying on system environment")
	}
	e := Env{
		DataDir:        "./data",
		CandleInterval: time.Minute,
		Bull:           true,
		Capital:        100,
	}
	if v := os.Getenv("GOBT_DATA_DIR"); v != "" {
		e.DataDir = v
	}
	if v := os.Getenv("GOBT_CANDLE_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			e.CandleInterval = d
		}
	}
	if v := os.Getenv("GOBT_DIRECTION"); v != "" {
		e.Bull = v != "short" && v != "bear"
	}
	if v := os.Getenv("GOBT_CAPITAL"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			e.Capital = f
		}
	}
	return e
}
