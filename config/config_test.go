package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefaultRollLadder(t *testing.T) {
	cfg := DefaultRollLadder()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default ladder invalid: %v", err)
	}
	if len(cfg.Levels) != 9 {
		t.Fatalf("default ladder has %d levels, want 9", len(cfg.Levels))
	}
	// Leverage de-escalates down to 1x on the last level.
	if first, last := cfg.Levels[0].Leverage, cfg.Levels[8].Leverage; first != 25 || last != 1 {
		t.Fatalf("leverage endpoints = %v, %v, want 25, 1", first, last)
	}
}

func TestRollConfigValidate(t *testing.T) {
	cases := []struct {
		name  string
		level RollLevel
		want  string
	}{
		{"fractional leverage", RollLevel{Leverage: 0.5, TakeProfit: 0.1}, "leverage"},
		{"zero take profit", RollLevel{Leverage: 2}, "take profit"},
		{"full drawdown", RollLevel{Leverage: 2, TakeProfit: 0.1, MaxDrawdown: 1}, "max drawdown"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := NewRollConfig([]RollLevel{tc.level})
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want mention of %q", err, tc.want)
			}
		})
	}
}

func TestRollConfigEmptyLadderValid(t *testing.T) {
	cfg := NewRollConfig(nil)
	if err := cfg.Validate(); err != nil {
		t.Fatalf("empty ladder should validate, got %v", err)
	}
}

func validGeo() GeoConfig {
	return GeoConfig{
		Leverage:        10,
		Interval:        time.Hour,
		Ratio:           0.5,
		Supply:          100,
		StopLossRatio:   0.05,
		TakeProfitRatio: 0.03,
	}
}

func TestGeoConfigValidate(t *testing.T) {
	valid := validGeo()
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	mutations := []struct {
		name   string
		mutate func(*GeoConfig)
	}{
		{"fractional leverage", func(c *GeoConfig) { c.Leverage = 0.9 }},
		{"zero interval", func(c *GeoConfig) { c.Interval = 0 }},
		{"ratio above one", func(c *GeoConfig) { c.Ratio = 1.5 }},
		{"zero supply", func(c *GeoConfig) { c.Supply = 0 }},
		{"stop loss at one", func(c *GeoConfig) { c.StopLossRatio = 1 }},
		{"zero take profit", func(c *GeoConfig) { c.TakeProfitRatio = 0 }},
	}
	for _, m := range mutations {
		t.Run(m.name, func(t *testing.T) {
			cfg := validGeo()
			m.mutate(&cfg)
			if cfg.Validate() == nil {
				t.Fatal("expected a validation error")
			}
		})
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GOBT_DATA_DIR", "/tmp/klines")
	t.Setenv("GOBT_CANDLE_INTERVAL", "5m")
	t.Setenv("GOBT_DIRECTION", "short")
	t.Setenv("GOBT_CAPITAL", "250")
	e := FromEnv()
	if e.DataDir != "/tmp/klines" {
		t.Fatalf("DataDir = %q", e.DataDir)
	}
	if e.CandleInterval != 5*time.Minute {
		t.Fatalf("CandleInterval = %v", e.CandleInterval)
	}
	if e.Bull {
		t.Fatal("direction short should clear Bull")
	}
	if e.Capital != 250 {
		t.Fatalf("Capital = %v", e.Capital)
	}
}
