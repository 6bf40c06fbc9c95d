package config

import (
	"errors"
	"fmt"
	"time"
)

// RollLevel is one rung of a roll ladder: the leverage to open with, the
// take-profit ratio relative to the entry price, and an optional maximum
// drawdown from the best value seen (0 = disabled).
type RollLevel struct {
	Leverage    float64
	TakeProfit  float64
	MaxDrawdown float64
}

// RollConfig is the ordered ladder a RollStrategy escalates through.
type RollConfig struct {
	Levels []RollLevel
}

// NewRollConfig wraps a ladder definition.
func NewRollConfig(levels []RollLevel) RollConfig {
	return RollConfig{Levels: levels}
}

// DefaultRollLadder is the stock nine-level ladder: high leverage with
// small take-profits first, de-escalating as the cumulative return grows, with
// drawdown caps on the final ride-it-out levels.
func DefaultRollLadder() RollConfig {
	return RollConfig{Levels: []RollLevel{
		{Leverage: 25, TakeProfit: 0.04},                 // 4%     104%
		{Leverage: 20, TakeProfit: 0.05},                 // 5%     109.2%
		{Leverage: 20, TakeProfit: 0.05},                 // 5%     114.7%
		{Leverage: 15, TakeProfit: 0.067},                // 6.7%   122.3%
		{Leverage: 10, TakeProfit: 0.1},                  // 10%    134.5%
		{Leverage: 5, TakeProfit: 0.2},                   // 20%    161.4%
		{Leverage: 3, TakeProfit: 0.33},                  // 33%    215.3%
		{Leverage: 2, TakeProfit: 0.5, MaxDrawdown: 0.6}, // 50%    322.9%
		{Leverage: 1, TakeProfit: 1, MaxDrawdown: 0.2},   // 100%   645.7%
	}}
}

// Validate checks that every ladder level is within sensible bounds. It
// returns the first encountered error so the caller can surface a clear
// configuration problem before the run starts. An empty ladder is valid: the
// strategy simply idles holding its capital.
func (c *RollConfig) Validate() error {
	for i, lv := range c.Levels {
		if lv.Leverage < 1 {
			return fmt.Errorf("level %d: leverage (%v) must be >= 1", i, lv.Leverage)
		}
		if lv.TakeProfit <= 0 {
			return fmt.Errorf("level %d: take profit (%v) must be positive", i, lv.TakeProfit)
		}
		if lv.MaxDrawdown < 0 || lv.MaxDrawdown >= 1 {
			return fmt.Errorf("level %d: max drawdown (%v) must be in [0, 1)", i, lv.MaxDrawdown)
		}
	}
	return nil
}

// GeoConfig holds the tunables of a GeoStrategy. With the other parameters
// fixed, runs with equal ratio * leverage / (1 + leverage*makerFee) carry the
// same return and risk profile.
type GeoConfig struct {
	// Leverage applied to every opened position.
	Leverage float64
	// Interval is the minimum time between two opens.
	Interval time.Duration
	// Ratio of current capital committed per open.
	Ratio float64
	// Supply is the floor the capital is topped up to before an open, drawing
	// from the private stake and then the shared pool.
	Supply float64
	// StopLossRatio places the stop at (1 -/+ ratio) * close.
	StopLossRatio float64
	// TakeProfitRatio closes a held position once price has moved this far
	// past the entry and the interval has elapsed.
	TakeProfitRatio float64
}

// Validate checks the geo parameters, returning the first violation.
func (c *GeoConfig) Validate() error {
	if c.Leverage < 1 {
		return fmt.Errorf("Leverage (%v) must be >= 1", c.Leverage)
	}
	if c.Interval <= 0 {
		return errors.New("Interval must be positive")
	}
	if c.Ratio <= 0 || c.Ratio > 1 {
		return fmt.Errorf("Ratio (%v) must be in (0, 1]", c.Ratio)
	}
	if c.Supply <= 0 {
		return fmt.Errorf("Supply (%v) must be positive", c.Supply)
	}
	if c.StopLossRatio <= 0 || c.StopLossRatio >= 1 {
		return fmt.Errorf("StopLossRatio (%v) must be in (0, 1)", c.StopLossRatio)
	}
	if c.TakeProfitRatio <= 0 {
		return fmt.Errorf("TakeProfitRatio (%v) must be positive", c.TakeProfitRatio)
	}
	return nil
}
