package strategy

import (
	"errors"
	"fmt"
	"time"

	"github.com/evdnx/gobt/config"
	"github.com/evdnx/gobt/contract"
	"github.com/evdnx/gobt/logger"
	"github.com/evdnx/gobt/metrics"
	"github.com/evdnx/gobt/pool"
	"github.com/evdnx/gobt/types"
)

// GeoStrategy opens a fixed fraction of its capital at a fixed cadence,
// topping the capital up to a configured floor from a private stake buffer and
// then the shared pool. Positions are held until stop-loss, liquidation, or a
// take-profit once the reopen interval has elapsed.
type GeoStrategy struct {
	isBull bool
	cfg    config.GeoConfig
	pool   *pool.Pool
	log    logger.Logger

	position *contract.Contract
	capital  float64
	// stake is the private buffer refilled from the shared pool.
	stake float64
	// cost is the cumulative amount drawn from the shared pool.
	cost      float64
	openCount int64
	lastTime  time.Time
	failed    bool
}

// NewGeoStrategy validates the parameters and binds the shared pool handle.
func NewGeoStrategy(isBull bool, cfg config.GeoConfig, p *pool.Pool, log logger.Logger) (*GeoStrategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("geo: %w", err)
	}
	if p == nil {
		return nil, errors.New("geo: shared pool is required")
	}
	if log == nil {
		log = logger.Nop()
	}
	if cfg.TakeProfitRatio < contract.MakerFeeRate*2 {
		log.Warn("geo_take_profit_below_fees",
			logger.Float64("take_profit_ratio", cfg.TakeProfitRatio),
			logger.Float64("min_profitable", contract.MakerFeeRate*2),
		)
	}
	return &GeoStrategy{
		isBull: isBull,
		cfg:    cfg,
		pool:   p,
		log:    log,
	}, nil
}

func (g *GeoStrategy) Update(c types.Candle) error {
	if g.failed {
		return nil
	}
	if ct := g.position; ct != nil {
		g.position = nil
		if r, ok := ct.Liquidate(c.Adverse(g.isBull)); ok {
			g.capital += r
			metrics.Liquidations.WithLabelValues("geo").Inc()
			g.log.Info("geo_position_stopped",
				logger.Time("time", c.CloseTime),
				logger.Float64("price", c.Close),
				logger.Float64("realized", r),
			)
		} else if !ct.OpenTime.Add(g.cfg.Interval).After(c.CloseTime) &&
			((g.isBull && c.Close > ct.EntryPrice*(1+g.cfg.TakeProfitRatio)) ||
				(!g.isBull && c.Close < ct.EntryPrice*(1-g.cfg.TakeProfitRatio))) {
			// Past the interval and profitable enough; otherwise the position
			// is held even beyond the interval.
			g.capital += ct.Close(c.Close)
			g.log.Info("geo_take_profit",
				logger.Time("time", c.CloseTime),
				logger.Float64("price", c.Close),
				logger.Float64("capital", g.capital),
			)
		} else {
			g.position = ct
		}
	}
	if g.position != nil || g.lastTime.Add(g.cfg.Interval).After(c.CloseTime) {
		// Only open when flat and past the interval.
		return nil
	}
	if g.capital < g.cfg.Supply {
		cost := g.cfg.Supply - g.capital
		if g.stake < cost {
			supplement := cost - g.stake
			if err := g.pool.TryWithdraw(supplement); err != nil {
				g.failed = true
				g.log.Error("geo_pool_exhausted",
					logger.Time("time", c.CloseTime),
					logger.Float64("need", supplement),
					logger.Err(err),
				)
				return fmt.Errorf("geo top-up: %w", err)
			}
			g.stake = cost
			g.cost += supplement
			g.log.Info("geo_pool_draw",
				logger.Time("time", c.CloseTime),
				logger.Float64("amount", supplement),
				logger.Float64("total_cost", g.cost),
			)
		}
		g.stake -= cost
		g.capital = g.cfg.Supply
	}
	var stopLoss float64
	if g.isBull {
		stopLoss = (1 - g.cfg.StopLossRatio) * c.Close
	} else {
		stopLoss = (1 + g.cfg.StopLossRatio) * c.Close
	}
	ct, err := contract.Open(g.isBull, c.Close, g.capital*g.cfg.Ratio, g.cfg.Leverage, c.CloseTime, &stopLoss)
	if err != nil {
		g.failed = true
		return fmt.Errorf("geo: open: %w", err)
	}
	if ct.StopLoss == nil {
		g.log.Warn("geo_stop_loss_unreachable",
			logger.Float64("stop_loss", stopLoss),
			logger.Float64("liq_price", ct.LiqPrice),
		)
	}
	g.position = ct
	g.capital -= g.capital * g.cfg.Ratio
	g.lastTime = c.CloseTime
	g.openCount++
	metrics.ContractsOpened.WithLabelValues("geo").Inc()
	return nil
}

// Close realizes any open position into capital and returns the total value.
func (g *GeoStrategy) Close(price float64) float64 {
	if ct := g.position; ct != nil {
		g.position = nil
		g.capital += ct.Close(price)
	}
	return g.Value()
}

func (g *GeoStrategy) Value() float64 {
	v := g.capital + g.stake
	if g.position != nil {
		v += g.position.Margin
	}
	return v
}

func (g *GeoStrategy) Done() bool { return g.failed }

// Cost is the cumulative amount drawn from the shared pool.
func (g *GeoStrategy) Cost() float64 { return g.cost }

// OpenCount is the number of positions opened so far.
func (g *GeoStrategy) OpenCount() int64 { return g.openCount }
