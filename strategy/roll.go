package strategy

import (
	"fmt"

	"github.com/evdnx/gobt/config"
	"github.com/evdnx/gobt/contract"
	"github.com/evdnx/gobt/logger"
	"github.com/evdnx/gobt/metrics"
	"github.com/evdnx/gobt/types"
)

// RollStatus is the lifecycle state of a RollStrategy. Terminal states are
// sticky: once reached, Update becomes a no-op.
type RollStatus int

const (
	RollProcessing RollStatus = iota
	RollSucceeded
	RollFailed
	RollAborted
)

func (s RollStatus) String() string {
	switch s {
	case RollProcessing:
		return "processing"
	case RollSucceeded:
		return "succeeded"
	case RollFailed:
		return "failed"
	case RollAborted:
		return "aborted"
	}
	return "unknown"
}

// RollStrategy escalates through a ladder of leverage levels, committing 100%
// of its realized capital to each new level. A liquidation at any level fails
// the run; a drawdown exit on a capped level succeeds it.
type RollStrategy struct {
	isBull   bool
	capital  float64
	cfg      config.RollConfig
	contract *contract.Contract
	level    int
	log      logger.Logger

	maxValue  float64
	bestPrice float64
	status    RollStatus
}

// NewRollStrategy validates the ladder and sets up a fresh run.
func NewRollStrategy(isBull bool, capital float64, cfg config.RollConfig, log logger.Logger) (*RollStrategy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("roll: %w", err)
	}
	if capital <= 0 {
		return nil, fmt.Errorf("roll: capital (%v) must be positive", capital)
	}
	if log == nil {
		log = logger.Nop()
	}
	return &RollStrategy{
		isBull:  isBull,
		capital: capital,
		cfg:     cfg,
		log:     log,
		status:  RollProcessing,
	}, nil
}

func (s *RollStrategy) Update(c types.Candle) error {
	if s.status != RollProcessing {
		return nil
	}
	if ct := s.contract; ct != nil {
		s.contract = nil
		lv := s.cfg.Levels[s.level-1]
		if r, ok := ct.Liquidate(c.Adverse(s.isBull)); ok {
			s.capital += r
			s.status = RollFailed
			metrics.Liquidations.WithLabelValues("roll").Inc()
			s.log.Info("roll_failed",
				logger.Time("time", c.CloseTime),
				logger.Float64("price", c.Close),
				logger.Int("level", s.level),
				logger.Float64("value", s.Value()),
			)
			return nil
		}
		if (s.isBull && c.Close > ct.EntryPrice*(1+lv.TakeProfit)) ||
			(!s.isBull && c.Close < ct.EntryPrice*(1-lv.TakeProfit)) {
			// Take-profit realizes the capital but the run stays active; the
			// next ladder level opens from the realized amount.
			s.capital += ct.Close(c.Close)
			s.log.Info("roll_take_profit",
				logger.Time("time", c.CloseTime),
				logger.Float64("price", c.Close),
				logger.Int("level", s.level),
				logger.Float64("capital", s.capital),
			)
		} else {
			valueHigh := ct.Close(c.High)
			valueLow := ct.Close(c.Low)
			if s.maxValue < valueHigh {
				s.maxValue = valueHigh
				s.bestPrice = c.High
			}
			if s.maxValue < valueLow {
				s.maxValue = valueLow
				s.bestPrice = c.Low
			}
			if lv.MaxDrawdown > 0 && ct.Close(c.Close) < s.maxValue*(1-lv.MaxDrawdown) {
				s.capital += ct.Close(c.Close)
				s.status = RollSucceeded
				s.log.Info("roll_succeeded",
					logger.Time("time", c.CloseTime),
					logger.Float64("price", c.Close),
					logger.Int("level", s.level),
					logger.Float64("value", s.Value()),
				)
				return nil
			}
			s.contract = ct
		}
	}
	if s.contract != nil {
		return nil
	}
	if s.level >= len(s.cfg.Levels) {
		return nil
	}
	if s.capital <= 0 {
		// Nothing left to fund the next level with.
		s.status = RollFailed
		s.log.Warn("roll_capital_exhausted",
			logger.Time("time", c.CloseTime),
			logger.Int("level", s.level),
		)
		return nil
	}
	leverage := s.cfg.Levels[s.level].Leverage
	// The stop sits a ~1% price margin inside the theoretical liquidation
	// level so the protective exit always fires before the penalized one.
	var stopLoss float64
	if s.isBull {
		stopLoss = c.Close*(1-0.99/leverage) + c.Close*contract.MaintenanceRate
	} else {
		stopLoss = c.Close*(1+0.99/leverage) - c.Close*contract.MaintenanceRate
	}
	ct, err := contract.Open(s.isBull, c.Close, s.capital, leverage, c.CloseTime, &stopLoss)
	if err != nil {
		return fmt.Errorf("roll: open level %d: %w", s.level, err)
	}
	s.capital = 0
	s.contract = ct
	s.level++
	metrics.ContractsOpened.WithLabelValues("roll").Inc()
	s.log.Info("roll_open",
		logger.Time("time", c.CloseTime),
		logger.Float64("price", c.Close),
		logger.Int("level", s.level),
		logger.Float64("leverage", leverage),
		logger.Float64("value", s.Value()),
	)
	return nil
}

// Close force-realizes any open contract at price and aborts the run.
func (s *RollStrategy) Close(price float64) float64 {
	if ct := s.contract; ct != nil {
		s.contract = nil
		s.capital += ct.Close(price)
	}
	s.status = RollAborted
	return s.capital
}

func (s *RollStrategy) Value() float64 {
	if s.contract != nil {
		return s.capital + s.contract.Margin
	}
	return s.capital
}

func (s *RollStrategy) Done() bool { return s.status != RollProcessing }

// Status returns the current lifecycle state.
func (s *RollStrategy) Status() RollStatus { return s.status }

// Level is the number of ladder levels entered so far.
func (s *RollStrategy) Level() int { return s.level }

// MaxValue is the best mark-to-market value seen while holding.
func (s *RollStrategy) MaxValue() float64 { return s.maxValue }

// BestPrice is the intrabar price at which MaxValue was observed.
func (s *RollStrategy) BestPrice() float64 { return s.bestPrice }
