// Package contract models a single leveraged derivative position: margin,
// liquidation price and the fee schedule. It is pure computation; opening and
// closing are driven by the strategies.
package contract

import (
	"errors"
	"fmt"
	"time"
)

// Fee rates (maker 0.02%, taker 0.05%, varies with VIP tier).
const (
	MakerFeeRate = 0.0002
	TakerFeeRate = 0.0005
)

// MaintenanceRate is the maintenance-margin buffer applied to the entry price
// when deriving the liquidation price (0.4% of initial notional value).
const MaintenanceRate = 0.004

// LiquidationPenalty is the haircut applied to the cover value on a forced
// liquidation. Stop-loss exits are not penalized.
const LiquidationPenalty = 0.15

var (
	ErrInvalidLeverage = errors.New("contract: leverage must be >= 1")
	ErrInvalidPrice    = errors.New("contract: entry price must be positive")
	ErrInvalidBalance  = errors.New("contract: offered balance must be positive")
)

// Contract is one open leveraged position. It is never mutated after Open;
// closing realizes a value and the contract is discarded by its owner.
type Contract struct {
	IsBull     bool
	Margin     float64
	EntryPrice float64
	OpenTime   time.Time
	// LiqPrice is where forced closure occurs. Below entry for longs, above
	// for shorts.
	LiqPrice float64
	// Amount is the contract quantity; Amount * price = notional value.
	Amount   float64
	Leverage float64
	// StopLoss must sit on the reachable side of LiqPrice; an unreachable one
	// is dropped at Open.
	StopLoss *float64
}

// Open derives a position from gross offered funds. The fee budget for the
// opening leg is netted out of the offered balance:
//
//	margin + margin*leverage*MakerFeeRate = offered
//	margin = offered / (1 + leverage*MakerFeeRate)
//
// A stop-loss on the wrong side of the liquidation price could never fire
// first, so it is discarded; callers can detect that via StopLoss == nil.
func Open(isBull bool, entryPrice, offered, leverage float64, openTime time.Time, stopLoss *float64) (*Contract, error) {
	if leverage < 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLeverage, leverage)
	}
	if entryPrice <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidPrice, entryPrice)
	}
	if offered <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidBalance, offered)
	}
	margin := offered / (1 + leverage*MakerFeeRate)
	var liqPrice float64
	if isBull {
		liqPrice = entryPrice*(1-1/leverage) + entryPrice*MaintenanceRate
	} else {
		liqPrice = entryPrice*(1+1/leverage) - entryPrice*MaintenanceRate
	}
	if stopLoss != nil {
		if sl := *stopLoss; (isBull && sl < liqPrice) || (!isBull && sl > liqPrice) {
			stopLoss = nil
		}
	}
	return &Contract{
		IsBull:     isBull,
		Margin:     margin,
		EntryPrice: entryPrice,
		OpenTime:   openTime,
		LiqPrice:   liqPrice,
		Amount:     margin * leverage / entryPrice,
		Leverage:   leverage,
		StopLoss:   stopLoss,
	}, nil
}

// Liquidate checks the stop-loss first (the intended protective exit), then
// the liquidation price. A forced liquidation carries the 15% penalty, so
// positions should be sized to exit on the stop-loss instead. The second
// return is false when neither level has been crossed.
func (c *Contract) Liquidate(price float64) (float64, bool) {
	if c.StopLoss != nil {
		if sl := *c.StopLoss; (c.IsBull && price < sl) || (!c.IsBull && price > sl) {
			return c.cover(sl), true
		}
	}
	if (c.IsBull && price < c.LiqPrice) || (!c.IsBull && price > c.LiqPrice) {
		return c.cover(c.LiqPrice) * (1 - LiquidationPenalty), true
	}
	return 0, false
}

// Close realizes the position at price, honoring a triggered stop-loss or
// liquidation if price has crossed one.
func (c *Contract) Close(price float64) float64 {
	if r, ok := c.Liquidate(price); ok {
		return r
	}
	return c.cover(price)
}

// cover is the mark-to-market close value. Only the closing leg is charged a
// fee here; the opening fee was netted out of the margin in Open.
func (c *Contract) cover(price float64) float64 {
	if c.IsBull {
		return c.Amount*(price-c.EntryPrice) + c.Margin - c.Amount*price*MakerFeeRate
	}
	return c.Amount*(c.EntryPrice-price) + c.Margin - c.Amount*price*MakerFeeRate
}
