// Package strategy contains the state machines that open, manage and close
// leveraged contracts as candles arrive. Each strategy instance owns at most
// one live contract and its own capital ledger.
package strategy

import "github.com/evdnx/gobt/types"

// Strategy consumes one candle at a time. Update returns an error only for
// unrecoverable configuration problems (e.g. an exhausted shared pool); the
// driver aborts that instance's run on error.
type Strategy interface {
	Update(c types.Candle) error
	// Close force-realizes any open contract at price and returns the capital.
	Close(price float64) float64
	// Value is the capital plus the margin of any open contract.
	Value() float64
	// Done reports whether the strategy has reached a terminal state and
	// further updates would be no-ops.
	Done() bool
}
