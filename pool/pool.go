// Package pool provides the shared capital balance that concurrently running
// strategy instances draw from. The lock is held only for a balance
// check-and-decrement, never across candle processing.
package pool

import (
	"errors"
	"fmt"
	"sync"

	"github.com/evdnx/gobt/metrics"
)

// ErrInsufficient is returned when a withdrawal exceeds the pool balance.
// For a backtest this is a configuration error, not a recoverable condition.
var ErrInsufficient = errors.New("pool: insufficient balance")

// Pool is a mutex-guarded capital balance shared by strategy instances. It is
// passed as an explicit handle at construction, never a package global.
type Pool struct {
	mu      sync.Mutex
	balance float64
}

// New creates a pool with the given starting balance.
func New(balance float64) *Pool {
	metrics.PoolBalance.Set(balance)
	return &Pool{balance: balance}
}

// TryWithdraw atomically checks the balance and decrements it by amount.
func (p *Pool) TryWithdraw(amount float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.balance < amount {
		return fmt.Errorf("%w: have %v, need %v", ErrInsufficient, p.balance, amount)
	}
	p.balance -= amount
	metrics.PoolWithdrawals.Inc()
	metrics.PoolBalance.Set(p.balance)
	return nil
}

// Deposit adds amount back to the pool.
func (p *Pool) Deposit(amount float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balance += amount
	metrics.PoolBalance.Set(p.balance)
}

// Balance returns the current balance.
func (p *Pool) Balance() float64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.balance
}
