// Package ledger implements the currency store purchases are charged against.
package ledger

import (
	"fmt"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

// Wallet is a Ledger over the balances map of a player-progress record.
// It is not safe for concurrent use; callers hold the player lock.
type Wallet struct {
	balances map[domain.Currency]bignum.Value
}

// NewWallet wraps balances, allocating the map if it is nil.
func NewWallet(p *domain.Progress) *Wallet {
	if p.Wallet == nil {
		p.Wallet = make(map[domain.Currency]bignum.Value)
	}
	return &Wallet{balances: p.Wallet}
}

// Balance returns the stored amount; unknown currencies hold zero.
func (w *Wallet) Balance(currency domain.Currency) bignum.Value {
	return w.balances[currency]
}

// Debit subtracts amount when the balance covers it. It either commits the whole
// amount or changes nothing.
func (w *Wallet) Debit(currency domain.Currency, amount bignum.Value) bool {
	if amount.Sign() < 0 {
		return false
	}
	balance := w.balances[currency]
	if balance.Lt(amount) {
		return false
	}
	w.balances[currency] = bignum.MaxOf(balance.Sub(amount), bignum.Zero)
	return true
}

// Credit adds a non-negative amount.
func (w *Wallet) Credit(currency domain.Currency, amount bignum.Value) error {
	if !currency.Valid() {
		return fmt.Errorf("%w: %s", domain.ErrUnknownCurrency, currency)
	}
	if amount.Sign() < 0 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidAmount, amount)
	}
	w.balances[currency] = w.balances[currency].Add(amount)
	return nil
}

// Zero sets a balance back to nothing.
func (w *Wallet) Zero(currency domain.Currency) {
	delete(w.balances, currency)
}

// Snapshot returns a copy of every non-zero balance.
func (w *Wallet) Snapshot() map[domain.Currency]bignum.Value {
	out := make(map[domain.Currency]bignum.Value, len(w.balances))
	for c, v := range w.balances {
		if !v.IsZero() {
			out[c] = v
		}
	}
	return out
}
