package upgrade

import (
	"time"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

// fakeLedger is an in-memory Ledger that records debits.
type fakeLedger struct {
	balances map[domain.Currency]bignum.Value
	debits   int
}

func newFakeLedger() *fakeLedger {
	return &fakeLedger{balances: make(map[domain.Currency]bignum.Value)}
}

func (l *fakeLedger) Balance(c domain.Currency) bignum.Value { return l.balances[c] }

func (l *fakeLedger) Debit(c domain.Currency, amount bignum.Value) bool {
	if l.balances[c].Lt(amount) {
		return false
	}
	l.balances[c] = l.balances[c].Sub(amount)
	l.debits++
	return true
}

func (l *fakeLedger) set(c domain.Currency, f float64) {
	l.balances[c] = bignum.FromFloat(f)
}

// fakeLive is a Live backed by plain maps.
type fakeLive struct {
	flags   map[string]bool
	scalars map[string]float64
	amounts map[domain.Currency]bignum.Value
	now     time.Time
	last    time.Time
}

func newFakeLive() *fakeLive {
	return &fakeLive{
		flags:   make(map[string]bool),
		scalars: make(map[string]float64),
		amounts: make(map[domain.Currency]bignum.Value),
	}
}

func (f *fakeLive) Amount(c domain.Currency) bignum.Value { return f.amounts[c] }
func (f *fakeLive) Multiplier(string) bignum.Value        { return bignum.One }
func (f *fakeLive) Scalar(key string) float64             { return f.scalars[key] }
func (f *fakeLive) Flag(key string) bool                  { return f.flags[key] }
func (f *fakeLive) ActiveGlyphs() []domain.Glyph          { return nil }
func (f *fakeLive) Now() time.Time                        { return f.now }
func (f *fakeLive) LastUpdate() time.Time                 { return f.last }
