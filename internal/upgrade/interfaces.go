package upgrade

import (
	"time"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

// Ledger is the currency store purchases are charged against.
// Debit must either commit the whole amount or change nothing.
type Ledger interface {
	Balance(currency domain.Currency) bignum.Value
	Debit(currency domain.Currency, amount bignum.Value) bool
}

// Live is the read-only view of game state that effect formulas consume.
// Implementations clamp malformed inputs: amounts and scalars never go below
// zero, and unknown multipliers read as one.
type Live interface {
	Amount(currency domain.Currency) bignum.Value
	Multiplier(key string) bignum.Value
	Scalar(key string) float64
	Flag(key string) bool
	ActiveGlyphs() []domain.Glyph
	Now() time.Time
	LastUpdate() time.Time
}
