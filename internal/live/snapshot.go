// Package live holds the read-only game-state view that effect formulas consume.
package live

import (
	"math"
	"time"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

// Balances is a source of currency amounts not supplied by the snapshot itself.
type Balances interface {
	Balance(currency domain.Currency) bignum.Value
}

// Snapshot is a point-in-time copy of the values the engine reads. Values are
// clamped on read: amounts and scalars never go negative, missing multipliers
// read as one, and negative multipliers read as zero.
type Snapshot struct {
	Amounts     map[domain.Currency]bignum.Value `json:"amounts,omitempty"`
	Multipliers map[string]bignum.Value          `json:"multipliers,omitempty"`
	Scalars     map[string]float64               `json:"scalars,omitempty"`
	Flags       map[string]bool                  `json:"flags,omitempty"`
	Glyphs      []domain.Glyph                   `json:"glyphs,omitempty"`
	Clock       time.Time                        `json:"now"`
	Last        time.Time                        `json:"last_update"`

	balances Balances
}

// WithBalances returns a copy that reads amounts missing from the snapshot from b.
func (s Snapshot) WithBalances(b Balances) *Snapshot {
	s.balances = b
	return &s
}

// Amount returns the currency amount, clamped at zero.
func (s *Snapshot) Amount(currency domain.Currency) bignum.Value {
	v, ok := s.Amounts[currency]
	if !ok && s.balances != nil {
		v = s.balances.Balance(currency)
	}
	if v.Sign() < 0 {
		return bignum.Zero
	}
	return v
}

// Multiplier returns the named multiplier. Missing keys read as one.
func (s *Snapshot) Multiplier(key string) bignum.Value {
	v, ok := s.Multipliers[key]
	if !ok {
		return bignum.One
	}
	if v.Sign() < 0 {
		return bignum.Zero
	}
	return v
}

// Scalar returns the named plain number. NaN and negatives read as zero and
// +Inf saturates at the largest float64.
func (s *Snapshot) Scalar(key string) float64 {
	v := s.Scalars[key]
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	}
	return v
}

// Flag returns the named switch. Missing keys read as false.
func (s *Snapshot) Flag(key string) bool { return s.Flags[key] }

// ActiveGlyphs returns the equipped glyphs.
func (s *Snapshot) ActiveGlyphs() []domain.Glyph { return s.Glyphs }

// Now returns the snapshot clock, or the wall clock when none was captured.
func (s *Snapshot) Now() time.Time {
	if s.Clock.IsZero() {
		return time.Now()
	}
	return s.Clock
}

// LastUpdate returns the last game tick time. A zero value reads as Now.
func (s *Snapshot) LastUpdate() time.Time {
	if s.Last.IsZero() {
		return s.Now()
	}
	return s.Last
}
