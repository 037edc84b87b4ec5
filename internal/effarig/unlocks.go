// Package effarig implements the Effarig celestial: its unlock group, stage
// progression, run mode and the stage-scaled nerfs applied while running.
package effarig

import (
	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
)

// Name is the celestial name used for group names, events and metrics.
const Name = "effarig"

// Unlock ids are bit positions in EffarigProgress.UnlockBits.
const (
	UnlockAdjuster    = 0
	UnlockGlyphFilter = 1
	UnlockSetSaves    = 2
	UnlockRun         = 3
	UnlockInfinity    = 4
	UnlockEternity    = 5
	UnlockReality     = 6
)

// Currency is what every purchasable Effarig unlock costs.
const Currency = domain.CurrencyRelicShards

// UnlockConfig is one row of the static unlock table.
type UnlockConfig struct {
	ID          int
	Key         string
	Cost        bignum.Value
	GrantOnly   bool
	Description string
}

// DefaultUnlocks returns the built-in unlock table. Callers own the returned slice.
func DefaultUnlocks() []UnlockConfig {
	return []UnlockConfig{
		{ID: UnlockAdjuster, Key: "adjuster", Cost: bignum.FromFloat(1e7),
			Description: "Adjustable glyph level factor weights"},
		{ID: UnlockGlyphFilter, Key: "glyphFilter", Cost: bignum.FromFloat(2e8),
			Description: "Glyph filtering"},
		{ID: UnlockSetSaves, Key: "setSaves", Cost: bignum.FromFloat(3e9),
			Description: "Glyph preset saves"},
		{ID: UnlockRun, Key: "run", Cost: bignum.FromFloat(5e11),
			Description: "Enter Effarig's Reality"},
		{ID: UnlockInfinity, Key: "infinity", GrantOnly: true,
			Description: "Complete the Infinity layer of Effarig's Reality"},
		{ID: UnlockEternity, Key: "eternity", GrantOnly: true,
			Description: "Complete the Eternity layer of Effarig's Reality"},
		{ID: UnlockReality, Key: "reality", GrantOnly: true,
			Description: "Complete Effarig's Reality"},
	}
}
