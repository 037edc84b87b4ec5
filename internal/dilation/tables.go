// Package dilation implements the time dilation upgrade tree: rebuyables bought
// with dilated time and one-time upgrades stored as a bitmask.
package dilation

import (
	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/upgrade"
)

// Name is the group name used in events, metrics and errors.
const Name = "dilation"

// Currency is what every dilation upgrade costs.
const Currency = domain.CurrencyDilatedTime

// Rebuyable ids.
const (
	DTGain              = 1
	GalaxyThreshold     = 2
	TachyonGain         = 3
	TachyonBaseExponent = 4
	DTGainPelle         = 14
	GalaxyMultiplier    = 15
	TickspeedPower      = 16
)

// One-time upgrade ids, also bit positions in DilationProgress.Upgrades.
const (
	DoubleGalaxies       = 5
	TDMultReplicanti     = 6
	NDMultDT             = 7
	IPMultDT             = 8
	TimeStudySplit       = 9
	DilationPenalty      = 10
	DTToBoosts           = 11
	ReplicantiToDT       = 12
	TTGenerator          = 13
	GalaxyThresholdPelle = 17
	FlatDilationMult     = 18
)

// galaxyThresholdCap is the purchase count at which the threshold upgrade stops.
const galaxyThresholdCap = 38

// RebuyableConfig is one row of the rebuyable table.
type RebuyableConfig struct {
	ID          int
	Key         string
	InitialCost bignum.Value
	Increment   bignum.Value
	PurchaseCap int
	PelleOnly   bool
	Description string
}

// UpgradeConfig is one row of the one-time upgrade table.
type UpgradeConfig struct {
	ID          int
	Key         string
	Cost        bignum.Value
	PelleOnly   bool
	Description string
}

// Table is the full dilation content.
type Table struct {
	Rebuyables []RebuyableConfig
	Upgrades   []UpgradeConfig
}

func f(v float64) bignum.Value { return bignum.FromFloat(v) }

// DefaultTable returns the built-in content. Callers own the returned slices.
func DefaultTable() Table {
	return Table{
		Rebuyables: []RebuyableConfig{
			{ID: DTGain, Key: "dtGain", InitialCost: f(1e4), Increment: f(10),
				Description: "Double Dilated Time gain"},
			{ID: GalaxyThreshold, Key: "galaxyThreshold", InitialCost: f(1e6), Increment: f(100),
				PurchaseCap: galaxyThresholdCap,
				Description: "Reset Dilated Time and Tachyon Galaxies, but lower their threshold"},
			{ID: TachyonGain, Key: "tachyonGain", InitialCost: f(1e7), Increment: f(20),
				Description: "Triple the amount of Tachyon Particles gained"},
			{ID: TachyonBaseExponent, Key: "tachyonBaseExponent", InitialCost: f(1e10), Increment: f(150),
				Description: "Increase the Tachyon Particle formula exponent"},
			{ID: DTGainPelle, Key: "dtGainPelle", InitialCost: f(1e14), Increment: f(100), PelleOnly: true,
				Description: "Multiply Dilated Time gain by 5"},
			{ID: GalaxyMultiplier, Key: "galaxyMultiplier", InitialCost: f(1e15), Increment: f(1000), PelleOnly: true,
				Description: "Multiply Tachyon Galaxies gained"},
			{ID: TickspeedPower, Key: "tickspeedPower", InitialCost: f(1e16), Increment: f(1e4), PelleOnly: true,
				Description: "Gain a power to Tickspeed"},
		},
		Upgrades: []UpgradeConfig{
			{ID: DoubleGalaxies, Key: "doubleGalaxies", Cost: f(5e6),
				Description: "Gain 20x as many Tachyon Galaxies, up to 500 base Galaxies"},
			{ID: TDMultReplicanti, Key: "tdMultReplicanti", Cost: f(1e9),
				Description: "Time Dimensions are affected by Replicanti multiplier ^0.1"},
			{ID: NDMultDT, Key: "ndMultDT", Cost: f(5e7),
				Description: "Antimatter Dimension multiplier based on Dilated Time"},
			{ID: IPMultDT, Key: "ipMultDT", Cost: f(2e12),
				Description: "Infinity Point multiplier based on Dilated Time"},
			{ID: TimeStudySplit, Key: "timeStudySplit", Cost: f(1e10),
				Description: "Buy all three Time Study paths from the Dimension Split"},
			{ID: DilationPenalty, Key: "dilationPenalty", Cost: f(1e11),
				Description: "Reduce the Dilation penalty"},
			{ID: DTToBoosts, Key: "dtToBoosts", Cost: bignum.Pow10(100),
				Description: "Dilated Time boosts the Dimension Boost multiplier"},
			{ID: ReplicantiToDT, Key: "replicantiToDT", Cost: bignum.Pow10(50),
				Description: "Replicanti and Dilated Time multiply each other's gain"},
			{ID: TTGenerator, Key: "ttGenerator", Cost: f(1e15),
				Description: "Generate Time Theorems based on Tachyon Particles"},
			{ID: GalaxyThresholdPelle, Key: "galaxyThresholdPelle", Cost: bignum.Pow10(45), PelleOnly: true,
				Description: "Apply a 10th root to the Tachyon Galaxy threshold"},
			{ID: FlatDilationMult, Key: "flatDilationMult", Cost: bignum.Pow10(55), PelleOnly: true,
				Description: "Gain more Dilated Time based on current Eternity Points"},
		},
	}
}

// resetMask covers the one-time upgrades cleared by Reset. Pelle-only upgrades survive.
var resetMask = upgrade.Mask(
	DoubleGalaxies, TDMultReplicanti, NDMultDT, IPMultDT, TimeStudySplit,
	DilationPenalty, DTToBoosts, ReplicantiToDT, TTGenerator,
)
