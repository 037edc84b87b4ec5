package dilation

import (
	"math"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/upgrade"
)

var tachyonExponentCaps = []upgrade.Softcap{
	{Threshold: 15, Exponent: 0.5},
	{Threshold: 100, Exponent: 0.25},
}

var rebuyableEffects = map[int]func(count int, l upgrade.Live) bignum.Value{
	DTGain: func(count int, l upgrade.Live) bignum.Value {
		base := bignum.FromFloat(2).Mul(l.Multiplier(live.MultDTGainBonus))
		return base.Pow(float64(count))
	},
	GalaxyThreshold: galaxyThresholdEffect(galaxyThresholdCap),
	TachyonGain: func(count int, l upgrade.Live) bignum.Value {
		if l.Flag(live.FlagDoomed) {
			return bignum.One
		}
		return bignum.FromFloat(3).Pow(float64(count))
	},
	TachyonBaseExponent: func(count int, _ upgrade.Live) bignum.Value {
		return bignum.FromFloat(upgrade.ApplySoftcaps(0.75*float64(count), tachyonExponentCaps...))
	},
	DTGainPelle: func(count int, _ upgrade.Live) bignum.Value {
		return bignum.FromFloat(5).Pow(float64(count))
	},
	GalaxyMultiplier: func(count int, _ upgrade.Live) bignum.Value {
		return bignum.FromInt(int64(count) + 1)
	},
	TickspeedPower: func(count int, _ upgrade.Live) bignum.Value {
		return bignum.FromFloat(1 + 0.03*float64(count))
	},
}

// galaxyThresholdEffect drops to zero once limit purchases have been made.
// A limit of zero or less never drops.
func galaxyThresholdEffect(limit int) func(count int, l upgrade.Live) bignum.Value {
	return func(count int, _ upgrade.Live) bignum.Value {
		if limit > 0 && count >= limit {
			return bignum.Zero
		}
		return bignum.FromFloat(math.Pow(0.8, float64(count)))
	}
}

// ReplicantiDT is the two-way boost of the replicantiToDT upgrade.
type ReplicantiDT struct {
	Replicanti float64 `json:"replicanti"`
	DT         float64 `json:"dt"`
}

// ReplicantiDTBoost evaluates the replicantiToDT formula.
func ReplicantiDTBoost(l upgrade.Live) ReplicantiDT {
	dt := l.Amount(domain.CurrencyDilatedTime).Add(bignum.One).Log10()
	rep := l.Amount(domain.CurrencyReplicanti).Add(bignum.One).Log2()
	return ReplicantiDT{
		Replicanti: math.Pow(dt+1, 3),
		DT:         math.Pow(rep, 2.5),
	}
}

// upgradeEffect evaluates the formula of a one-time upgrade. Upgrades without a
// numeric effect report false.
func (c *Tree) upgradeEffect(id int, l upgrade.Live) (bignum.Value, bool) {
	dt := l.Amount(domain.CurrencyDilatedTime)
	switch id {
	case DoubleGalaxies:
		return bignum.FromFloat(20), true
	case TDMultReplicanti:
		return bignum.Pow10(l.Multiplier(live.MultReplicantiMult).PLog10() * 0.1), true
	case NDMultDT:
		return dt.Pow(308).ClampMin(bignum.One), true
	case IPMultDT:
		v := dt.Pow(1000).ClampMin(bignum.One)
		if c.cap != nil {
			if ceiling, ok := c.cap.EternityCap(); ok {
				v = v.ClampMax(ceiling)
			}
		}
		return v, true
	case DilationPenalty:
		return bignum.FromFloat(1.12), true
	case DTToBoosts:
		exp := 2.5
		if l.Flag(live.FlagDilationAlteration) {
			exp += l.Scalar(live.ScalarGlyphDilationPow)
		}
		return dt.Pow(exp), true
	case TTGenerator:
		return l.Amount(domain.CurrencyTachyonParticles).Div(bignum.FromFloat(20000)), true
	case GalaxyThresholdPelle:
		return bignum.FromFloat(0.1), true
	case FlatDilationMult:
		ep := l.Amount(domain.CurrencyEternityPoints).Log10()
		progress := math.Pow(math.Max(ep-1500, 0)/2500, 1.2)
		return bignum.FromFloat(1e9).Pow(math.Min(progress, 1)), true
	}
	return bignum.Zero, false
}
