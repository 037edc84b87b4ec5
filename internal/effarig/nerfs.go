package effarig

import (
	"math"
	"math/bits"
	"time"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/upgrade"
)

// log10MaxValue is log10 of the largest float64.
const log10MaxValue = 308.25471555991675

var eternityCap = bignum.Pow10(50)

var (
	glyphLevelCaps = upgrade.NewStageTable(100, 1500, 2000, 2000)
	nerfSaturation = upgrade.NewStageTable[float64](1500, 29.29, 25, 25)
	ic6MatterBase  = upgrade.NewStageTable[float64](1, 1.03, 1.1, 1.4)
	ic8Base        = upgrade.NewStageTable(
		bignum.FromFloat(0.1),
		bignum.FromFloat(2.11e12).Reciprocal(),
		bignum.New(5.5, 555).Reciprocal(),
		bignum.New(2, 1111).Reciprocal(),
	)
	ic8DiffScale = upgrade.NewStageTable[float64](1, 1, 1, 1.5)

	matterGainElapsed = upgrade.ElapsedClamp{Min: time.Millisecond, Max: 6 * time.Hour}
)

// generatedTypes are glyph types produced by reality resets rather than crafted.
var generatedTypes = map[string]bool{
	"power":       true,
	"infinity":    true,
	"replication": true,
	"time":        true,
	"dilation":    true,
	"effarig":     true,
}

// GlyphLevelCap is the highest glyph level usable in the current stage.
func (c *Celestial) GlyphLevelCap() int {
	return glyphLevelCaps.At(c.Stage())
}

// NerfFactor maps a resource amount into [0, 3) with a stage-dependent half-saturation point.
func (c *Celestial) NerfFactor(power bignum.Value) float64 {
	curve := upgrade.NerfCurve{Ceiling: 3, HalfSaturation: nerfSaturation.At(c.Stage())}
	return curve.Apply(power.PLog10())
}

// TickDilation is the exponent applied to tickspeed inside the run.
func (c *Celestial) TickDilation(l upgrade.Live) float64 {
	return 0.7 + 0.1*c.NerfFactor(l.Amount(domain.CurrencyTimeShards))
}

// MultDilation is the exponent applied to dimension multipliers inside the run.
func (c *Celestial) MultDilation(l upgrade.Live) float64 {
	return 0.25 + 0.25*c.NerfFactor(l.Amount(domain.CurrencyInfinityPower))
}

// Tickspeed is the dilated tickspeed derived from the base tickspeed multiplier.
func (c *Celestial) Tickspeed(l upgrade.Live) bignum.Value {
	base := 3 + l.Multiplier(live.MultTickspeedBase).Reciprocal().Log10()
	if math.IsNaN(base) || base < 0 {
		base = 0
	}
	return bignum.Pow10(math.Pow(base, c.TickDilation(l))).Reciprocal()
}

// Multiplier dilates a dimension multiplier.
func (c *Celestial) Multiplier(mult bignum.Value, l upgrade.Live) bignum.Value {
	return bignum.Pow10(math.Pow(mult.PLog10(), c.MultDilation(l)))
}

// BonusReplicantiGalaxies is zero until the replicanti cap is raised past the float64 limit.
func (c *Celestial) BonusReplicantiGalaxies(l upgrade.Live) int {
	n := math.Floor(l.Multiplier(live.MultReplicantiCap).PLog10()/log10MaxValue - 1)
	if n < 0 {
		return 0
	}
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(n)
}

// GlyphEffectAmount counts distinct effects across equipped glyphs, tallying
// generated and crafted types separately. Companion glyphs do not count.
func GlyphEffectAmount(l upgrade.Live) int {
	var generated, other uint64
	for _, g := range l.ActiveGlyphs() {
		switch {
		case g.Type == "companion":
		case generatedTypes[g.Type]:
			generated |= g.Effects
		default:
			other |= g.Effects
		}
	}
	return bits.OnesCount64(generated) + bits.OnesCount64(other)
}

// ShardsGained is the relic shard yield of a reality. It is zero until Teresa
// grants the Effarig unlock.
func (c *Celestial) ShardsGained(l upgrade.Live) bignum.Value {
	if !l.Flag(live.FlagTeresaEffarig) {
		return bignum.Zero
	}
	ep := l.Amount(domain.CurrencyEternityPoints).Add(bignum.One).Log10()
	return bignum.FromFloat(ep / 7500).
		Pow(float64(GlyphEffectAmount(l))).
		Mul(l.Multiplier(live.MultEffarigAlchemy))
}

// MaxRarityBoost is the glyph rarity bonus granted by relic shards.
func MaxRarityBoost(l upgrade.Live) float64 {
	return 5 * math.Log10(l.Amount(domain.CurrencyRelicShards).Add(bignum.Ten).Log10())
}
