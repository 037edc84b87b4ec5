package effarig

import (
	"fmt"
	"math"

	"github.com/osse101/prestige/internal/bignum"
	"github.com/osse101/prestige/internal/domain"
	"github.com/osse101/prestige/internal/live"
	"github.com/osse101/prestige/internal/upgrade"
)

// Challenge names an infinity challenge whose effect Effarig's Reality reuses.
type Challenge string

const (
	IC3           Challenge = "IC3"
	IC4           Challenge = "IC4"
	IC6           Challenge = "IC6"
	IC6MatterGain Challenge = "IC6MatterGain"
	IC7           Challenge = "IC7"
	IC8           Challenge = "IC8"
)

// Challenges lists every supported challenge effect.
var Challenges = []Challenge{IC3, IC4, IC6, IC6MatterGain, IC7, IC8}

// ChallengeEffect evaluates one challenge effect against live state.
func (c *Celestial) ChallengeEffect(ic Challenge, l upgrade.Live) (bignum.Value, error) {
	switch ic {
	case IC3:
		base := 1.05 + l.Scalar(live.ScalarGalaxies)*0.005
		return bignum.FromFloat(base).Pow(l.Scalar(live.ScalarTotalTickBought)), nil
	case IC4:
		return l.Multiplier(live.MultIC4), nil
	case IC6:
		return l.Amount(domain.CurrencyMatter).ClampMin(bignum.One), nil
	case IC6MatterGain:
		elapsed := matterGainElapsed.Millis(l.Now(), l.LastUpdate())
		return upgrade.PowElapsed(ic6MatterBase.At(c.Stage()), elapsed), nil
	case IC7:
		return l.Multiplier(live.MultIC7), nil
	case IC8:
		return c.ic8(l), nil
	}
	return bignum.Zero, fmt.Errorf("%w: challenge %q", domain.ErrInvalidInput, ic)
}

// ic8 decays with time spent since the last purchase. Elapsed time is not clamped.
func (c *Celestial) ic8(l upgrade.Live) bignum.Value {
	stage := c.Stage()
	realTime := l.Scalar(live.ScalarInfinityRealTime)
	diff := math.Pow(realTime, 1.2) - l.Scalar(live.ScalarInfinityLastBuyTime)
	return ic8Base.At(stage).Pow(math.Max(0, diff*ic8DiffScale.At(stage)))
}
