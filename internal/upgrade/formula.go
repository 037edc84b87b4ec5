package upgrade

import (
	"math"
	"time"

	"github.com/osse101/prestige/internal/bignum"
)

// NerfCurve is the saturating map x -> Ceiling × (1 − c/(c + sqrt(x))).
// It is 0 at 0, strictly increasing, and approaches Ceiling without reaching it.
type NerfCurve struct {
	Ceiling        float64
	HalfSaturation float64
}

// Apply evaluates the curve. Negative and NaN inputs read as 0.
func (n NerfCurve) Apply(x float64) float64 {
	if math.IsNaN(x) || x <= 0 {
		return 0
	}
	c := n.HalfSaturation
	v := n.Ceiling * (1 - c/(c+math.Sqrt(x)))
	if v >= n.Ceiling {
		// float64 rounds huge inputs onto the asymptote
		return math.Nextafter(n.Ceiling, 0)
	}
	return v
}

// Softcap raises the part of a value above Threshold to Exponent.
type Softcap struct {
	Threshold float64
	Exponent  float64
}

// Apply returns x unchanged below the threshold, otherwise T × (x/T)^Exponent.
func (s Softcap) Apply(x float64) float64 {
	if x <= s.Threshold || s.Threshold <= 0 {
		return x
	}
	return s.Threshold * math.Pow(x/s.Threshold, s.Exponent)
}

// ApplySoftcaps applies caps in order. Each cap sees the output of the previous one.
func ApplySoftcaps(x float64, caps ...Softcap) float64 {
	for _, c := range caps {
		x = c.Apply(x)
	}
	return x
}

// ElapsedClamp bounds wall-clock time since the last update before it is used
// as an exponent. A zero Max disables the upper bound.
type ElapsedClamp struct {
	Min time.Duration
	Max time.Duration
}

// Millis returns now − last in milliseconds, clamped into [Min, Max].
func (c ElapsedClamp) Millis(now, last time.Time) float64 {
	d := now.Sub(last)
	if d < c.Min {
		d = c.Min
	}
	if c.Max > 0 && d > c.Max {
		d = c.Max
	}
	return float64(d) / float64(time.Millisecond)
}

// ElapsedMillis returns now − last in milliseconds with no clamping; it may be negative.
func ElapsedMillis(now, last time.Time) float64 {
	return float64(now.Sub(last)) / float64(time.Millisecond)
}

// PowElapsed returns base^elapsed for the effects that scale with wall-clock time.
func PowElapsed(base float64, elapsedMillis float64) bignum.Value {
	return bignum.FromFloat(base).Pow(elapsedMillis)
}
