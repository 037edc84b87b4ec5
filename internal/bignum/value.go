package bignum

import (
	"math"
)

// Value is a decimal number stored as a float64 mantissa normalized into [1, 10)
// and an integer base-10 exponent. It covers magnitudes far outside the float64
// range at roughly float64 relative precision. The zero Value is 0.
//
// Operations never produce NaN: results outside the representable domain clamp
// (overflow saturates at Max, underflow and undefined results collapse to Zero).
type Value struct {
	m float64
	e int64
}

// MaxExponent bounds the exponent so that it stays exactly representable as a float64.
const MaxExponent int64 = 1 << 53

// significantDigits is the alignment distance past which addition ignores the smaller term.
const significantDigits = 17

var (
	Zero = Value{}
	One  = Value{m: 1}
	Ten  = Value{m: 1, e: 1}
	Max  = Value{m: 9.999999999999998, e: MaxExponent}
)

// log10Of2 is used by Log2.
var log10Of2 = math.Log10(2)

// New builds a Value equal to mantissa × 10^exponent.
func New(mantissa float64, exponent int64) Value {
	return normalize(mantissa, exponent)
}

// FromFloat converts a float64. NaN becomes Zero and ±Inf saturates at ±Max.
func FromFloat(f float64) Value {
	return normalize(f, 0)
}

// FromInt converts an integer.
func FromInt(n int64) Value {
	return normalize(float64(n), 0)
}

// Pow10 returns 10^x.
func Pow10(x float64) Value {
	switch {
	case math.IsNaN(x):
		return Zero
	case x >= float64(MaxExponent):
		return Max
	case x <= -float64(MaxExponent):
		return Zero
	}
	whole := math.Floor(x)
	return normalize(math.Pow(10, x-whole), int64(whole))
}

func normalize(m float64, e int64) Value {
	if m == 0 || math.IsNaN(m) {
		return Zero
	}
	if math.IsInf(m, 1) {
		return Max
	}
	if math.IsInf(m, -1) {
		return Max.Neg()
	}
	for math.Abs(m) < 1e-300 {
		m *= 1e300
		e -= 300
	}
	shift := int64(math.Floor(math.Log10(math.Abs(m))))
	if shift != 0 {
		m /= math.Pow10(int(shift))
	}
	if math.Abs(m) >= 10 {
		m /= 10
		shift++
	} else if math.Abs(m) < 1 {
		m *= 10
		shift--
	}
	e += shift
	if e > MaxExponent {
		if m < 0 {
			return Max.Neg()
		}
		return Max
	}
	if e < -MaxExponent {
		return Zero
	}
	return Value{m: m, e: e}
}

// Mantissa returns the normalized mantissa (0 for Zero).
func (v Value) Mantissa() float64 { return v.m }

// Exponent returns the base-10 exponent (0 for Zero).
func (v Value) Exponent() int64 { return v.e }

// IsZero reports whether v == 0.
func (v Value) IsZero() bool { return v.m == 0 }

// Sign returns -1, 0 or 1.
func (v Value) Sign() int {
	switch {
	case v.m > 0:
		return 1
	case v.m < 0:
		return -1
	default:
		return 0
	}
}

// Neg returns -v.
func (v Value) Neg() Value { return Value{m: -v.m, e: v.e} }

// Abs returns |v|.
func (v Value) Abs() Value { return Value{m: math.Abs(v.m), e: v.e} }

// Add returns v + o.
func (v Value) Add(o Value) Value {
	if v.m == 0 {
		return o
	}
	if o.m == 0 {
		return v
	}
	big, small := v, o
	if small.e > big.e {
		big, small = small, big
	}
	diff := big.e - small.e
	if diff > significantDigits {
		return big
	}
	return normalize(big.m+small.m*math.Pow10(int(-diff)), big.e)
}

// Sub returns v - o.
func (v Value) Sub(o Value) Value { return v.Add(o.Neg()) }

// Mul returns v × o.
func (v Value) Mul(o Value) Value {
	if v.m == 0 || o.m == 0 {
		return Zero
	}
	return normalize(v.m*o.m, v.e+o.e)
}

// Div returns v ÷ o. Division by zero yields Zero.
func (v Value) Div(o Value) Value {
	if v.m == 0 || o.m == 0 {
		return Zero
	}
	return normalize(v.m/o.m, v.e-o.e)
}

// Reciprocal returns 1 ÷ v.
func (v Value) Reciprocal() Value { return One.Div(v) }

// Pow returns v^p. Negative bases are only defined for integer powers; other
// undefined results (0^-p, (-x)^0.5) collapse to Zero.
func (v Value) Pow(p float64) Value {
	if p == 0 {
		return One
	}
	if math.IsNaN(p) || v.m == 0 {
		return Zero
	}
	if v.m < 0 {
		if p != math.Trunc(p) {
			return Zero
		}
		r := v.Abs().Pow(p)
		if math.Mod(p, 2) != 0 {
			return r.Neg()
		}
		return r
	}
	if v.e > -300 && v.e < 300 {
		r := math.Pow(v.Float64(), p)
		if r != 0 && !math.IsInf(r, 0) && !math.IsNaN(r) && math.Abs(math.Log10(r)) < 300 {
			return FromFloat(r)
		}
	}
	return Pow10(v.Log10() * p)
}

// Sqrt returns the square root of v.
func (v Value) Sqrt() Value { return v.Pow(0.5) }

// Log10 returns log10(v) as a float64. It is -Inf for Zero and NaN for negatives.
func (v Value) Log10() float64 {
	switch {
	case v.m == 0:
		return math.Inf(-1)
	case v.m < 0:
		return math.NaN()
	}
	return math.Log10(v.m) + float64(v.e)
}

// PLog10 is log10 clamped at zero: values below one yield 0.
func (v Value) PLog10() float64 {
	if v.Lt(One) {
		return 0
	}
	return v.Log10()
}

// Log2 returns log2(v).
func (v Value) Log2() float64 { return v.Log10() / log10Of2 }

// Float64 converts v, saturating at ±Inf.
func (v Value) Float64() float64 {
	switch {
	case v.m == 0:
		return 0
	case v.e > 308:
		return math.Copysign(math.Inf(1), v.m)
	case v.e < -330:
		return 0
	}
	if v.e < -300 {
		return v.m * math.Pow10(int(v.e+300)) * 1e-300
	}
	return v.m * math.Pow10(int(v.e))
}

// Cmp returns -1, 0 or 1 as v is less than, equal to or greater than o.
func (v Value) Cmp(o Value) int {
	vs, os := v.Sign(), o.Sign()
	if vs != os {
		if vs < os {
			return -1
		}
		return 1
	}
	if vs == 0 {
		return 0
	}
	var mag int
	switch {
	case v.e > o.e:
		mag = 1
	case v.e < o.e:
		mag = -1
	case math.Abs(v.m) > math.Abs(o.m):
		mag = 1
	case math.Abs(v.m) < math.Abs(o.m):
		mag = -1
	}
	return mag * vs
}

func (v Value) Eq(o Value) bool  { return v.Cmp(o) == 0 }
func (v Value) Gt(o Value) bool  { return v.Cmp(o) > 0 }
func (v Value) Gte(o Value) bool { return v.Cmp(o) >= 0 }
func (v Value) Lt(o Value) bool  { return v.Cmp(o) < 0 }
func (v Value) Lte(o Value) bool { return v.Cmp(o) <= 0 }

// ClampMin returns max(v, floor).
func (v Value) ClampMin(floor Value) Value {
	if v.Lt(floor) {
		return floor
	}
	return v
}

// ClampMax returns min(v, ceiling).
func (v Value) ClampMax(ceiling Value) Value {
	if v.Gt(ceiling) {
		return ceiling
	}
	return v
}

// MaxOf returns the larger of a and b.
func MaxOf(a, b Value) Value {
	if a.Gte(b) {
		return a
	}
	return b
}

// MinOf returns the smaller of a and b.
func MinOf(a, b Value) Value {
	if a.Lte(b) {
		return a
	}
	return b
}
