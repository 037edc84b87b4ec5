package bignum

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidLiteral is returned when a string cannot be parsed as a Value.
var ErrInvalidLiteral = errors.New("invalid numeric literal")

// Parse reads a decimal literal such as "12", "1.5e300" or "1e-9000".
// Literals whose exponent fits in 32 bits are read exactly through shopspring/decimal
// before rounding to the mantissa; larger exponents fall back to a split parse.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Zero, fmt.Errorf("%w: empty", ErrInvalidLiteral)
	}
	if d, err := decimal.NewFromString(s); err == nil {
		return fromDecimal(d), nil
	}

	idx := strings.IndexAny(s, "eE")
	if idx <= 0 {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
	}
	m, err := strconv.ParseFloat(s[:idx], 64)
	if err != nil {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
	}
	e, err := strconv.ParseInt(s[idx+1:], 10, 64)
	if err != nil || e > MaxExponent || e < -MaxExponent {
		return Zero, fmt.Errorf("%w: %q", ErrInvalidLiteral, s)
	}
	return normalize(m, e), nil
}

// MustParse is Parse for literals known at compile time. It panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

func fromDecimal(d decimal.Decimal) Value {
	if d.IsZero() {
		return Zero
	}
	digits := d.Coefficient().String()
	sign := 1.0
	if strings.HasPrefix(digits, "-") {
		sign = -1
		digits = digits[1:]
	}
	n := len(digits)
	lead := digits[:1]
	if n > 1 {
		end := n
		if end > significantDigits {
			end = significantDigits
		}
		lead += "." + digits[1:end]
	}
	m, err := strconv.ParseFloat(lead, 64)
	if err != nil {
		return Zero
	}
	return normalize(sign*m, int64(d.Exponent())+int64(n-1))
}

// String renders v as "<mantissa>e<exponent>", or "0".
func (v Value) String() string {
	if v.m == 0 {
		return "0"
	}
	return strconv.FormatFloat(v.m, 'f', -1, 64) + "e" + strconv.FormatInt(v.e, 10)
}

// MarshalText implements encoding.TextMarshaler; JSON and YAML encode Values as strings.
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// UnmarshalJSON accepts both quoted literals and bare JSON numbers.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*v = Zero
		return nil
	}
	if len(data) >= 2 && data[0] == '"' {
		unquoted, err := strconv.Unquote(string(data))
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidLiteral, data)
		}
		data = []byte(unquoted)
	}
	return v.UnmarshalText(data)
}
