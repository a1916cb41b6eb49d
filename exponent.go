package monet

import (
	"fmt"

	"github.com/govalues/decimal"
)

// Exponent represents a dimensionless fixed-point scalar equal to
// coef / 10^exp, with a non-negative exponent.
// It is the factor type accepted by [Amount.Mul], [Amount.Quo], and the
// deferred [Money.Mul] and [Money.Div] operations: scalars carry no
// currency, so multiplying money by an Exponent can never produce a
// "squared" currency.
type Exponent struct {
	coef int128
	exp  uint8
}

// NewExponent returns the scalar coef / 10^exp.
//
//	NewExponent(1000, 2) // 10
//	NewExponent(15, 1)   // 1.5
func NewExponent(coef int64, exp uint8) Exponent {
	return Exponent{coef: int128FromInt64(coef), exp: exp}
}

// ExponentFromDecimal converts a decimal to a scalar losslessly.
func ExponentFromDecimal(d decimal.Decimal) Exponent {
	coef := int128{lo: d.Coef()}
	if d.IsNeg() {
		coef = coef.neg()
	}
	return Exponent{coef: coef, exp: uint8(d.Scale())}
}

// ParseExponent converts a decimal string, such as "1.5", to a scalar.
// See also constructor [ExponentFromDecimal].
func ParseExponent(s string) (Exponent, error) {
	d, err := decimal.Parse(s)
	if err != nil {
		return Exponent{}, fmt.Errorf("parsing exponent: %w", err)
	}
	return ExponentFromDecimal(d), nil
}

// IsZero returns:
//
//	true  if e = 0
//	false otherwise
func (e Exponent) IsZero() bool {
	return e.coef.isZero()
}

// Equal reports whether two scalars represent the same whole number after
// normalizing both to exponent zero with truncating division.
//
// Equality is approximate: scalars that differ only in truncated fractional
// digits compare equal, for example 10.0 and 10.9. This precision loss is
// part of the contract, not an error.
func (e Exponent) Equal(f Exponent) bool {
	return e.normalize().cmp(f.normalize()) == 0
}

// normalize returns the whole part of coef / 10^exp, truncated toward zero.
func (e Exponent) normalize() int128 {
	p, ok := pow10Int128(int(e.exp))
	if !ok {
		// 10^exp exceeds 128 bits, so the whole part is zero.
		return int128{}
	}
	q, _, _ := e.coef.quoRem(p)
	return q
}

// String implements the [fmt.Stringer] interface and returns the decimal
// value of the scalar, such as "1.5".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (e Exponent) String() string {
	return formatFixed(e.coef, int(e.exp))
}
