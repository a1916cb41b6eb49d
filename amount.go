package monet

import (
	"fmt"

	"github.com/govalues/decimal"
)

// UnitScale is the number of decimal digits an [Amount] carries after the
// decimal point.
const UnitScale = 6

// AmountUnit is the number of subunits that make one reference unit,
// 10^[UnitScale].
const AmountUnit = 1_000_000

// Amount represents a fixed-point monetary quantity: a signed 128-bit count
// of subunits, where [AmountUnit] subunits make one unit.
// The amount is a literal integer count at that fixed scale, never a binary
// floating-point value.
// Amount is an immutable value type and is safe for concurrent use by
// multiple goroutines.
type Amount struct {
	coef int128
}

// NewAmount returns an amount counting the given number of subunits.
func NewAmount(subunits int64) Amount {
	return Amount{coef: int128FromInt64(subunits)}
}

// WithUnit returns an amount representing the given number of whole units.
func WithUnit(units int64) Amount {
	c, _ := int128FromInt64(units).mulChecked(int128FromInt64(AmountUnit))
	return Amount{coef: c}
}

// WithTenths returns an amount representing the given number of tenths
// of a unit.
func WithTenths(tenths int64) Amount {
	c, _ := int128FromInt64(tenths).mulChecked(int128FromInt64(AmountUnit / 10))
	return Amount{coef: c}
}

// WithCents returns an amount representing the given number of hundredths
// of a unit.
func WithCents(cents int64) Amount {
	c, _ := int128FromInt64(cents).mulChecked(int128FromInt64(AmountUnit / 100))
	return Amount{coef: c}
}

// WithThousands returns an amount representing the given number of
// thousandths of a unit.
func WithThousands(thousands int64) Amount {
	c, _ := int128FromInt64(thousands).mulChecked(int128FromInt64(AmountUnit / 1000))
	return Amount{coef: c}
}

// ParseAmount converts a decimal string, such as "12.5" or "-0.125", to an
// amount.
// The string is parsed with [decimal.ParseExact]; digits beyond [UnitScale]
// decimal places are rounded by the decimal package.
//
// ParseAmount returns an error if the string is not a valid decimal number
// or does not fit the decimal package's 19-digit precision.
func ParseAmount(amount string) (Amount, error) {
	d, err := decimal.ParseExact(amount, UnitScale)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return AmountFromDecimal(d)
}

// MustParseAmount is like [ParseAmount] but panics if the string cannot be
// parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(amount string) Amount {
	a, err := ParseAmount(amount)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q) failed: %v", amount, err))
	}
	return a
}

// AmountFromDecimal converts a decimal to a (possibly rounded) amount.
// Digits beyond [UnitScale] decimal places are rounded half to even by
// [decimal.Decimal.Int64].
// See also method [Amount.Decimal].
func AmountFromDecimal(d decimal.Decimal) (Amount, error) {
	whole, frac, ok := d.Int64(UnitScale)
	if !ok {
		return Amount{}, fmt.Errorf("converting decimal %v: %w", d, ErrOverflow)
	}
	c, _ := int128FromInt64(whole).mulChecked(int128FromInt64(AmountUnit))
	c, _ = c.addChecked(int128FromInt64(frac))
	return Amount{coef: c}, nil
}

// ParseSubunits converts a decimal integer string, such as "1100000", to an
// amount counting that many subunits.
// The full 128-bit range is accepted.
// See also method [Amount.SubunitString].
func ParseSubunits(subunits string) (Amount, error) {
	c, err := parseInt128(subunits)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing subunits: %w", err)
	}
	return Amount{coef: c}, nil
}

// Decimal returns the decimal representation of the amount.
// It returns an error if the subunit count does not fit the decimal
// package's 19-digit precision.
// See also constructor [AmountFromDecimal].
func (a Amount) Decimal() (decimal.Decimal, error) {
	sub, ok := a.coef.int64Val()
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, ErrOverflow)
	}
	d, err := decimal.New(sub, UnitScale)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to decimal: %w", a, err)
	}
	return d, nil
}

// Subunits returns the subunit count if it fits in an int64.
func (a Amount) Subunits() (int64, bool) {
	return a.coef.int64Val()
}

// SubunitString returns the subunit count as a decimal integer string.
// Unlike [Amount.Subunits] it covers the full 128-bit range.
// See also constructor [ParseSubunits].
func (a Amount) SubunitString() string {
	return a.coef.String()
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.coef.sign()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.coef.isNeg()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.coef.isZero()
}

// Neg returns an amount with the opposite sign.
// Neg returns [ErrOverflow] for the smallest representable amount, whose
// magnitude has no positive counterpart.
func (a Amount) Neg() (Amount, error) {
	c, ok := int128{}.subChecked(a.coef)
	if !ok {
		return Amount{}, fmt.Errorf("computing [-%v]: %w", a, ErrOverflow)
	}
	return Amount{coef: c}, nil
}

// Abs returns the absolute value of the amount.
// Abs returns [ErrOverflow] for the smallest representable amount.
func (a Amount) Abs() (Amount, error) {
	if a.coef.isNeg() {
		return a.Neg()
	}
	return a, nil
}

// Add returns the sum a + b.
//
// Add returns [ErrOverflow] if the sum does not fit in 128 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	c, ok := a.coef.addChecked(b.coef)
	if !ok {
		return Amount{}, fmt.Errorf("computing [%v + %v]: %w", a, b, ErrOverflow)
	}
	return Amount{coef: c}, nil
}

// Sub returns the difference a - b.
//
// Sub returns [ErrOverflow] if the difference does not fit in 128 bits.
func (a Amount) Sub(b Amount) (Amount, error) {
	c, ok := a.coef.subChecked(b.coef)
	if !ok {
		return Amount{}, fmt.Errorf("computing [%v - %v]: %w", a, b, ErrOverflow)
	}
	return Amount{coef: c}, nil
}

// Mul returns the product of the amount and the dimensionless scalar e,
// computed as a * e.coef / 10^e.exp and rounded half away from zero.
//
// Mul returns [ErrOverflow] if the 128-bit intermediate product overflows
// or the scalar's exponent exceeds 38.
func (a Amount) Mul(e Exponent) (Amount, error) {
	p, ok := pow10Int128(int(e.exp))
	if !ok {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, ErrOverflow)
	}
	c, err := mulDivRound(a.coef, e.coef, p)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v * %v]: %w", a, e, err)
	}
	return Amount{coef: c}, nil
}

// Quo returns the quotient of the amount and the dimensionless scalar e,
// computed as a * 10^e.exp / e.coef and rounded half away from zero.
//
// Quo returns [ErrDivisionByZero] if the scalar is zero, and [ErrOverflow]
// if the 128-bit intermediate product overflows or the scalar's exponent
// exceeds 38.
func (a Amount) Quo(e Exponent) (Amount, error) {
	p, ok := pow10Int128(int(e.exp))
	if !ok {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, ErrOverflow)
	}
	c, err := mulDivRound(a.coef, p, e.coef)
	if err != nil {
		return Amount{}, fmt.Errorf("computing [%v / %v]: %w", a, e, err)
	}
	return Amount{coef: c}, nil
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
func (a Amount) Cmp(b Amount) int {
	return a.coef.cmp(b.coef)
}

// String implements the [fmt.Stringer] interface and returns the decimal
// value of the amount, such as "12.5" for 12_500_000 subunits.
// Trailing fractional zeros are not rendered.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return formatFixed(a.coef, UnitScale)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (a Amount) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseAmount].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (a *Amount) UnmarshalText(text []byte) error {
	var err error
	*a, err = ParseAmount(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	return nil
}

// mulDivRound returns x * y / z rounded half away from zero.
func mulDivRound(x, y, z int128) (int128, error) {
	if z.isZero() {
		return int128{}, ErrDivisionByZero
	}
	p, ok := x.mulChecked(y)
	if !ok {
		return int128{}, ErrOverflow
	}
	q, ok := p.divRound(z)
	if !ok {
		return int128{}, ErrOverflow
	}
	return q, nil
}

// formatFixed renders coef / 10^scale as a decimal string, trimming
// trailing fractional zeros.
func formatFixed(coef int128, scale int) string {
	u := coef.abs()
	buf := make([]byte, scale+41)
	pos := len(buf)

	// Fractional digits
	trailing := true
	for i := 0; i < scale; i++ {
		var r uint64
		u, r = u.quoRem64(10)
		if trailing && r == 0 {
			continue
		}
		trailing = false
		pos--
		buf[pos] = byte(r) + '0'
	}

	// Decimal point
	if !trailing {
		pos--
		buf[pos] = '.'
	}

	// Integer digits
	for {
		var r uint64
		u, r = u.quoRem64(10)
		pos--
		buf[pos] = byte(r) + '0'
		if u.isZero() {
			break
		}
	}

	// Sign
	if coef.isNeg() {
		pos--
		buf[pos] = '-'
	}

	return string(buf[pos:])
}
