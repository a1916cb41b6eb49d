package monet

import (
	"encoding/json"
	"fmt"
)

// Money pairs a fixed-point [Amount] with the [Code] of the currency it is
// denominated in.
// Money is an immutable value type: constructors validate the currency code,
// arithmetic produces new values, and nothing mutates a Money in place.
//
// Arithmetic methods do not return Money directly. Same-currency arithmetic
// is always legal, but cross-currency arithmetic needs a rate table the
// operator call site does not have, so [Money.Add], [Money.Sub], [Money.Mul],
// and [Money.Div] return a deferred [Operation] instead. The operation is
// resolved against a [Rates] table with [Operation.Execute].
type Money struct {
	amount Amount
	code   Code
}

// WithCode returns money of the given amount denominated in the given
// currency.
//
// WithCode returns [ErrInvalidCode] if the code is malformed, for example
// the zero Code.
func WithCode(amount Amount, code Code) (Money, error) {
	if !code.isValid() {
		return Money{}, fmt.Errorf("constructing money: %w", ErrInvalidCode)
	}
	return Money{amount: amount, code: code}, nil
}

// WithStrCode returns money of the given amount denominated in the currency
// named by a three-letter string code.
//
// WithStrCode returns [ErrInvalidCode] if the code is malformed.
func WithStrCode(amount Amount, code string) (Money, error) {
	c, err := ParseCode(code)
	if err != nil {
		return Money{}, fmt.Errorf("constructing money: %w", err)
	}
	return Money{amount: amount, code: c}, nil
}

// MustWithStrCode is like [WithStrCode] but panics if the code cannot be
// parsed.
// It simplifies safe initialization of global variables holding money.
func MustWithStrCode(amount Amount, code string) Money {
	m, err := WithStrCode(amount, code)
	if err != nil {
		panic(fmt.Sprintf("WithStrCode(%v, %q) failed: %v", amount, code, err))
	}
	return m
}

// NewMoney assembles money from its stable serialized fields: the currency
// code, the subunit count as a decimal integer string, and the exponent at
// which the count is expressed.
// Counts at exponents other than [UnitScale] are rescaled, rounding half
// away from zero.
//
// NewMoney returns [ErrInvalidCode] for a malformed code and [ErrOverflow]
// if the count does not fit in 128 bits after rescaling or the exponent
// exceeds 38.
func NewMoney(code, subunits string, exponent int) (Money, error) {
	c, err := ParseCode(code)
	if err != nil {
		return Money{}, fmt.Errorf("constructing money: %w", err)
	}
	coef, err := parseInt128(subunits)
	if err != nil {
		return Money{}, fmt.Errorf("constructing money: %w", err)
	}
	if exponent != UnitScale {
		from, ok := pow10Int128(exponent)
		if !ok {
			return Money{}, fmt.Errorf("constructing money: exponent %d: %w", exponent, ErrOverflow)
		}
		coef, err = mulDivRound(coef, int128FromInt64(AmountUnit), from)
		if err != nil {
			return Money{}, fmt.Errorf("constructing money: %w", err)
		}
	}
	return Money{amount: Amount{coef: coef}, code: c}, nil
}

// Amount returns the monetary amount.
func (m Money) Amount() Amount {
	return m.amount
}

// CurrencyCode returns the currency the amount is denominated in.
func (m Money) CurrencyCode() Code {
	return m.code
}

// SameCurr returns true if both values are denominated in the same currency.
func (m Money) SameCurr(n Money) bool {
	return m.code == n.code
}

// Convert returns the money converted into the given currency, computed as
// amount * worth(from) / worth(to) and rounded half away from zero.
// Both currencies must be present in the table, even when they are equal.
//
// Convert returns [ErrUnknownCurrency] if either currency is absent from
// the table, [ErrDivisionByZero] if the target currency's worth is zero,
// and [ErrOverflow] if the 128-bit intermediate product overflows.
func (m Money) Convert(to Code, rates *Rates) (Money, error) {
	worthFrom, err := rates.Worth(m.code)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v to %v: %w", m, to, err)
	}
	worthTo, err := rates.Worth(to)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v to %v: %w", m, to, err)
	}
	if m.code == to {
		return m, nil
	}
	coef, err := mulDivRound(m.amount.coef, worthFrom.coef, worthTo.coef)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v to %v: %w", m, to, err)
	}
	return Money{amount: Amount{coef: coef}, code: to}, nil
}

// Cmp compares two monetary values in the same currency and returns:
//
//	-1 if m < n
//	 0 if m = n
//	+1 if m > n
//
// Cmp returns [ErrCurrencyMismatch] if the values are denominated in
// different currencies: without a rate table the comparison cannot be
// answered. Use [Money.Convert] to bring both values into one currency
// first.
func (m Money) Cmp(n Money) (int, error) {
	if !m.SameCurr(n) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, n, ErrCurrencyMismatch)
	}
	return m.amount.Cmp(n.amount), nil
}

// Equal reports whether m and n are the same value in the same currency.
//
// Equal returns [ErrCurrencyMismatch] if the values are denominated in
// different currencies.
func (m Money) Equal(n Money) (bool, error) {
	c, err := m.Cmp(n)
	if err != nil {
		return false, err
	}
	return c == 0, nil
}

// String implements the [fmt.Stringer] interface and returns the currency
// code followed by the decimal value, such as "USD 12.5".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.code.String() + " " + m.amount.String()
}

// moneyJSON is the stable serialized form of Money.
// The field order is fixed: currency code, amount, exponent.
type moneyJSON struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	Exponent int    `json:"exponent"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// Money encodes as an object holding the currency code, the subunit count
// as a decimal integer string (the count can exceed the range of a JSON
// number), and the exponent, in that order.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(moneyJSON{
		Currency: m.code.String(),
		Amount:   m.amount.SubunitString(),
		Exponent: UnitScale,
	})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [NewMoney].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	var enc moneyJSON
	if err := json.Unmarshal(data, &enc); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	var err error
	*m, err = NewMoney(enc.Currency, enc.Amount, enc.Exponent)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	return nil
}
