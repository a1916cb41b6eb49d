package monet

import "fmt"

// Rates is a table assigning each currency its worth expressed in a common
// reference unit: the worth of a code answers "how many reference units is
// one unit of this currency worth".
// If one USD is worth 1_000_000 reference subunits and one CHF is worth
// 1_100_000, then CHF is the more valuable currency.
//
// The table is immutable after construction; to update rates, build a new
// table and replace the old one wholesale. Resolution only ever reads the
// table, so any number of goroutines may share one Rates for concurrent
// [Operation.Execute] calls without locking.
type Rates struct {
	worth map[Code]Amount
}

// WithRates constructs a rate table from the given mapping.
// The mapping is copied; later changes to it do not affect the table.
func WithRates(worth map[Code]Amount) *Rates {
	m := make(map[Code]Amount, len(worth))
	for code, amount := range worth {
		m[code] = amount
	}
	return &Rates{worth: m}
}

// Worth returns the reference-unit worth of one unit of the given currency.
//
// Worth returns [ErrUnknownCurrency] if the table has no entry for the code;
// there is no implicit default rate.
func (r *Rates) Worth(code Code) (Amount, error) {
	amount, ok := r.worth[code]
	if !ok {
		return Amount{}, fmt.Errorf("looking up %v: %w", code, ErrUnknownCurrency)
	}
	return amount, nil
}

// Len returns the number of currencies in the table.
func (r *Rates) Len() int {
	return len(r.worth)
}
