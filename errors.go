package monet

import "errors"

var (
	// ErrInvalidCode indicates a malformed currency code.
	// A valid code is exactly three ASCII letters.
	ErrInvalidCode = errors.New("invalid currency code")

	// ErrUnknownCurrency indicates a rate table lookup for a currency
	// the table has no entry for.
	ErrUnknownCurrency = errors.New("unknown currency")

	// ErrCurrencyMismatch indicates an operation between two monetary values
	// denominated in different currencies at a call site that has no rate
	// table to convert with.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrOverflow indicates an arithmetic result that does not fit
	// in 128 bits.
	ErrOverflow = errors.New("amount overflow")

	// ErrDivisionByZero indicates a division whose divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
