/*
Package monet implements monetary amounts in distinct currencies, deferred
arithmetic between them, and conversion through caller-supplied exchange
rates.

# Representation

The package is built around four value types. An [Amount] is an exact
fixed-point quantity: a signed 128-bit integer counting millionths of a
reference unit ([AmountUnit] subunits make one unit). A [Code] is a validated
three-letter currency code. [Money] pairs an Amount with a Code and is the
user-facing value type. A [Rates] table maps each currency to its worth in a
common reference unit and is the sole source of conversion information.

Amounts are never binary floating-point values; every quantity is a literal
integer count of subunits at a fixed scale.

# Deferred Arithmetic

Arithmetic on Money does not produce Money. Adding two values in different
currencies cannot be computed without exchange rates, so [Money.Add],
[Money.Sub], [Money.Mul], and [Money.Div] return an [Operation]: a lazy
expression tree that records the requested combination. Chaining further
operations extends the tree. Only [Operation.Execute], given a Rates table,
resolves the tree into a final Money.

The currency of an executed expression is always the currency of the
expression's leftmost operand, regardless of the currencies that follow.
Right operands are converted into that currency as
amount * worth(right) / worth(result).

# Rounding

Integer division arises during conversion and scalar multiplication or
division. The package rounds all such divisions half away from zero.
Division of amounts that do not divide evenly therefore loses precision
silently; this is part of the contract, signaled here rather than at each
call site.

# Errors

All failures are returned as errors carrying one of the package's sentinel
values: [ErrInvalidCode], [ErrUnknownCurrency], [ErrCurrencyMismatch],
[ErrOverflow], or [ErrDivisionByZero]. Construction errors surface at the
constructor; errors inside a deferred expression surface only at Execute,
and the whole expression fails as one unit. Only the Must* constructors
panic, and only on invalid input by explicit contract.

# Concurrency

Money, Amount, Code, Exponent, and built Operations are immutable values.
A Rates table is immutable after construction and may back any number of
concurrent Execute calls without locking; replace the table wholesale to
update rates.
*/
package monet
