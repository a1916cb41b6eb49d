package monet

import "fmt"

// opKind enumerates the deferred operators.
type opKind uint8

const (
	opLeaf opKind = iota
	opAdd
	opSub
	opMul
	opDiv
)

// Operation is a deferred arithmetic expression over monetary values.
//
// Combining two currencies requires a rate table that the combining call
// site usually does not have, so arithmetic on [Money] records the requested
// combination instead of computing it. An Operation owns copies of its
// operands and performs no conversion, and can raise no currency error,
// until [Operation.Execute] resolves it against a [Rates] table. Deferral
// also keeps intermediate expressions from committing to a currency
// prematurely: chaining more operations onto an Operation costs nothing.
//
// Operations are write-once trees built by chaining; they are safe to share
// between goroutines once built.
type Operation struct {
	kind   opKind
	left   *Operation
	right  *Operation
	money  Money    // leaf operand
	factor Exponent // scalar operand of opMul and opDiv
}

// Operand is an expression operand: either a [Money] value or a previously
// built [Operation].
type Operand interface {
	node() *Operation
}

func (m Money) node() *Operation {
	return &Operation{kind: opLeaf, money: m}
}

func (o *Operation) node() *Operation {
	return o
}

// Add defers the addition of v to m.
func (m Money) Add(v Operand) *Operation {
	return &Operation{kind: opAdd, left: m.node(), right: v.node()}
}

// Sub defers the subtraction of v from m.
func (m Money) Sub(v Operand) *Operation {
	return &Operation{kind: opSub, left: m.node(), right: v.node()}
}

// Mul defers the multiplication of m by the dimensionless scalar e.
func (m Money) Mul(e Exponent) *Operation {
	return &Operation{kind: opMul, left: m.node(), factor: e}
}

// Div defers the division of m by the dimensionless scalar e.
func (m Money) Div(e Exponent) *Operation {
	return &Operation{kind: opDiv, left: m.node(), factor: e}
}

// Add defers the addition of v to the expression built so far.
func (o *Operation) Add(v Operand) *Operation {
	return &Operation{kind: opAdd, left: o, right: v.node()}
}

// Sub defers the subtraction of v from the expression built so far.
func (o *Operation) Sub(v Operand) *Operation {
	return &Operation{kind: opSub, left: o, right: v.node()}
}

// Mul defers the multiplication of the expression built so far by the
// dimensionless scalar e.
func (o *Operation) Mul(e Exponent) *Operation {
	return &Operation{kind: opMul, left: o, factor: e}
}

// Div defers the division of the expression built so far by the
// dimensionless scalar e.
func (o *Operation) Div(e Exponent) *Operation {
	return &Operation{kind: opDiv, left: o, factor: e}
}

// Execute resolves the deferred expression against the given rate table and
// returns the final monetary value.
//
// Resolution is depth-first. The currency of the result is the currency of
// the leftmost operand of the whole expression; this is a fixed tie-break
// rule, not a consequence of tree shape, and it holds across chains:
// a.Add(b).Sub(c) keeps a's currency no matter what b and c are denominated
// in. Right operands are converted into the result currency as
// amount * worth(right) / worth(result), rounded half away from zero. Both
// currencies of every addition and subtraction must be present in the
// table, even when no conversion is needed. Scalar multiplication and
// division ignore the table.
//
// Execute is atomic from the caller's perspective: it returns either the
// final Money or the first error encountered, and never a partial result.
// Failures carry [ErrUnknownCurrency], [ErrOverflow], or
// [ErrDivisionByZero] in their chain, matchable with [errors.Is].
//
// [errors.Is]: https://pkg.go.dev/errors#Is
func (o *Operation) Execute(rates *Rates) (Money, error) {
	m, err := o.resolve(rates)
	if err != nil {
		return Money{}, fmt.Errorf("executing operation: %w", err)
	}
	return m, nil
}

func (o *Operation) resolve(rates *Rates) (Money, error) {
	switch o.kind {
	case opLeaf:
		return o.money, nil
	case opAdd, opSub:
		left, err := o.left.resolve(rates)
		if err != nil {
			return Money{}, err
		}
		right, err := o.right.resolve(rates)
		if err != nil {
			return Money{}, err
		}
		right, err = right.Convert(left.code, rates)
		if err != nil {
			return Money{}, err
		}
		var amount Amount
		if o.kind == opAdd {
			amount, err = left.amount.Add(right.amount)
		} else {
			amount, err = left.amount.Sub(right.amount)
		}
		if err != nil {
			return Money{}, err
		}
		return Money{amount: amount, code: left.code}, nil
	case opMul, opDiv:
		left, err := o.left.resolve(rates)
		if err != nil {
			return Money{}, err
		}
		var amount Amount
		if o.kind == opMul {
			amount, err = left.amount.Mul(o.factor)
		} else {
			amount, err = left.amount.Quo(o.factor)
		}
		if err != nil {
			return Money{}, err
		}
		return Money{amount: amount, code: left.code}, nil
	default:
		return Money{}, fmt.Errorf("unknown operation kind %d", o.kind)
	}
}
