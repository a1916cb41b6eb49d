package monet

import (
	"errors"
	"testing"

	"github.com/govalues/decimal"
)

func TestNewAmount(t *testing.T) {
	tests := []struct {
		subunits int64
		want     string
	}{
		{0, "0"},
		{1, "0.000001"},
		{-1, "-0.000001"},
		{1_000_000, "1"},
		{1_100_000, "1.1"},
		{-2_125_000, "-2.125"},
		{9223372036854775807, "9223372036854.775807"},
	}
	for _, tt := range tests {
		got := NewAmount(tt.subunits)
		if got.String() != tt.want {
			t.Errorf("NewAmount(%v).String() = %q, want %q", tt.subunits, got, tt.want)
		}
	}
}

func TestAmountConstructors(t *testing.T) {
	tests := []struct {
		got  Amount
		want Amount
	}{
		{WithUnit(1), NewAmount(1_000_000)},
		{WithUnit(-3), NewAmount(-3_000_000)},
		{WithTenths(15), NewAmount(1_500_000)},
		{WithCents(2125), NewAmount(21_250_000)},
		{WithThousands(1), NewAmount(1_000)},
		{WithThousands(-1001), NewAmount(-1_001_000)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %v, want %v", tt.got, tt.want)
		}
	}
}

func TestParseAmount(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount string
			want   Amount
		}{
			{"0", NewAmount(0)},
			{"1", WithUnit(1)},
			{"-1", WithUnit(-1)},
			{"1.1", NewAmount(1_100_000)},
			{"21.25", NewAmount(21_250_000)},
			{"0.000001", NewAmount(1)},
			{"-0.125", NewAmount(-125_000)},
			{"1000000", WithUnit(1_000_000)},
		}
		for _, tt := range tests {
			got, err := ParseAmount(tt.amount)
			if err != nil {
				t.Errorf("ParseAmount(%q) failed: %v", tt.amount, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseAmount(%q) = %v, want %v", tt.amount, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"",
			"abc",
			"1..2",
			"1,5",
			"1e1000000",
		}
		for _, tt := range tests {
			if _, err := ParseAmount(tt); err == nil {
				t.Errorf("ParseAmount(%q) did not fail", tt)
			}
		}
	})
}

func TestMustParseAmount(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseAmount(\"abc\") did not panic")
		}
	}()
	MustParseAmount("abc")
}

func TestAmount_Decimal(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		tests := []string{"0", "1", "-1", "1.1", "-21.25", "0.000001"}
		for _, tt := range tests {
			a := MustParseAmount(tt)
			d, err := a.Decimal()
			if err != nil {
				t.Errorf("%q.Decimal() failed: %v", tt, err)
				continue
			}
			got, err := AmountFromDecimal(d)
			if err != nil {
				t.Errorf("AmountFromDecimal(%v) failed: %v", d, err)
				continue
			}
			if got != a {
				t.Errorf("AmountFromDecimal(%q.Decimal()) = %v, want %v", tt, got, a)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		a, err := ParseSubunits("100000000000000000000")
		if err != nil {
			t.Fatalf("ParseSubunits failed: %v", err)
		}
		if _, err := a.Decimal(); !errors.Is(err, ErrOverflow) {
			t.Errorf("Decimal() error = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestAmountFromDecimal_Rounding(t *testing.T) {
	// Digits beyond the sixth decimal place are rounded half to even by the
	// decimal package.
	d := decimal.MustParse("0.0000015")
	got, err := AmountFromDecimal(d)
	if err != nil {
		t.Fatalf("AmountFromDecimal(%v) failed: %v", d, err)
	}
	if want := NewAmount(2); got != want {
		t.Errorf("AmountFromDecimal(%v) = %v, want %v", d, got, want)
	}
}

func TestParseSubunits(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []string{
			"0",
			"1100000",
			"-2125000",
			"9223372036854775808", // beyond int64
			maxInt128Str,
			minInt128Str,
		}
		for _, tt := range tests {
			a, err := ParseSubunits(tt)
			if err != nil {
				t.Errorf("ParseSubunits(%q) failed: %v", tt, err)
				continue
			}
			if got := a.SubunitString(); got != tt {
				t.Errorf("ParseSubunits(%q).SubunitString() = %q", tt, got)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "1.5", "abc", "170141183460469231731687303715884105728"}
		for _, tt := range tests {
			if _, err := ParseSubunits(tt); err == nil {
				t.Errorf("ParseSubunits(%q) did not fail", tt)
			}
		}
	})
}

func TestAmount_Subunits(t *testing.T) {
	if got, ok := NewAmount(1_100_000).Subunits(); !ok || got != 1_100_000 {
		t.Errorf("Subunits() = (%v, %v), want (1100000, true)", got, ok)
	}
	big, err := ParseSubunits("9223372036854775808")
	if err != nil {
		t.Fatalf("ParseSubunits failed: %v", err)
	}
	if _, ok := big.Subunits(); ok {
		t.Error("Subunits() fit an out-of-range count into int64")
	}
}

func TestAmount_Signs(t *testing.T) {
	tests := []struct {
		a                 Amount
		sign              int
		wantNeg, wantZero bool
	}{
		{NewAmount(1), 1, false, false},
		{NewAmount(0), 0, false, true},
		{NewAmount(-1), -1, true, false},
	}
	for _, tt := range tests {
		if got := tt.a.Sign(); got != tt.sign {
			t.Errorf("%v.Sign() = %v, want %v", tt.a, got, tt.sign)
		}
		if got := tt.a.IsNeg(); got != tt.wantNeg {
			t.Errorf("%v.IsNeg() = %v, want %v", tt.a, got, tt.wantNeg)
		}
		if got := tt.a.IsZero(); got != tt.wantZero {
			t.Errorf("%v.IsZero() = %v, want %v", tt.a, got, tt.wantZero)
		}
	}
}

func TestAmount_NegAbs(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		neg, err := NewAmount(5).Neg()
		if err != nil {
			t.Fatalf("Neg() failed: %v", err)
		}
		if want := NewAmount(-5); neg != want {
			t.Errorf("Neg() = %v, want %v", neg, want)
		}
		abs, err := NewAmount(-5).Abs()
		if err != nil {
			t.Fatalf("Abs() failed: %v", err)
		}
		if want := NewAmount(5); abs != want {
			t.Errorf("Abs() = %v, want %v", abs, want)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		min, err := ParseSubunits(minInt128Str)
		if err != nil {
			t.Fatalf("ParseSubunits failed: %v", err)
		}
		if _, err := min.Neg(); !errors.Is(err, ErrOverflow) {
			t.Errorf("Neg() error = %v, want %v", err, ErrOverflow)
		}
		if _, err := min.Abs(); !errors.Is(err, ErrOverflow) {
			t.Errorf("Abs() error = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestAmount_AddSub(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b, sum, diff Amount
		}{
			{NewAmount(0), NewAmount(0), NewAmount(0), NewAmount(0)},
			{NewAmount(1_000_000), NewAmount(2_000_001), NewAmount(3_000_001), NewAmount(-1_000_001)},
			{NewAmount(-5), NewAmount(7), NewAmount(2), NewAmount(-12)},
		}
		for _, tt := range tests {
			sum, err := tt.a.Add(tt.b)
			if err != nil {
				t.Errorf("%v.Add(%v) failed: %v", tt.a, tt.b, err)
			} else if sum != tt.sum {
				t.Errorf("%v.Add(%v) = %v, want %v", tt.a, tt.b, sum, tt.sum)
			}
			diff, err := tt.a.Sub(tt.b)
			if err != nil {
				t.Errorf("%v.Sub(%v) failed: %v", tt.a, tt.b, err)
			} else if diff != tt.diff {
				t.Errorf("%v.Sub(%v) = %v, want %v", tt.a, tt.b, diff, tt.diff)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		max, err := ParseSubunits(maxInt128Str)
		if err != nil {
			t.Fatalf("ParseSubunits failed: %v", err)
		}
		min, err := ParseSubunits(minInt128Str)
		if err != nil {
			t.Fatalf("ParseSubunits failed: %v", err)
		}
		if _, err := max.Add(NewAmount(1)); !errors.Is(err, ErrOverflow) {
			t.Errorf("max.Add(1) error = %v, want %v", err, ErrOverflow)
		}
		if _, err := min.Sub(NewAmount(1)); !errors.Is(err, ErrOverflow) {
			t.Errorf("min.Sub(1) error = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestAmount_Mul(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a    Amount
			e    Exponent
			want Amount
		}{
			{NewAmount(1_000_001), NewExponent(1000, 2), NewAmount(10_000_010)},
			{NewAmount(1_000_001), NewExponent(1000, 4), NewAmount(100_000)},
			{NewAmount(-1_000_001), NewExponent(1000, 4), NewAmount(-100_000)},
			{NewAmount(1_000_000), NewExponent(5, 1), NewAmount(500_000)},
			{NewAmount(7), NewExponent(1, 1), NewAmount(1)},   // 0.7 rounds away from zero
			{NewAmount(-7), NewExponent(1, 1), NewAmount(-1)}, // -0.7 rounds away from zero
			{NewAmount(5), NewExponent(1, 1), NewAmount(1)},   // 0.5 rounds away from zero
			{NewAmount(4), NewExponent(1, 1), NewAmount(0)},
			{NewAmount(123), NewExponent(0, 0), NewAmount(0)},
		}
		for _, tt := range tests {
			got, err := tt.a.Mul(tt.e)
			if err != nil {
				t.Errorf("%v.Mul(%v) failed: %v", tt.a, tt.e, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Mul(%v) = %v, want %v", tt.a, tt.e, got, tt.want)
			}
		}
	})

	t.Run("overflow", func(t *testing.T) {
		max, err := ParseSubunits(maxInt128Str)
		if err != nil {
			t.Fatalf("ParseSubunits failed: %v", err)
		}
		if _, err := max.Mul(NewExponent(2, 0)); !errors.Is(err, ErrOverflow) {
			t.Errorf("max.Mul(2) error = %v, want %v", err, ErrOverflow)
		}
	})
}

func TestAmount_Quo(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a    Amount
			e    Exponent
			want Amount
		}{
			{NewAmount(1_000_001), NewExponent(1000, 2), NewAmount(100_000)},
			{NewAmount(1_000_001), NewExponent(1000, 4), NewAmount(10_000_010)},
			{NewAmount(-1_000_001), NewExponent(1000, 2), NewAmount(-100_000)},
			{NewAmount(5), NewExponent(2, 0), NewAmount(3)},   // 2.5 rounds away from zero
			{NewAmount(-5), NewExponent(2, 0), NewAmount(-3)}, // -2.5 rounds away from zero
			{NewAmount(1), NewExponent(3, 0), NewAmount(0)},
			{NewAmount(2), NewExponent(3, 0), NewAmount(1)},
		}
		for _, tt := range tests {
			got, err := tt.a.Quo(tt.e)
			if err != nil {
				t.Errorf("%v.Quo(%v) failed: %v", tt.a, tt.e, err)
				continue
			}
			if got != tt.want {
				t.Errorf("%v.Quo(%v) = %v, want %v", tt.a, tt.e, got, tt.want)
			}
		}
	})

	t.Run("division by zero", func(t *testing.T) {
		if _, err := NewAmount(1).Quo(NewExponent(0, 0)); !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("Quo(0) error = %v, want %v", err, ErrDivisionByZero)
		}
	})
}

func TestAmount_Cmp(t *testing.T) {
	tests := []struct {
		a, b Amount
		want int
	}{
		{NewAmount(0), NewAmount(0), 0},
		{NewAmount(1), NewAmount(2), -1},
		{NewAmount(2), NewAmount(1), 1},
		{NewAmount(-1), NewAmount(1), -1},
	}
	for _, tt := range tests {
		if got := tt.a.Cmp(tt.b); got != tt.want {
			t.Errorf("%v.Cmp(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAmount_Text(t *testing.T) {
	a := MustParseAmount("-21.25")
	text, err := a.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText() failed: %v", err)
	}
	if string(text) != "-21.25" {
		t.Errorf("MarshalText() = %q, want %q", text, "-21.25")
	}
	var b Amount
	if err := b.UnmarshalText(text); err != nil {
		t.Fatalf("UnmarshalText(%q) failed: %v", text, err)
	}
	if b != a {
		t.Errorf("UnmarshalText(%q) = %v, want %v", text, b, a)
	}

	if err := b.UnmarshalText([]byte("abc")); err == nil {
		t.Error("UnmarshalText(\"abc\") did not fail")
	}
}
