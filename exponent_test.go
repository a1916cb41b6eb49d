package monet

import (
	"testing"

	"github.com/govalues/decimal"
)

func TestExponent_String(t *testing.T) {
	tests := []struct {
		e    Exponent
		want string
	}{
		{NewExponent(0, 0), "0"},
		{NewExponent(10, 0), "10"},
		{NewExponent(1000, 2), "10"},
		{NewExponent(15, 1), "1.5"},
		{NewExponent(-15, 1), "-1.5"},
		{NewExponent(1, 6), "0.000001"},
		{NewExponent(109, 1), "10.9"},
	}
	for _, tt := range tests {
		if got := tt.e.String(); got != tt.want {
			t.Errorf("Exponent.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestExponent_Equal(t *testing.T) {
	tests := []struct {
		e, f Exponent
		want bool
	}{
		{NewExponent(1000, 2), NewExponent(10, 0), true},
		{NewExponent(10, 0), NewExponent(1000, 2), true},
		{NewExponent(10, 0), NewExponent(11, 0), false},
		{NewExponent(0, 0), NewExponent(0, 5), true},
		{NewExponent(-1000, 2), NewExponent(-10, 0), true},
		{NewExponent(-10, 0), NewExponent(10, 0), false},
		// Fractional digits are truncated before comparing.
		{NewExponent(109, 1), NewExponent(10, 0), true},
		{NewExponent(109, 1), NewExponent(101, 1), true},
		// An exponent beyond 38 normalizes to a zero whole part.
		{NewExponent(12345, 255), NewExponent(0, 0), true},
	}
	for _, tt := range tests {
		if got := tt.e.Equal(tt.f); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.e, tt.f, got, tt.want)
		}
	}
}

func TestExponent_IsZero(t *testing.T) {
	if !NewExponent(0, 3).IsZero() {
		t.Error("NewExponent(0, 3).IsZero() = false")
	}
	if NewExponent(1, 3).IsZero() {
		t.Error("NewExponent(1, 3).IsZero() = true")
	}
}

func TestParseExponent(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			s    string
			want Exponent
		}{
			{"1.5", NewExponent(15, 1)},
			{"-1.5", NewExponent(-15, 1)},
			{"10", NewExponent(10, 0)},
			{"0.000001", NewExponent(1, 6)},
		}
		for _, tt := range tests {
			got, err := ParseExponent(tt.s)
			if err != nil {
				t.Errorf("ParseExponent(%q) failed: %v", tt.s, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseExponent(%q) = %v, want %v", tt.s, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "abc", "1..5"}
		for _, tt := range tests {
			if _, err := ParseExponent(tt); err == nil {
				t.Errorf("ParseExponent(%q) did not fail", tt)
			}
		}
	})
}

func TestExponentFromDecimal(t *testing.T) {
	tests := []struct {
		d    string
		want Exponent
	}{
		{"1.5", NewExponent(15, 1)},
		{"-0.25", NewExponent(-25, 2)},
		{"100", NewExponent(100, 0)},
	}
	for _, tt := range tests {
		got := ExponentFromDecimal(decimal.MustParse(tt.d))
		if got != tt.want {
			t.Errorf("ExponentFromDecimal(%q) = %v, want %v", tt.d, got, tt.want)
		}
	}
}
