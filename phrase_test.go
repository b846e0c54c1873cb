package calculator_test

import (
	"testing"

	calculator "github.com/abhisakh/Calculator"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"power-full", "2 to the power of 5", "2 ^ 5"},
		{"power-short", "2 to the power 5", "2 ^ 5"},
		{"power-of", "2 power of 5", "2 ^ 5"},
		{"power-bare", "2 power 5", "2 ^ 5"},
		{"sqrt", "square root of 16", "sqrt(16)"},
		{"sqrt-the", "the square root of 16", "sqrt(16)"},
		{"sqrt-real", "square root of 2.25", "sqrt(2.25)"},
		{"factorial", "factorial of 5", "factorial(5)"},
		{"divided", "10 divided by 2", "10 / 2"},
		{"multiplied", "6 multiplied by 7", "6 * 7"},
		{"times", "3 times 4", "3 * 4"},
		{"caps", "THE SQUARE ROOT OF 9", "sqrt(9)"},
		{"caps-times", "5 TIMES 3", "5 * 3"},
		{"spaces", "2   to   the   power   of   5", "2 ^ 5"},
		{"mixed", "the square root of 16 times 2", "sqrt(16) * 2"},
		{"plain", "5 + 3", "5 + 3"},
		{"canonical", "2 ^ 5", "2 ^ 5"},
		// Word boundaries: substrings of phrase words survive.
		{"powerhouse", "powerhouse + 1", "powerhouse + 1"},
		{"timestamp", "timestamp * 2", "timestamp * 2"},
		// The square root phrase needs a numeric argument; otherwise only the
		// filler words drop.
		{"sqrt-var", "square root of x", "square root x"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := calculator.Normalize(c.in)
			if got != c.want {
				t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
			}
			if again := calculator.Normalize(got); again != got {
				t.Errorf("not idempotent: Normalize(%q) = %q", got, again)
			}
		})
	}
}

func TestNormalizeThenEvaluate(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"2 to the power of 5", 32},
		{"square root of 16", 4},
		{"factorial of 5", 120},
		{"10 divided by 2", 5},
		{"6 multiplied by 7", 42},
		{"3 times 4", 12},
		{"the square root of 16 times 2", 8},
	}
	for _, c := range cases {
		src := calculator.Normalize(c.in)
		got, err := calculator.EvalString(src)
		if err != nil {
			t.Errorf("%q normalized to %q which failed to evaluate: %v", c.in, src, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: want %g, got %g", c.in, c.want, got)
		}
	}
}
