package calculator_test

import (
	"reflect"
	"testing"

	calculator "github.com/abhisakh/Calculator"
)

func TestEvalBinary(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"add", "12 + 5", "17"},
		{"sub", "7 - 9", "-2"},
		{"mul", "2*   6", "12"},
		{"div", "9 / 2", "4.5"},
		{"mod", "7 % 3", "1"},
		{"pow", "2 ^ 10", "1024"},
		{"neg-lhs", "-3 + 5", "2"},
		{"neg-rhs", "3 - -5", "8"},
		{"real", "2.5 * 4", "10"},
		{"floor", "7 ~ 2", "3 remainder 1"},
		{"floor-neg", "-7 ~ 2", "-4 remainder 1"},
		{"floor-negdiv", "7 ~ -2", "-4 remainder -1"},
		{"floor-exact", "8 ~ 2", "4 remainder 0"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calculator.EvalBinary(c.in)
			if err != nil {
				t.Fatalf("%q failed to evaluate: %v", c.in, err)
			}
			if got := r.String(); got != c.want {
				t.Errorf("%q: want %q, got %q", c.in, c.want, got)
			}
		})
	}
}

func TestEvalBinaryErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		err  error
		kind calculator.ErrorKind
	}{
		{"div-zero", "10 / 0", new(calculator.DivisionError), calculator.KindDivisionByZero},
		{"mod-zero", "10 % 0", new(calculator.DivisionError), calculator.KindDivisionByZero},
		{"floor-zero", "5 ~ 0", new(calculator.DivisionError), calculator.KindDivisionByZero},
		{"pow-frac", "-8 ^ 0.5", new(calculator.DomainError), calculator.KindDomain},
		{"unknown-op", "5 $ 3", new(calculator.OperatorError), calculator.KindUnsupportedOperator},
		{"unknown-op2", "5 & 3", new(calculator.OperatorError), calculator.KindUnsupportedOperator},
		{"words", "abc + 3", new(calculator.FormError), calculator.KindSyntax},
		{"chain", "1 + 2 + 3", new(calculator.FormError), calculator.KindSyntax},
		{"missing", "1 +", new(calculator.FormError), calculator.KindSyntax},
		{"empty", "", new(calculator.FormError), calculator.KindSyntax},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := calculator.EvalBinary(c.in)
			if err == nil {
				t.Fatalf("%q gave no error", c.in)
			}
			if reflect.TypeOf(err) != reflect.TypeOf(c.err) {
				t.Errorf("wrong error type from %q: want %T, got %T", c.in, c.err, err)
			}
			if kind := calculator.Classify(err); kind != c.kind {
				t.Errorf("%q classified wrong: want %v, got %v", c.in, c.kind, kind)
			}
		})
	}
}
