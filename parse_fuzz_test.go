//go:build go1.18
// +build go1.18

package calculator_test

import (
	"testing"

	calculator "github.com/abhisakh/Calculator"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1+2*3")
	f.Add("sqrt(16)")
	f.Add("2^-3")
	f.Add("min(1, 2, 3)")
	f.Add("6×7÷2")
	f.Fuzz(func(t *testing.T, s string) {
		calculator.Parse(s)
	})
}
