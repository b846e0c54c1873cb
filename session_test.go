package calculator_test

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"

	calculator "github.com/abhisakh/Calculator"
)

func TestSessionEvaluate(t *testing.T) {
	steps := []struct {
		in  string
		out string
	}{
		{"x = 5", "x = 5"},
		{"x * 2", "10"},
		{"x = x + 1", "x = 6"},
		{"x", "6"},
		{"y = x ^ 2", "y = 36"},
		{"sqrt(y)", "6"},
		{"x2 = 0.5", "x2 = 0.5"},
		{"x2 + x2", "1"},
	}
	sess := calculator.NewSession()
	for _, s := range steps {
		res, err := sess.Evaluate(s.in)
		if err != nil {
			t.Fatalf("%q failed to evaluate: %v", s.in, err)
		}
		if got := res.String(); got != s.out {
			t.Errorf("%q: want %q, got %q", s.in, s.out, got)
		}
	}
}

func TestSessionFailureLeavesTable(t *testing.T) {
	sess := calculator.NewSession()
	if _, err := sess.Evaluate("x = 5"); err != nil {
		t.Fatal(err)
	}
	cases := []string{
		"z = 1 / 0",
		"z = nosuch(1)",
		"z = (",
		"x = sqrt(-1)",
	}
	for _, in := range cases {
		if _, err := sess.Evaluate(in); err == nil {
			t.Errorf("%q gave no error", in)
		}
		if _, ok := sess.Lookup("z"); ok {
			t.Errorf("%q bound z", in)
		}
	}
	if v, ok := sess.Lookup("x"); !ok || v != 5 {
		t.Errorf("x should still be 5 but is %g (bound: %t)", v, ok)
	}
	if vars := sess.Vars(); !reflect.DeepEqual(vars, []string{"x"}) {
		t.Errorf("wrong variables: %q", vars)
	}
}

func TestSessionBadTargets(t *testing.T) {
	cases := []string{
		"2x = 5",
		"= 5",
		"a.b = 1",
		"a b = 1",
		"x+y = 1",
		"(x) = 1",
	}
	sess := calculator.NewSession()
	for _, in := range cases {
		_, err := sess.Evaluate(in)
		if err == nil {
			t.Errorf("%q gave no error", in)
			continue
		}
		if kind := calculator.Classify(err); kind != calculator.KindInvalidVariableName {
			t.Errorf("%q classified as %v: %v", in, kind, err)
		}
		if len(sess.Vars()) != 0 {
			t.Fatalf("%q bound variables: %q", in, sess.Vars())
		}
	}
}

func TestSessionComparisonsAreNotAssignments(t *testing.T) {
	// Comparison tokens lex but do not evaluate; they must never be read as
	// assignment, so the error is about the operator, not the target.
	cases := []string{
		"1 == 1",
		"x == 5",
		"1 <= 2",
		"2 >= 1",
		"x != 3",
	}
	sess := calculator.NewSession()
	for _, in := range cases {
		_, err := sess.Evaluate(in)
		if err == nil {
			t.Errorf("%q gave no error", in)
			continue
		}
		if kind := calculator.Classify(err); kind != calculator.KindUnsupportedOperator {
			t.Errorf("%q classified as %v: %v", in, kind, err)
		}
	}
}

func TestSessionHostileInput(t *testing.T) {
	// Inputs probing for host access resolve like any other unknown name or
	// fail to lex. Nothing here may reach beyond the registry.
	cases := []string{
		"__import__('os')",
		"os.system('true')",
		"eval(1)",
		"exec(1)",
		"open(1)",
		"globals()",
		"x; sqrt(16)",
	}
	sess := calculator.NewSession()
	for _, in := range cases {
		_, err := sess.Evaluate(in)
		if err == nil {
			t.Errorf("%q gave no error", in)
			continue
		}
		switch kind := calculator.Classify(err); kind {
		case calculator.KindSyntax, calculator.KindUnknownName: // ok
		default:
			t.Errorf("%q classified as %v: %v", in, kind, err)
		}
	}
}

func TestSessionConcurrent(t *testing.T) {
	sess := calculator.NewSession()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("v%d", i)
			for j := 0; j < 100; j++ {
				in := fmt.Sprintf("%s = %d + %d", name, i, j)
				if _, err := sess.Evaluate(in); err != nil {
					t.Errorf("%q failed to evaluate: %v", in, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
	for i := 0; i < 8; i++ {
		name := fmt.Sprintf("v%d", i)
		v, ok := sess.Lookup(name)
		if !ok || v != float64(i+99) {
			t.Errorf("%s should be %d but is %g (bound: %t)", name, i+99, v, ok)
		}
	}
}

func TestSessionOptionsAndSet(t *testing.T) {
	sess := calculator.NewSession(calculator.SetVar("x", 1))
	if res, err := sess.Evaluate("x"); err != nil || res.String() != "1" {
		t.Errorf("x: got %v with error %v", res, err)
	}
	if err := sess.Set("y", 2.5); err != nil {
		t.Fatal(err)
	}
	if res, err := sess.Evaluate("x + y"); err != nil || res.String() != "3.5" {
		t.Errorf("x + y: got %v with error %v", res, err)
	}
	if err := sess.Set("2x", 1); err == nil {
		t.Error("Set accepted an invalid name")
	}
	sess.Delete("x")
	if _, err := sess.Evaluate("x"); err == nil {
		t.Error("x survived delete")
	}
	sess.Clear()
	if vars := sess.Vars(); len(vars) != 0 {
		t.Errorf("variables after clear: %q", vars)
	}
}

func TestSessionLimit(t *testing.T) {
	sess := calculator.NewSession()
	_, err := sess.Evaluate(strings.Repeat("1", calculator.MaxExprLen+1))
	if err == nil {
		t.Fatal("oversized input gave no error")
	}
	if kind := calculator.Classify(err); kind != calculator.KindSyntax {
		t.Errorf("oversized input classified as %v", kind)
	}
}

func TestIsIdentifier(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"x", true},
		{"x2", true},
		{"_x", true},
		{"longer_name", true},
		{"π", true},
		{"", false},
		{"2x", false},
		{"a.b", false},
		{"a b", false},
		{"x+y", false},
	}
	for _, c := range cases {
		if got := calculator.IsIdentifier(c.name); got != c.ok {
			t.Errorf("IsIdentifier(%q) = %t, want %t", c.name, got, c.ok)
		}
	}
}

func TestFormatValue(t *testing.T) {
	cases := []struct {
		v    float64
		want string
	}{
		{8, "8"},
		{-8, "-8"},
		{0, "0"},
		{2.5, "2.5"},
		{1.0 / 3, "0.3333333333333333"},
		{1e14, "100000000000000"},
		{1e15, "1e+15"},
		{-1e20, "-1e+20"},
	}
	for _, c := range cases {
		if got := calculator.FormatValue(c.v); got != c.want {
			t.Errorf("FormatValue(%g) = %q, want %q", c.v, got, c.want)
		}
	}
}
