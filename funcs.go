package calculator

import (
	"math"
	"sort"
)

// Func is a function from reals to reals available to expressions. Functions
// are pure: they may not perform I/O or observe anything but their arguments.
type Func interface {
	// Call evaluates the function. args has a length for which CanCall
	// returned true.
	Call(args []float64) (float64, error)

	// CanCall reports whether the function can be called with n arguments.
	// Entries for which CanCall(0) is true act as constants when their name
	// is used without call syntax.
	CanCall(n int) bool
}

// globalFuncs is the process-wide function registry. It is read-only after
// package initialization; contexts only ever look names up in it.
var globalFuncs = map[string]Func{
	"sqrt": monadic{"sqrt", math.Sqrt, nonNegative},
	"cbrt": monadic{"cbrt", math.Cbrt, nil},
	"abs":  monadic{"abs", math.Abs, nil},
	"exp":  monadic{"exp", math.Exp, nil},
	"ln":   monadic{"ln", math.Log, positive},
	"log":  monadic{"log", math.Log10, positive},
	"log2": monadic{"log2", math.Log2, positive},

	"floor": monadic{"floor", math.Floor, nil},
	"ceil":  monadic{"ceil", math.Ceil, nil},
	"round": monadic{"round", math.Round, nil},

	// trig in radians
	"sin": monadic{"sin", math.Sin, nil},
	"cos": monadic{"cos", math.Cos, nil},
	"tan": monadic{"tan", math.Tan, nil},
	// trig in degrees
	"sind": monadic{"sind", degrees(math.Sin), nil},
	"cosd": monadic{"cosd", degrees(math.Cos), nil},
	"tand": monadic{"tand", degrees(math.Tan), nil},

	"factorial": factorialFunc{},
	"pow":       dyadic{"pow", powOp},
	"min":       variadic{"min", math.Min},
	"max":       variadic{"max", math.Max},

	// constants
	"pi":  constant(math.Pi),
	"e":   constant(math.E),
	"tau": constant(2 * math.Pi),
	"inf": constant(math.Inf(1)),
}

// Functions returns the sorted names of the function registry, for display by
// front ends.
func Functions() []string {
	names := make([]string, 0, len(globalFuncs))
	for k := range globalFuncs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nonNegative(x float64) bool { return x >= 0 }
func positive(x float64) bool    { return x > 0 }

func degrees(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		return f(x * math.Pi / 180)
	}
}

// monadic is a function of one variable, with an optional domain predicate.
type monadic struct {
	name string
	f    func(float64) float64
	ok   func(float64) bool
}

func (m monadic) Call(args []float64) (float64, error) {
	x := args[0]
	if m.ok != nil && !m.ok(x) {
		return 0, &DomainError{X: x, Func: m.name}
	}
	return m.f(x), nil
}

func (m monadic) CanCall(n int) bool {
	return n == 1
}

// dyadic is a function of two variables.
type dyadic struct {
	name string
	f    func(a, b float64) (float64, error)
}

func (d dyadic) Call(args []float64) (float64, error) {
	return d.f(args[0], args[1])
}

func (d dyadic) CanCall(n int) bool {
	return n == 2
}

// powOp is pow as a registry function, with the same domain rule as the ^
// operator.
func powOp(a, b float64) (float64, error) {
	return binaryOp(nodePow, a, b)
}

// variadic reduces one or more arguments pairwise.
type variadic struct {
	name string
	f    func(a, b float64) float64
}

func (v variadic) Call(args []float64) (float64, error) {
	r := args[0]
	for _, x := range args[1:] {
		r = v.f(r, x)
	}
	return r, nil
}

func (v variadic) CanCall(n int) bool {
	return n >= 1
}

// constant is a niladic function with a fixed value.
type constant float64

func (c constant) Call(args []float64) (float64, error) {
	return float64(c), nil
}

func (c constant) CanCall(n int) bool {
	return n == 0
}

type factorialFunc struct{}

// factorialMax bounds the argument so the result stays within float64 range.
const factorialMax = 170

func (factorialFunc) Call(args []float64) (float64, error) {
	x := args[0]
	if x != math.Trunc(x) || x < 0 || x > factorialMax {
		return 0, &DomainError{X: x, Func: "factorial"}
	}
	r := 1.0
	for i := 2.0; i <= x; i++ {
		r *= i
	}
	return r, nil
}

func (factorialFunc) CanCall(n int) bool {
	return n == 1
}
