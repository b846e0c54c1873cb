package calculator

import (
	"math"
	"regexp"
	"strconv"
)

// binaryExpr matches the fixed two-operand form: a number, a single operator
// symbol, and a number, with any spacing. The operator class is deliberately
// wide so that an unimplemented symbol is reported as an unsupported operator
// rather than a malformed expression.
var binaryExpr = regexp.MustCompile(`^\s*(-?\d+(?:\.\d+)?)\s*([^\s\d.])\s*(-?\d+(?:\.\d+)?)\s*$`)

// BinaryResult is the outcome of a fixed-format calculation. Floor marks the
// quotient-and-remainder form produced by the ~ operator.
type BinaryResult struct {
	// Value is the computed value, unless Floor is set.
	Value float64
	// Quotient and Remainder are the floored division results of ~.
	Quotient  int64
	Remainder int64
	// Floor is whether the result is a quotient-and-remainder pair.
	Floor bool
}

func (r BinaryResult) String() string {
	if r.Floor {
		return strconv.FormatInt(r.Quotient, 10) + " remainder " + strconv.FormatInt(r.Remainder, 10)
	}
	return FormatValue(r.Value)
}

// FormError indicates input that does not fit the fixed two-operand format.
type FormError struct {
	// Input is the rejected input.
	Input string
}

func (err *FormError) Error() string {
	return "invalid expression " + strconv.Quote(err.Input) + ": want <number> <operator> <number>"
}

// EvalBinary computes a single fixed-format operation: <number> <operator>
// <number> with one of + - * / % ^ ~, where ~ is floor division yielding a
// quotient and remainder. It is the restricted front door used by the
// fixed-format CLI; the full evaluator is Session.Evaluate.
func EvalBinary(input string) (BinaryResult, error) {
	m := binaryExpr.FindStringSubmatch(input)
	if m == nil {
		return BinaryResult{}, &FormError{Input: input}
	}
	a, _ := strconv.ParseFloat(m[1], 64)
	b, _ := strconv.ParseFloat(m[3], 64)
	switch m[2] {
	case "+":
		return BinaryResult{Value: a + b}, nil
	case "-":
		return BinaryResult{Value: a - b}, nil
	case "*":
		return BinaryResult{Value: a * b}, nil
	case "/":
		if b == 0 {
			return BinaryResult{}, &DivisionError{Op: "/"}
		}
		return BinaryResult{Value: a / b}, nil
	case "%":
		if b == 0 {
			return BinaryResult{}, &DivisionError{Op: "%"}
		}
		return BinaryResult{Value: math.Mod(a, b)}, nil
	case "^":
		v, err := binaryOp(nodePow, a, b)
		if err != nil {
			return BinaryResult{}, err
		}
		return BinaryResult{Value: v}, nil
	case "~":
		if b == 0 {
			return BinaryResult{}, &DivisionError{Op: "//"}
		}
		ai, bi := int64(a), int64(b)
		q, r := ai/bi, ai%bi
		// Floored division, so the remainder takes the divisor's sign.
		if r != 0 && (r < 0) != (bi < 0) {
			q--
			r += bi
		}
		return BinaryResult{Quotient: q, Remainder: r, Floor: true}, nil
	default:
		return BinaryResult{}, &OperatorError{Operator: m[2]}
	}
}
