package calculator

import "strconv"

// ErrorKind classifies every failure the calculator reports. Each error
// belongs to exactly one kind; front ends decide presentation.
type ErrorKind int

const (
	// KindSyntax covers inputs that do not form a valid expression.
	KindSyntax ErrorKind = iota
	// KindUnknownName covers identifiers that are neither registry entries
	// nor bound variables.
	KindUnknownName
	// KindDivisionByZero covers division, floor division, and modulus with a
	// zero divisor.
	KindDivisionByZero
	// KindInvalidVariableName covers assignment targets that fail identifier
	// syntax.
	KindInvalidVariableName
	// KindUnsupportedOperator covers operator tokens the lexer recognizes but
	// the evaluator does not implement, e.g. comparisons.
	KindUnsupportedOperator
	// KindDomain covers registry functions called with arguments outside
	// their domain, e.g. sqrt of a negative number.
	KindDomain
)

func (k ErrorKind) String() string {
	switch k {
	case KindSyntax:
		return "syntax error"
	case KindUnknownName:
		return "unknown name"
	case KindDivisionByZero:
		return "division by zero"
	case KindInvalidVariableName:
		return "invalid variable name"
	case KindUnsupportedOperator:
		return "unsupported operator"
	case KindDomain:
		return "domain error"
	default:
		return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Classify maps an error produced by this package onto its kind. Errors from
// other sources classify as KindSyntax.
func Classify(err error) ErrorKind {
	switch err.(type) {
	case *NameError:
		return KindUnknownName
	case *DivisionError:
		return KindDivisionByZero
	case *AssignError:
		return KindInvalidVariableName
	case *OperatorError:
		return KindUnsupportedOperator
	case *DomainError:
		return KindDomain
	default:
		return KindSyntax
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the text the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the rune column at which the token started.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token: "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token: "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}

// TokenError indicates a token that cannot appear where it did, e.g. two
// terms with no operator between. It implements InputError.
type TokenError struct {
	// Col is the position of the token.
	Col int
	// Token is the text of the token.
	Token string
}

func (err *TokenError) Error() string {
	return errpos(err.Col, "unexpected "+strconv.Quote(err.Token))
}

func (err *TokenError) Pos() int {
	return err.Col
}

// OperatorError indicates an operator token that the evaluator does not
// implement. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unsupported "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched brackets in the input. It
// implements InputError.
type BracketError struct {
	// Col is the position of the offending bracket or end of input.
	Col int
	// Left is the opening bracket.
	Left string
	// Right is the mismatched closing bracket.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	if err.Right == "" {
		return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
	}
	return errpos(err.Col, "mismatched bracket: "+err.Left+"expr"+err.Right)
}

func (err *BracketError) Pos() int {
	return err.Col
}

// SeparatorError is an error indicating an illegal use of a comma separator.
// It implements InputError.
type SeparatorError struct {
	// Col is the position of the separator.
	Col int
	// Sep is the separator.
	Sep string
}

func (err *SeparatorError) Error() string {
	return errpos(err.Col, "invalid occurrence of separator "+strconv.Quote(err.Sep))
}

func (err *SeparatorError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression, or the empty string at
	// the end of the input.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// LimitError indicates an input that exceeds the bounds the calculator
// accepts, either in total length or in nesting depth.
type LimitError struct {
	// What names the exceeded bound.
	What string
	// Limit is the bound's value.
	Limit int
	// Col is the position at which the bound was exceeded, if meaningful.
	Col int
}

func (err *LimitError) Error() string {
	return errpos(err.Col, err.What+" exceeds limit of "+strconv.Itoa(err.Limit))
}

func (err *LimitError) Pos() int {
	return err.Col
}

// NameError is an error from a lookup for a name that is neither a registry
// entry nor a bound variable.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Call is whether the name was used in call syntax.
	Call bool
}

func (err *NameError) Error() string {
	if err.Call {
		return "undefined function: " + strconv.Quote(err.Name)
	}
	return "undefined variable: " + strconv.Quote(err.Name)
}

// CallError is an error indicating a function call with the wrong number of
// arguments, including a function name used with no call at all.
type CallError struct {
	// Func is the function name that was called.
	Func string
	// Len is the number of arguments the call provided.
	Len int
}

func (err *CallError) Error() string {
	return "cannot call " + err.Func + " with " + strconv.Itoa(err.Len) + " arguments"
}

// DivisionError is an error from a division, floor division, or modulus with
// a zero divisor.
type DivisionError struct {
	// Op is the operator: "/", "//", or "%".
	Op string
}

func (err *DivisionError) Error() string {
	switch err.Op {
	case "%":
		return "modulus by zero"
	case "//":
		return "floor division by zero"
	default:
		return "division by zero"
	}
}

// DomainError is an error returned when a function or operator is applied to
// arguments outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X float64
	// Func is a name identifying the function or operator.
	Func string
}

func (err *DomainError) Error() string {
	r := strconv.FormatFloat(err.X, 'g', -1, 64) + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// AssignError is an error indicating an assignment target that fails
// identifier syntax.
type AssignError struct {
	// Name is the rejected target.
	Name string
}

func (err *AssignError) Error() string {
	return "invalid variable name: " + strconv.Quote(err.Name)
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	if pos <= 0 {
		return msg
	}
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting
// from invalid input text implements InputError; errors raised during
// evaluation generally do not, as the AST no longer tracks positions.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*LexError)(nil)
	_ InputError = (*TokenError)(nil)
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*SeparatorError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*LimitError)(nil)
)
