package calculator

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"unicode"
)

// Result is the outcome of one successful evaluation: either a numeric value
// or an acknowledgment of a variable assignment.
type Result struct {
	// Value is the computed value. For an assignment, it is the value that
	// was bound.
	Value float64
	// Name is the assignment target, if any.
	Name string
	// Assign is whether the input was an assignment.
	Assign bool
}

func (r Result) String() string {
	if r.Assign {
		return r.Name + " = " + FormatValue(r.Value)
	}
	return FormatValue(r.Value)
}

// FormatValue renders a value the way the calculator prints results:
// integral values without a decimal part, everything else in compact form.
func FormatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Session owns one variable table and serializes every use of it, so a
// single session may back concurrent callers. Failed evaluations never
// change the table; variables survive any number of failures.
type Session struct {
	mu  sync.Mutex
	ctx *Context
}

// NewSession creates a session with an empty variable table over the default
// function registry.
func NewSession(opts ...ContextOption) *Session {
	return &Session{ctx: NewContext(opts...)}
}

// Evaluate parses and evaluates one input, which is either an expression or
// an assignment of the form "name = expression". On a successful assignment
// the value is bound into the session's table and the result acknowledges the
// binding; otherwise the result carries the computed value.
func (s *Session) Evaluate(input string) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	name, src, assign, err := splitAssign(input)
	if err != nil {
		return Result{}, err
	}
	if !assign {
		src = input
	}
	a, err := Parse(src)
	if err != nil {
		return Result{}, err
	}
	v, err := a.Eval(s.ctx)
	if err != nil {
		return Result{}, err
	}
	if assign {
		s.ctx.Set(name, v)
		return Result{Value: v, Name: name, Assign: true}, nil
	}
	return Result{Value: v}, nil
}

// splitAssign detects the assignment form. The first '=' that is not part of
// a two-character comparison token splits the input; tokens like ==, <=, >=,
// and != are left for the parser to reject as unsupported operators.
func splitAssign(input string) (name, expr string, assign bool, err error) {
	for i := 0; i < len(input); i++ {
		if input[i] != '=' {
			continue
		}
		if i+1 < len(input) && input[i+1] == '=' {
			i++
			continue
		}
		if i > 0 && strings.IndexByte("=<>!", input[i-1]) >= 0 {
			continue
		}
		name = strings.TrimSpace(input[:i])
		if !IsIdentifier(name) {
			return "", "", false, &AssignError{Name: name}
		}
		return name, input[i+1:], true, nil
	}
	return "", "", false, nil
}

// IsIdentifier reports whether name is a valid variable name: a letter or
// underscore followed by letters, digits, or underscores.
func IsIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', unicode.IsLetter(r):
		case unicode.IsDigit(r) && i > 0:
		default:
			return false
		}
	}
	return true
}

// Set binds a variable directly, validating the name the same way assignment
// does.
func (s *Session) Set(name string, val float64) error {
	if !IsIdentifier(name) {
		return &AssignError{Name: name}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx.Set(name, val)
	return nil
}

// Lookup returns the value of a variable and whether it is bound.
func (s *Session) Lookup(name string) (float64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx.Lookup(name)
}

// Delete unbinds the named variables. Unbound names are ignored.
func (s *Session) Delete(names ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, name := range names {
		s.ctx.Delete(name)
	}
}

// Clear unbinds every variable.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ctx.Clear()
}

// Vars returns the sorted names of every bound variable.
func (s *Session) Vars() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx.Names()
}
