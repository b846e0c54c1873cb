package calculator

import (
	"math"
	"sort"
)

// Context is a context for evaluating expressions: one variable table plus a
// reference to the function registry. The registry and the table are the only
// name resolution paths an expression has. It is not safe to use a Context
// concurrently; Session adds the locking discipline.
type Context struct {
	vars  map[string]float64
	funcs map[string]Func
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption(*Context)
}

type (
	varOpt struct {
		name string
		val  float64
	}
	varsOpt  map[string]float64
	funcsOpt map[string]Func
)

func (o varOpt) ctxOption(ctx *Context)  { ctx.vars[o.name] = o.val }
func (o varsOpt) ctxOption(ctx *Context) {
	for k, v := range o {
		ctx.vars[k] = v
	}
}
func (o funcsOpt) ctxOption(ctx *Context) { ctx.funcs = map[string]Func(o) }

// SetVar sets the value of a variable in the context.
func SetVar(name string, val float64) ContextOption {
	return varOpt{name, val}
}

// SetVars sets the values of any number of variables in the context.
func SetVars(vars map[string]float64) ContextOption {
	return varsOpt(vars)
}

// WithFuncs replaces the function registry for the context. The map must not
// be modified afterward; the registry is read-only by contract.
func WithFuncs(funcs map[string]Func) ContextOption {
	return funcsOpt(funcs)
}

// NewContext creates a new evaluation context over the default function
// registry.
func NewContext(opts ...ContextOption) *Context {
	ctx := Context{vars: make(map[string]float64), funcs: globalFuncs}
	for _, opt := range opts {
		opt.ctxOption(&ctx)
	}
	return &ctx
}

// Set sets the value of a variable. Returns ctx for chaining.
func (ctx *Context) Set(name string, val float64) *Context {
	ctx.vars[name] = val
	return ctx
}

// Lookup returns the value of a variable and whether it is bound.
func (ctx *Context) Lookup(name string) (float64, bool) {
	v, ok := ctx.vars[name]
	return v, ok
}

// Delete unbinds a variable. Deleting an unbound name is a no-op.
func (ctx *Context) Delete(name string) {
	delete(ctx.vars, name)
}

// Clear unbinds every variable.
func (ctx *Context) Clear() {
	ctx.vars = make(map[string]float64)
}

// Names returns the sorted names of every bound variable.
func (ctx *Context) Names() []string {
	names := make([]string, 0, len(ctx.vars))
	for k := range ctx.vars {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Clone creates a copy of a context and applies options to it. The clone
// shares the registry but not the variable table.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{vars: make(map[string]float64, len(ctx.vars)), funcs: ctx.funcs}
	for k, v := range ctx.vars {
		n.vars[k] = v
	}
	for _, opt := range opts {
		opt.ctxOption(&n)
	}
	return &n
}

// Eval evaluates an expression and returns the result. Every failure is a
// classified error; see Classify.
func (e *Expr) Eval(ctx *Context) (float64, error) {
	return ctx.eval(e.n)
}

func (ctx *Context) eval(n *node) (float64, error) {
	switch n.kind {
	case nodeNum:
		return n.val, nil
	case nodeName:
		// Variables shadow registry constants of the same name. Call syntax
		// is unaffected: sqrt(x) resolves in the registry even if a variable
		// named sqrt is bound.
		if v, ok := ctx.vars[n.name]; ok {
			return v, nil
		}
		if fn := ctx.funcs[n.name]; fn != nil {
			if fn.CanCall(0) {
				return fn.Call(nil)
			}
			return 0, &CallError{Func: n.name}
		}
		return 0, &NameError{Name: n.name}
	case nodeCall:
		fn := ctx.funcs[n.name]
		if fn == nil {
			return 0, &NameError{Name: n.name, Call: true}
		}
		if !fn.CanCall(len(n.args)) {
			return 0, &CallError{Func: n.name, Len: len(n.args)}
		}
		args := make([]float64, len(n.args))
		for i, a := range n.args {
			v, err := ctx.eval(a)
			if err != nil {
				return 0, err
			}
			args[i] = v
		}
		return fn.Call(args)
	case nodeNeg:
		v, err := ctx.eval(n.left)
		if err != nil {
			return 0, err
		}
		return -v, nil
	case nodeNop:
		return ctx.eval(n.left)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodeFloor, nodeMod, nodePow:
		l, err := ctx.eval(n.left)
		if err != nil {
			return 0, err
		}
		r, err := ctx.eval(n.right)
		if err != nil {
			return 0, err
		}
		return binaryOp(n.kind, l, r)
	default:
		panic("calculator: invalid AST node " + n.kind.String())
	}
}

func binaryOp(kind nodeKind, l, r float64) (float64, error) {
	switch kind {
	case nodeAdd:
		return l + r, nil
	case nodeSub:
		return l - r, nil
	case nodeMul:
		return l * r, nil
	case nodeDiv:
		if r == 0 {
			return 0, &DivisionError{Op: "/"}
		}
		return l / r, nil
	case nodeFloor:
		if r == 0 {
			return 0, &DivisionError{Op: "//"}
		}
		return math.Floor(l / r), nil
	case nodeMod:
		if r == 0 {
			return 0, &DivisionError{Op: "%"}
		}
		return math.Mod(l, r), nil
	case nodePow:
		// Negative base with a fractional exponent has no real result.
		if l < 0 && r != math.Trunc(r) {
			return 0, &DomainError{X: l, Func: "^"}
		}
		return math.Pow(l, r), nil
	default:
		panic("calculator: no binary operation for node kind " + kind.String())
	}
}

// EvalString is a shortcut to parse and evaluate a single expression with a
// fresh context.
func EvalString(src string, opts ...ContextOption) (float64, error) {
	a, err := Parse(src)
	if err != nil {
		return 0, err
	}
	return a.Eval(NewContext(opts...))
}
