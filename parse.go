package calculator

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Expr = Term { binop Term }
// Term = num | name | Call | unop Term | '(' Expr ')' | '[' Expr ']' | '{' Expr '}'
// Call = name '(' [ Expr { ',' Expr } ] ')'
//
// binop is one of + - * / // % ^ ** × ÷ and unop is + or -. ^ and ** are the
// same operator and bind right-associatively; everything else associates left.

const (
	// MaxExprLen is the maximum length in bytes of an input accepted by
	// Parse. Longer inputs fail with a LimitError before lexing.
	MaxExprLen = 1024
	// MaxNesting is the maximum depth of nested terms in one expression.
	MaxNesting = 64
)

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of identifiers referenced as variables. A name that
	// happens to match a registry constant still appears here, since a
	// variable of the same name would shadow it.
	names []string
}

// Parse parses an expression so it can be evaluated with a context.
func Parse(src string) (*Expr, error) {
	if len(src) > MaxExprLen {
		return nil, &LimitError{What: "expression length", Limit: MaxExprLen}
	}
	p := parser{scan: lex(src), names: make(map[string]bool)}
	n, err := p.parseTerm(exprPrec)
	if err != nil {
		return nil, err
	}
	if tok := p.scan.must(); tok.kind != tokenEOF {
		return nil, endError(tok, -1)
	}
	ex := Expr{n: n, names: make([]string, 0, len(p.names))}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sort.Strings(ex.names)
	return &ex, nil
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append([]string(nil), e.names...)
}

// String creates a fully parenthesized string representation of the parsed
// expression.
func (e *Expr) String() string {
	return e.n.String()
}

type parser struct {
	scan  *lexer
	names map[string]bool
	depth int
}

func (p *parser) enter(col int) error {
	p.depth++
	if p.depth > MaxNesting {
		return &LimitError{What: "nesting depth", Limit: MaxNesting, Col: col}
	}
	return nil
}

func (p *parser) leave() {
	p.depth--
}

// parseTerm parses a term and every following binary operation that binds
// more tightly than until. If there is no error, then parseTerm pushes the
// token that ended the term, including EOF.
func (p *parser) parseTerm(until operator) (*node, error) {
	n, err := p.parseLhs(until)
	if err != nil {
		return nil, err
	}
	for {
		tok, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenOp:
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text}
			}
			if !prec.moreBinding(until) {
				p.scan.push(tok)
				return n, nil
			}
			rhs, err := p.parseTerm(prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			p.scan.push(tok)
			return n, nil
		case tokenNum, tokenIdent, tokenOpen:
			// Adjacent terms with no operator between, e.g. "2 x".
			return nil, &TokenError{Col: tok.pos, Token: tok.text}
		default:
			panic("calculator: unknown token: " + tok.String())
		}
	}
}

// parseLhs parses the first component of a term. Any encountered token must
// be valid as the start of a subexpression.
func (p *parser) parseLhs(until operator) (*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if err := p.enter(tok.pos); err != nil {
		return nil, err
	}
	defer p.leave()
	switch tok.kind {
	case tokenNum:
		v, err := numValue(tok)
		if err != nil {
			return nil, err
		}
		return &node{kind: nodeNum, val: v}, nil
	case tokenIdent:
		nxt, err := p.scan.next()
		if err != nil {
			return nil, err
		}
		if nxt.kind == tokenOpen {
			return p.parseCall(tok, nxt)
		}
		p.scan.push(nxt)
		p.names[tok.text] = true
		return &node{kind: nodeName, name: tok.text}, nil
	case tokenOp:
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Unary: true}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := p.parseTerm(prec)
		if err != nil {
			return nil, err
		}
		return &node{kind: prec.op, left: rhs}, nil
	case tokenOpen:
		match := rightBracket(tok.text)
		rhs, err := p.parseTerm(exprPrec)
		if err != nil {
			return nil, err
		}
		end := p.scan.must()
		if end.kind != tokenClose || end.text != string(closeBrackets[match]) {
			return nil, endError(end, match)
		}
		return rhs, nil
	case tokenClose:
		return nil, &EmptyExpressionError{Col: tok.pos, End: tok.text}
	case tokenSep:
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenEOF:
		return nil, &EmptyExpressionError{Col: tok.pos}
	default:
		panic("calculator: unknown token: " + tok.String())
	}
}

// parseCall parses the bracketed argument list of a call to the named
// function. Which function that is, and whether it exists at all, is resolved
// at evaluation time.
func (p *parser) parseCall(fn, open lexToken) (*node, error) {
	match := rightBracket(open.text)
	args, err := p.parseArgs(open)
	if err != nil {
		return nil, err
	}
	end := p.scan.must()
	if end.kind != tokenClose {
		panic("calculator: parseArgs ended on " + end.String() + " instead of close bracket")
	}
	if end.text != string(closeBrackets[match]) {
		return nil, &BracketError{Col: end.pos, Left: open.text, Right: end.text}
	}
	return &node{kind: nodeCall, name: fn.text, args: args}, nil
}

// parseArgs parses a bracketed list of zero or more arguments. The close
// bracket is left pushed for the caller to match.
func (p *parser) parseArgs(open lexToken) ([]*node, error) {
	tok, err := p.scan.next()
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenClose {
		// Niladic call.
		p.scan.push(tok)
		return nil, nil
	}
	p.scan.push(tok)
	var args []*node
	for {
		a, err := p.parseTerm(exprPrec)
		if err != nil {
			// Reporting mismatched brackets is more helpful than an empty
			// expression at EOF, if that's what we'd do here.
			if ee := (*EmptyExpressionError)(nil); errors.As(err, &ee) && ee.End == "" {
				err = &BracketError{Col: ee.Col, Left: open.text}
			}
			return nil, err
		}
		args = append(args, a)
		end := p.scan.must()
		switch end.kind {
		case tokenClose:
			p.scan.push(end)
			return args, nil
		case tokenSep:
			// Next argument.
		case tokenEOF:
			return nil, &BracketError{Col: end.pos, Left: open.text}
		default:
			panic("calculator: parseTerm ended on non-end token " + end.String())
		}
	}
}

// numValue converts a scanned number token to its value. Values beyond the
// float64 range become infinities rather than errors.
func numValue(tok lexToken) (float64, error) {
	v, err := strconv.ParseFloat(tok.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
	}
	return v, nil
}

// rightBracket gets the closing bracket index for an opening bracket.
func rightBracket(left string) int {
	k := strings.Index(openBrackets, left)
	if k < 0 {
		panic("calculator: invalid bracket " + strconv.Quote(left))
	}
	return k
}

// leftBracket gets the opening bracket matching the bracket index. If match
// is negative, then the result is the empty string.
func leftBracket(match int) string {
	if match < 0 {
		return ""
	}
	return string(openBrackets[match])
}

// endError returns an error appropriate for an unexpected token at the end of
// a subexpression. match is the bracket index that the expression should have
// matched, or -1 if none.
func endError(tok lexToken, match int) error {
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Left: leftBracket(match)}
	case tokenClose:
		return &BracketError{Col: tok.pos, Left: leftBracket(match), Right: tok.text}
	case tokenSep:
		return &SeparatorError{Col: tok.pos, Sep: tok.text}
	default:
		panic("calculator: it really should not have ended this way: " + tok.String())
	}
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*", "×":
		return operator{5, false, nodeMul}
	case "/", "÷":
		return operator{5, false, nodeDiv}
	case "//":
		return operator{5, false, nodeFloor}
	case "%":
		return operator{5, false, nodeMod}
	case "^", "**":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

// exprPrec is the precedence required to parse an entire subexpression.
var exprPrec = operator{-128, true, nodeNone}
