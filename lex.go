package calculator

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is an integer or real token.
	tokenNum
	// tokenIdent is a variable or function name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket, e.g. (.
	tokenOpen
	// tokenClose is a close bracket, e.g. ).
	tokenClose
	// tokenSep is a function arguments separator.
	tokenSep
)

func (k tokenKind) String() string {
	switch k {
	case tokenNone:
		return "None"
	case tokenEOF:
		return "EOF"
	case tokenNum:
		return "Num"
	case tokenIdent:
		return "Ident"
	case tokenOp:
		return "Op"
	case tokenOpen:
		return "Open"
	case tokenClose:
		return "Close"
	case tokenSep:
		return "Sep"
	default:
		return "tokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// operatorRunes contains the runes which may begin an operator token. The
// doubled forms **, //, ==, <=, >=, and != lex as single tokens; whether an
// operator is actually implemented is the parser's decision.
const operatorRunes = "+-*/%^×÷=<>!"

// openBrackets and closeBrackets contain the runes which group expressions.
// A bracket at byte position k in openBrackets matches the bracket at byte
// position k in closeBrackets.
const (
	openBrackets  = "([{"
	closeBrackets = ")]}"
)

type lexer struct {
	src string
	// off is the byte offset of the next rune.
	off int
	// rune is the 1-based rune column of the next rune.
	rune int
	p    lexToken
}

func lex(src string) *lexer {
	return &lexer{src: src, rune: 1}
}

// push unreads a token so that it is the next token returned from next.
// Panics if there is already a pushed token.
func (l *lexer) push(tok lexToken) {
	if l.p.kind != tokenNone {
		panic("calculator: double push")
	}
	l.p = tok
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	tok := l.p
	if tok.kind == tokenNone {
		panic("calculator: no pushed token")
	}
	l.p = lexToken{}
	return tok
}

// peek decodes the next rune without consuming it. A size of zero indicates
// the end of the input.
func (l *lexer) peek() (rune, int) {
	if l.off >= len(l.src) {
		return 0, 0
	}
	return utf8.DecodeRuneInString(l.src[l.off:])
}

func (l *lexer) advance(sz int) {
	l.off += sz
	l.rune++
}

// next scans the next token from the input. At the end of the input, the
// result is an EOF token with a nil error, every time.
func (l *lexer) next() (lexToken, error) {
	if l.p.kind != tokenNone {
		tok := l.p
		l.p = lexToken{}
		return tok, nil
	}
	for {
		r, sz := l.peek()
		if sz == 0 {
			return lexToken{kind: tokenEOF, pos: l.rune}, nil
		}
		if unicode.IsSpace(r) {
			l.advance(sz)
			continue
		}
		tok := lexToken{pos: l.rune}
		switch {
		case '0' <= r && r <= '9', r == '.':
			text, err := l.scanNum()
			if err != nil {
				return tok, err
			}
			tok.text, tok.kind = text, tokenNum
		case r == '_', unicode.IsLetter(r):
			tok.text, tok.kind = l.scanIdent(), tokenIdent
		case r == ',':
			l.advance(sz)
			tok.text, tok.kind = ",", tokenSep
		case strings.ContainsRune(openBrackets, r):
			l.advance(sz)
			tok.text, tok.kind = string(r), tokenOpen
		case strings.ContainsRune(closeBrackets, r):
			l.advance(sz)
			tok.text, tok.kind = string(r), tokenClose
		case strings.ContainsRune(operatorRunes, r):
			tok.text, tok.kind = l.scanOp(), tokenOp
		default:
			l.advance(sz)
			return tok, &LexError{Text: string(r), Col: tok.pos}
		}
		return tok, nil
	}
}

// scanOp scans an operator token, joining the recognized two-character forms.
func (l *lexer) scanOp() string {
	r, sz := l.peek()
	l.advance(sz)
	op := string(r)
	if r2, sz2 := l.peek(); sz2 > 0 {
		switch op + string(r2) {
		case "**", "//", "==", "<=", ">=", "!=":
			l.advance(sz2)
			return op + string(r2)
		}
	}
	return op
}

func (l *lexer) scanNum() (string, error) {
	start, col := l.off, l.rune
	var dig, dot, e, le, ed bool
scan:
	for {
		r, sz := l.peek()
		if sz == 0 {
			break
		}
		switch {
		case r == '+' || r == '-':
			// + or - anywhere other than immediately following an exponent
			// marker means a new token, as it is an operator.
			if !le {
				break scan
			}
			le = false
		case r == '.':
			if dot || e {
				l.advance(sz)
				return "", &LexError{Text: l.src[start:l.off], Kind: "number", Col: col}
			}
			dot, le = true, false
		case r == 'e' || r == 'E':
			if !dig || e {
				l.advance(sz)
				return "", &LexError{Text: l.src[start:l.off], Kind: "number", Col: col}
			}
			e, le = true, true
		case '0' <= r && r <= '9':
			if e {
				ed = true
			} else {
				dig = true
			}
			le = false
		default:
			break scan
		}
		l.advance(sz)
	}
	if (!dig && !ed) || (e && !ed) {
		return "", &LexError{Text: l.src[start:l.off], Kind: "number", Col: col}
	}
	return l.src[start:l.off], nil
}

// scanIdent scans an identifier: a letter or underscore followed by letters,
// digits, or underscores. Unlike some languages, '.' is never part of an
// identifier, so dotted member chains cannot lex as a single name.
func (l *lexer) scanIdent() string {
	start := l.off
	for {
		r, sz := l.peek()
		if sz == 0 {
			break
		}
		if r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r) {
			l.advance(sz)
			continue
		}
		break
	}
	return l.src[start:l.off]
}
