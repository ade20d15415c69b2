// Package scanner turns source text into a token stream (spec.md §4.C).
//
// It follows the single-forward-pass, accumulate-and-continue style of the
// teacher's internal/lexer package: line/column counters are tracked
// directly on the Scanner, errors are collected rather than raised, and
// scanning never panics — a malformed byte just becomes an ILLEGAL token
// and scanning continues.
package scanner

import (
	"strconv"

	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/token"
)

// Scanner converts loxscript source text into tokens.
type Scanner struct {
	src    string
	start  int // start of the current lexeme, byte offset
	pos    int // current read position, byte offset
	line   int // 0-based
	col    int // start-of-lexeme column
	curCol int // current column
	diags  []diag.Diagnostic
}

// New creates a Scanner over src.
func New(src string) *Scanner {
	return &Scanner{src: src}
}

// Scan tokenizes the whole source, always appending a trailing EOF token
// (spec.md §4.C, §8 invariant: "exactly one Eof token, always last").
func Scan(src string) ([]token.Token, []diag.Diagnostic) {
	s := New(src)
	return s.ScanAll()
}

// ScanAll runs the scanner to completion.
func (s *Scanner) ScanAll() ([]token.Token, []diag.Diagnostic) {
	var toks []token.Token
	for {
		tok, ok := s.next()
		if ok {
			toks = append(toks, tok)
		}
		if tok.Type == token.EOF {
			break
		}
	}
	return toks, s.diags
}

func (s *Scanner) atEnd() bool {
	return s.pos >= len(s.src)
}

func (s *Scanner) advance() byte {
	c := s.src[s.pos]
	s.pos++
	s.curCol++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) peekNext() byte {
	if s.pos+1 >= len(s.src) {
		return 0
	}
	return s.src[s.pos+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.pos] != expected {
		return false
	}
	s.pos++
	s.curCol++
	return true
}

func (s *Scanner) newline() {
	s.line++
	s.curCol = 0
}

func (s *Scanner) startPos() token.Position {
	return token.Position{Line: s.line, Column: s.col}
}

func (s *Scanner) errorf(format string, args ...any) {
	s.diags = append(s.diags, diag.New(diag.Scanner, s.startPos(), format, args...))
}

func (s *Scanner) make(t token.Type) token.Token {
	return token.Token{Type: t, Lexeme: s.src[s.start:s.pos], Pos: s.startPos()}
}

func (s *Scanner) makeLiteral(t token.Type, lit token.Literal) token.Token {
	tok := s.make(t)
	tok.Literal = lit
	return tok
}

// next skips whitespace and comments, then scans exactly one token. When
// skipping consumes everything that remains, the token is EOF. ok is true
// on every return.
func (s *Scanner) next() (token.Token, bool) {
	s.skipWhitespaceAndComments()

	s.start = s.pos
	s.col = s.curCol

	if s.atEnd() {
		return s.make(token.EOF), true
	}

	c := s.advance()

	switch {
	case isDigit(c):
		return s.number(), true
	case isAlpha(c):
		return s.identifier(), true
	}

	switch c {
	case '(':
		return s.make(token.LPAREN), true
	case ')':
		return s.make(token.RPAREN), true
	case '{':
		return s.make(token.LBRACE), true
	case '}':
		return s.make(token.RBRACE), true
	case ',':
		return s.make(token.COMMA), true
	case '.':
		return s.make(token.DOT), true
	case '-':
		return s.make(token.MINUS), true
	case '+':
		return s.make(token.PLUS), true
	case ';':
		return s.make(token.SEMICOLON), true
	case '*':
		return s.make(token.STAR), true
	case '!':
		if s.match('=') {
			return s.make(token.BANG_EQUAL), true
		}
		return s.make(token.BANG), true
	case '=':
		if s.match('=') {
			return s.make(token.EQUAL_EQUAL), true
		}
		return s.make(token.EQUAL), true
	case '<':
		if s.match('=') {
			return s.make(token.LESS_EQUAL), true
		}
		return s.make(token.LESS), true
	case '>':
		if s.match('=') {
			return s.make(token.GREATER_EQUAL), true
		}
		return s.make(token.GREATER), true
	case '/':
		return s.make(token.SLASH), true
	case '"':
		return s.str(), true
	}

	s.errorf("unexpected character %q", c)
	return s.make(token.ILLEGAL), true
}

// skipWhitespaceAndComments consumes whitespace, `//` line comments, and
// `/* ... */` block comments — which nest, per spec.md §4.C — leaving s.pos
// at the start of the next real token (or EOF).
func (s *Scanner) skipWhitespaceAndComments() {
	for !s.atEnd() {
		c := s.peek()
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			s.advance()
		case c == '\n':
			s.advance()
			s.newline()
		case c == '/' && s.peekNext() == '/':
			for !s.atEnd() && s.peek() != '\n' {
				s.advance()
			}
		case c == '/' && s.peekNext() == '*':
			s.blockComment()
		default:
			return
		}
	}
}

func (s *Scanner) blockComment() {
	startLine := s.line
	startCol := s.curCol
	s.advance() // '/'
	s.advance() // '*'
	depth := 1
	for depth > 0 {
		if s.atEnd() {
			s.diags = append(s.diags, diag.New(diag.Scanner, token.Position{Line: startLine, Column: startCol}, "unterminated block comment"))
			return
		}
		switch {
		case s.peek() == '/' && s.peekNext() == '*':
			s.advance()
			s.advance()
			depth++
		case s.peek() == '*' && s.peekNext() == '/':
			s.advance()
			s.advance()
			depth--
		case s.peek() == '\n':
			s.advance()
			s.newline()
		default:
			s.advance()
		}
	}
}

func (s *Scanner) str() token.Token {
	for !s.atEnd() && s.peek() != '"' {
		if s.advance() == '\n' {
			s.newline()
		}
	}

	if s.atEnd() {
		s.errorf("unterminated string")
		return s.make(token.ILLEGAL)
	}

	s.advance() // closing quote
	value := s.src[s.start+1 : s.pos-1]
	return s.makeLiteral(token.STRING, token.Literal{Kind: token.StringLiteral, Str: value})
}

func (s *Scanner) number() token.Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance() // consume '.'
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	text := s.src[s.start:s.pos]
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		s.errorf("invalid number literal %q", text)
		return s.make(token.ILLEGAL)
	}
	return s.makeLiteral(token.NUMBER, token.Literal{Kind: token.NumberLiteral, Num: n})
}

func (s *Scanner) identifier() token.Token {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.pos]
	return s.make(token.LookupIdent(text))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
