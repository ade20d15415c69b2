// Package parser implements a recursive-descent, precedence-climbing parser
// over the token stream (spec.md §4.E), with panic-mode recovery across
// statement boundaries so a single syntax error doesn't abort parsing.
//
// Expressions are parsed by a direct precedence-climbing chain of methods
// (assignment → or → and → equality → comparison → term → factor → unary →
// call → primary) rather than the teacher's (internal/parser) Pratt tables
// of prefix/infix parse functions; the synchronize()-on-statement-boundary
// recovery strategy comes from the teacher's error_recovery.go.
package parser

import (
	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/token"
)

const maxArgs = 255

// Precedence levels, lowest to highest (spec.md §4.E grammar, disambiguated).
const (
	_ int = iota
	precAssignment
	precOr
	precAnd
	precEquality
	precComparison
	precTerm
	precFactor
	precUnary
	precCall
)

// Parser converts a token stream into a Program, accumulating diag.Diagnostic
// values rather than stopping at the first error (spec.md §4.E "Output").
type Parser struct {
	tokens  []token.Token
	pos     int
	diags   []diag.Diagnostic
}

// New builds a Parser over an already-scanned token stream.
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse runs scanner output through the parser and returns the resulting
// statements plus any diagnostics (spec.md §4.E "Output": "(statements,
// parser_errors). Both are always produced").
func Parse(tokens []token.Token) ([]ast.Stmt, []diag.Diagnostic) {
	p := New(tokens)
	return p.ParseProgram(), p.diags
}

func (p *Parser) ParseProgram() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.EOF) {
		stmt := p.declaration()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

func (p *Parser) Errors() []diag.Diagnostic { return p.diags }

// --- token stream helpers ---

func (p *Parser) peek() token.Token { return p.tokens[p.pos] }

func (p *Parser) peekAt(n int) token.Token {
	i := p.pos + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *Parser) previous() token.Token { return p.tokens[p.pos-1] }

func (p *Parser) check(t token.Type) bool { return p.peek().Type == t }

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.pos++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool { return p.peek().Type == token.EOF }

func (p *Parser) matchAny(types ...token.Type) bool {
	for _, t := range types {
		if p.check(t) {
			p.advance()
			return true
		}
	}
	return false
}

// consume advances past an expected token type, or records a diagnostic and
// unwinds to the nearest declaration() via a parseError panic, which
// synchronize() catches (spec.md §4.E "panic-mode resynchronization").
func (p *Parser) consume(t token.Type, message string) token.Token {
	if p.check(t) {
		return p.advance()
	}
	p.errorf(p.peek(), "%s", message)
	panic(parseError{})
}

// parseError is the panic value used to unwind from a failed consume() (or
// an unrecognized primary expression) back to declaration()'s recover(),
// which then calls synchronize(). It carries no data: the diagnostic was
// already recorded by errorf before panicking.
type parseError struct{}

func (p *Parser) errorf(tok token.Token, format string, args ...any) {
	p.diags = append(p.diags, diag.New(diag.Parser, tok.Pos, format, args...))
}

// synchronize implements panic-mode recovery (spec.md §4.E "Strategy"):
// discard tokens until the next ";" or a keyword that begins a new
// statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Type == token.SEMICOLON {
			return
		}
		switch p.peek().Type {
		case token.CLASS, token.FUN, token.VAR, token.FOR, token.IF, token.WHILE, token.PRINT, token.RETURN:
			return
		}
		p.advance()
	}
}
