// Package ast defines the Abstract Syntax Tree node types produced by the
// parser and consumed by the resolver and interpreter (spec.md §3, §4.D).
package ast

import (
	"bytes"
	"strings"

	"github.com/loxscript/loxscript/token"
)

// Node is the base interface implemented by every AST node.
type Node interface {
	// TokenLiteral returns the lexeme of the token this node is rooted at.
	TokenLiteral() string
	// String renders a parenthesized, stable form for debugging and the
	// `parse` CLI subcommand.
	String() string
	// Pos returns the node's source position for diagnostics.
	Pos() token.Position
}

// Expr is any node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any node that performs an action without itself producing a
// value.
type Stmt interface {
	Node
	stmtNode()
}

// Program is the root of the tree: the statement sequence from a full
// parse (spec.md §4.E grammar: program := declaration* EOF).
type Program struct {
	Statements []Stmt
}

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) Pos() token.Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Pos()
	}
	return token.Position{}
}

func (p *Program) String() string {
	var out bytes.Buffer
	for _, s := range p.Statements {
		out.WriteString(s.String())
		out.WriteString("\n")
	}
	return out.String()
}

// idCounter hands out the globally unique, monotonically increasing
// expr-ids that Variable/Assign/This nodes carry (spec.md §3 invariant).
// The resolver keys its distance side table by this id rather than by Go
// pointer identity, which keeps the resolve map a plain map[int]int instead
// of requiring nodes to be comparable/hashable.
var idCounter int

func nextID() int {
	idCounter++
	return idCounter
}

// ResetIDs restarts the expr-id counter. Exposed for tests and for the REPL,
// which parses and resolves one line at a time and would otherwise let ids
// grow unboundedly across a long interactive session.
func ResetIDs() {
	idCounter = 0
}

func joinExprs(exprs []Expr, sep string) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, sep)
}
