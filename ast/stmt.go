package ast

import (
	"bytes"
	"strings"

	"github.com/loxscript/loxscript/token"
)

// ExpressionStmt evaluates an expression for its side effects and discards
// the value, except at the top level of the REPL (pkg/loxscript surfaces
// that last value as Result.Value).
type ExpressionStmt struct {
	Token      token.Token
	Expression Expr
}

func (s *ExpressionStmt) stmtNode()            {}
func (s *ExpressionStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *ExpressionStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ExpressionStmt) String() string       { return s.Expression.String() + ";" }

// PrintStmt is `print expr;`.
type PrintStmt struct {
	Token      token.Token
	Expression Expr
}

func (s *PrintStmt) stmtNode()            {}
func (s *PrintStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *PrintStmt) Pos() token.Position  { return s.Token.Pos }
func (s *PrintStmt) String() string       { return "(print " + s.Expression.String() + ")" }

// VarStmt is `var name = init;` (init may be nil).
type VarStmt struct {
	Token token.Token
	Name  token.Token
	Init  Expr
}

func (s *VarStmt) stmtNode()            {}
func (s *VarStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *VarStmt) Pos() token.Position  { return s.Token.Pos }
func (s *VarStmt) String() string {
	if s.Init == nil {
		return "(var " + s.Name.Lexeme + ")"
	}
	return "(var " + s.Name.Lexeme + " " + s.Init.String() + ")"
}

// BlockStmt is `{ stmts }`, introducing a new lexical scope.
type BlockStmt struct {
	Token      token.Token // the "{"
	Statements []Stmt
}

func (s *BlockStmt) stmtNode()            {}
func (s *BlockStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *BlockStmt) Pos() token.Position  { return s.Token.Pos }
func (s *BlockStmt) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for _, st := range s.Statements {
		out.WriteString(" ")
		out.WriteString(st.String())
	}
	out.WriteString(" }")
	return out.String()
}

// IfStmt is `if (cond) then [else alt]`.
type IfStmt struct {
	Token     token.Token
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) stmtNode()            {}
func (s *IfStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *IfStmt) Pos() token.Position  { return s.Token.Pos }
func (s *IfStmt) String() string {
	var out bytes.Buffer
	out.WriteString("(if ")
	out.WriteString(s.Condition.String())
	out.WriteString(" ")
	out.WriteString(s.Then.String())
	if s.Else != nil {
		out.WriteString(" else ")
		out.WriteString(s.Else.String())
	}
	out.WriteString(")")
	return out.String()
}

// WhileStmt is `while (cond) body`.
type WhileStmt struct {
	Token     token.Token
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) stmtNode()            {}
func (s *WhileStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *WhileStmt) Pos() token.Position  { return s.Token.Pos }
func (s *WhileStmt) String() string {
	return "(while " + s.Condition.String() + " " + s.Body.String() + ")"
}

// ForStmt is the C-style `for (init; cond; after) body` form (spec.md
// §4.E). The interpreter executes it directly rather than rewriting it
// into a While node, so that `continue` still runs `after` before
// re-testing Condition (see parser.(*Parser).forStmt for why a textual
// desugaring into "body; after" as a single block would break that).
type ForStmt struct {
	Token     token.Token
	Init      Stmt // VarStmt | ExpressionStmt | nil
	Condition Expr // nil means "true"
	After     Expr // nil means no increment
	Body      Stmt
}

func (s *ForStmt) stmtNode()            {}
func (s *ForStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *ForStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ForStmt) String() string       { return "(for " + s.Body.String() + ")" }

// FnStmt is a named function declaration.
type FnStmt struct {
	Token  token.Token
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FnStmt) stmtNode()            {}
func (s *FnStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *FnStmt) Pos() token.Position  { return s.Token.Pos }
func (s *FnStmt) String() string {
	params := make([]string, len(s.Params))
	for i, p := range s.Params {
		params[i] = p.Lexeme
	}
	return "(fun " + s.Name.Lexeme + "(" + strings.Join(params, ", ") + "))"
}

// ReturnStmt is `return [value];`.
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr // nil means implicit nil
}

func (s *ReturnStmt) stmtNode()            {}
func (s *ReturnStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *ReturnStmt) Pos() token.Position  { return s.Keyword.Pos }
func (s *ReturnStmt) String() string {
	if s.Value == nil {
		return "(return)"
	}
	return "(return " + s.Value.String() + ")"
}

// BreakStmt is `break;`.
type BreakStmt struct{ Keyword token.Token }

func (s *BreakStmt) stmtNode()            {}
func (s *BreakStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *BreakStmt) Pos() token.Position  { return s.Keyword.Pos }
func (s *BreakStmt) String() string       { return "(break)" }

// ContinueStmt is `continue;`.
type ContinueStmt struct{ Keyword token.Token }

func (s *ContinueStmt) stmtNode()            {}
func (s *ContinueStmt) TokenLiteral() string { return s.Keyword.Lexeme }
func (s *ContinueStmt) Pos() token.Position  { return s.Keyword.Pos }
func (s *ContinueStmt) String() string       { return "(continue)" }

// ClassStmt declares a single-level class with a constructor-by-parameter-
// list (spec.md §9): `class Name(params) { methods }`.
type ClassStmt struct {
	Token       token.Token
	Name        token.Token
	InitParams  []token.Token
	Methods     []*FnStmt
}

func (s *ClassStmt) stmtNode()            {}
func (s *ClassStmt) TokenLiteral() string { return s.Token.Lexeme }
func (s *ClassStmt) Pos() token.Position  { return s.Token.Pos }
func (s *ClassStmt) String() string {
	var out bytes.Buffer
	out.WriteString("(class " + s.Name.Lexeme + " ")
	for _, m := range s.Methods {
		out.WriteString(m.String())
		out.WriteString(" ")
	}
	out.WriteString(")")
	return out.String()
}
