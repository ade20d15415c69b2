package ast

import (
	"bytes"
	"fmt"

	"github.com/loxscript/loxscript/token"
)

// Literal is a number, string, boolean, or nil constant (spec.md §3 Value).
type Literal struct {
	Token token.Token
	Value any // float64 | string | bool | nil
}

func (l *Literal) exprNode()               {}
func (l *Literal) TokenLiteral() string    { return l.Token.Lexeme }
func (l *Literal) Pos() token.Position     { return l.Token.Pos }
func (l *Literal) String() string {
	if l.Value == nil {
		return "nil"
	}
	switch v := l.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Token      token.Token // the "("
	Expression Expr
}

func (g *Grouping) exprNode()            {}
func (g *Grouping) TokenLiteral() string { return g.Token.Lexeme }
func (g *Grouping) Pos() token.Position  { return g.Token.Pos }
func (g *Grouping) String() string       { return "(group " + g.Expression.String() + ")" }

// Unary is a prefix operator expression: `!x`, `-x`.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (u *Unary) exprNode()            {}
func (u *Unary) TokenLiteral() string { return u.Operator.Lexeme }
func (u *Unary) Pos() token.Position  { return u.Operator.Pos }
func (u *Unary) String() string {
	return "(" + u.Operator.Lexeme + " " + u.Right.String() + ")"
}

// Binary is an infix arithmetic/comparison operator expression.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (b *Binary) exprNode()            {}
func (b *Binary) TokenLiteral() string { return b.Operator.Lexeme }
func (b *Binary) Pos() token.Position  { return b.Operator.Pos }
func (b *Binary) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(b.Operator.Lexeme)
	out.WriteString(" ")
	out.WriteString(b.Left.String())
	out.WriteString(" ")
	out.WriteString(b.Right.String())
	out.WriteString(")")
	return out.String()
}

// Logical is `and`/`or`, kept distinct from Binary because it short-circuits
// (spec.md §4.H).
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (l *Logical) exprNode()            {}
func (l *Logical) TokenLiteral() string { return l.Operator.Lexeme }
func (l *Logical) Pos() token.Position  { return l.Operator.Pos }
func (l *Logical) String() string {
	return "(" + l.Operator.Lexeme + " " + l.Left.String() + " " + l.Right.String() + ")"
}

// Variable is a read of a named binding. ID is the expr-id the resolver
// keys its resolve map by (spec.md §3 invariant).
type Variable struct {
	Name token.Token
	ID   int
}

func NewVariable(name token.Token) *Variable { return &Variable{Name: name, ID: nextID()} }

func (v *Variable) exprNode()            {}
func (v *Variable) TokenLiteral() string { return v.Name.Lexeme }
func (v *Variable) Pos() token.Position  { return v.Name.Pos }
func (v *Variable) String() string       { return v.Name.Lexeme }

// Assign is `name = value`. ID plays the same role as Variable.ID.
type Assign struct {
	Name  token.Token
	Value Expr
	ID    int
}

func NewAssign(name token.Token, value Expr) *Assign {
	return &Assign{Name: name, Value: value, ID: nextID()}
}

func (a *Assign) exprNode()            {}
func (a *Assign) TokenLiteral() string { return a.Name.Lexeme }
func (a *Assign) Pos() token.Position  { return a.Name.Pos }
func (a *Assign) String() string       { return "(= " + a.Name.Lexeme + " " + a.Value.String() + ")" }

// Call is a function/class invocation: `callee(args...)`.
type Call struct {
	Callee Expr
	Paren  token.Token // the closing ")", for error reporting on arity mismatch
	Args   []Expr
}

func (c *Call) exprNode()            {}
func (c *Call) TokenLiteral() string { return c.Paren.Lexeme }
func (c *Call) Pos() token.Position  { return c.Callee.Pos() }
func (c *Call) String() string {
	return "(call " + c.Callee.String() + " " + joinExprs(c.Args, " ") + ")"
}

// Get is property/method access: `object.name`.
type Get struct {
	Object Expr
	Name   token.Token
}

func (g *Get) exprNode()            {}
func (g *Get) TokenLiteral() string { return g.Name.Lexeme }
func (g *Get) Pos() token.Position  { return g.Object.Pos() }
func (g *Get) String() string       { return "(get " + g.Object.String() + " " + g.Name.Lexeme + ")" }

// Set is property assignment: `object.name = value`.
type Set struct {
	Object Expr
	Name   token.Token
	Value  Expr
}

func (s *Set) exprNode()            {}
func (s *Set) TokenLiteral() string { return s.Name.Lexeme }
func (s *Set) Pos() token.Position  { return s.Object.Pos() }
func (s *Set) String() string {
	return "(set " + s.Object.String() + " " + s.Name.Lexeme + " " + s.Value.String() + ")"
}

// This is a `this` reference inside a method body. ID plays the same role
// as Variable.ID — directly in a method body the resolver resolves it to
// distance 1 (spec.md §9 "`this` binding"); each block or function nested
// inside the method adds one more.
type This struct {
	Keyword token.Token
	ID      int
}

func NewThis(keyword token.Token) *This { return &This{Keyword: keyword, ID: nextID()} }

func (t *This) exprNode()            {}
func (t *This) TokenLiteral() string { return t.Keyword.Lexeme }
func (t *This) Pos() token.Position  { return t.Keyword.Pos }
func (t *This) String() string       { return "this" }
