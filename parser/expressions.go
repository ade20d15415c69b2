package parser

import (
	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/token"
)

// expression is the entry point for the whole precedence-climbing chain
// (spec.md §4.E grammar: expression := assignment).
func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment is right-associative and validates its left-hand side only
// after parsing the whole expression, the way a Pratt parser naturally
// does it: parse `logic_or` first, then if an "=" follows, re-interpret
// the already-parsed left side as an assignment target (spec.md §4.E
// "Semantic rules": "fails with invalid-assignment-target if the left is
// not Variable or property access").
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.matchAny(token.EQUAL) {
		equals := p.previous()
		value := p.assignment()

		switch target := expr.(type) {
		case *ast.Variable:
			return ast.NewAssign(target.Name, value)
		case *ast.Get:
			return &ast.Set{Object: target.Object, Name: target.Name, Value: value}
		default:
			p.errorf(equals, "invalid assignment target")
			return expr
		}
	}

	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.matchAny(token.OR) {
		op := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.matchAny(token.AND) {
		op := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.matchAny(token.BANG_EQUAL, token.EQUAL_EQUAL) {
		op := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.matchAny(token.GREATER, token.GREATER_EQUAL, token.LESS, token.LESS_EQUAL) {
		op := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.matchAny(token.PLUS, token.MINUS) {
		op := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.matchAny(token.STAR, token.SLASH) {
		op := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: op, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.matchAny(token.BANG, token.MINUS) {
		op := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: op, Right: right}
	}
	return p.call()
}

// call parses a primary expression followed by any chain of `(args)` calls
// and `.name` member accesses (spec.md §4.E grammar: call).
func (p *Parser) call() ast.Expr {
	expr := p.primary()

	for {
		switch {
		case p.matchAny(token.LPAREN):
			expr = p.finishCall(expr)
		case p.matchAny(token.DOT):
			name := p.consume(token.IDENT, "expect property name after '.'")
			expr = &ast.Get{Object: expr, Name: name}
		default:
			return expr
		}
	}
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RPAREN) {
		for {
			if len(args) >= maxArgs {
				p.errorf(p.peek(), "can't have more than %d arguments", maxArgs)
			}
			args = append(args, p.expression())
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	paren := p.consume(token.RPAREN, "expect ')' after arguments")
	return &ast.Call{Callee: callee, Paren: paren, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.matchAny(token.FALSE):
		return &ast.Literal{Token: p.previous(), Value: false}
	case p.matchAny(token.TRUE):
		return &ast.Literal{Token: p.previous(), Value: true}
	case p.matchAny(token.NIL):
		return &ast.Literal{Token: p.previous(), Value: nil}
	case p.matchAny(token.NUMBER):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal.Num}
	case p.matchAny(token.STRING):
		tok := p.previous()
		return &ast.Literal{Token: tok, Value: tok.Literal.Str}
	case p.matchAny(token.THIS):
		return ast.NewThis(p.previous())
	case p.matchAny(token.IDENT):
		return ast.NewVariable(p.previous())
	case p.matchAny(token.LPAREN):
		tok := p.previous()
		expr := p.expression()
		p.consume(token.RPAREN, "expect ')' after expression")
		return &ast.Grouping{Token: tok, Expression: expr}
	}

	p.errorf(p.peek(), "expect expression")
	panic(parseError{})
}
