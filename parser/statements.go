package parser

import (
	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/token"
)

// declaration parses one top-level-or-block item, recovering from the
// nearest statement boundary on error (spec.md §4.E grammar: declaration).
func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			p.synchronize()
		}
	}()

	switch {
	case p.matchAny(token.CLASS):
		return p.classDecl()
	case p.matchAny(token.FUN):
		return p.fnDecl("function")
	case p.matchAny(token.VAR):
		return p.varDecl()
	default:
		return p.statement()
	}
}

func (p *Parser) classDecl() ast.Stmt {
	tok := p.previous()
	name := p.consume(token.IDENT, "expect class name")

	var initParams []token.Token
	if p.matchAny(token.LPAREN) {
		if !p.check(token.RPAREN) {
			for {
				if len(initParams) >= maxArgs {
					p.errorf(p.peek(), "can't have more than %d parameters", maxArgs)
				}
				initParams = append(initParams, p.consume(token.IDENT, "expect parameter name"))
				if !p.matchAny(token.COMMA) {
					break
				}
			}
		}
		p.consume(token.RPAREN, "expect ')' after class parameters")
	}

	p.consume(token.LBRACE, "expect '{' before class body")

	var methods []*ast.FnStmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		m := p.fnDecl("method")
		if fn, ok := m.(*ast.FnStmt); ok {
			methods = append(methods, fn)
		}
	}
	p.consume(token.RBRACE, "expect '}' after class body")

	return &ast.ClassStmt{Token: tok, Name: name, InitParams: initParams, Methods: methods}
}

func (p *Parser) fnDecl(kind string) ast.Stmt {
	tok := p.previous()
	name := p.consume(token.IDENT, "expect "+kind+" name")
	p.consume(token.LPAREN, "expect '(' after "+kind+" name")

	var params []token.Token
	if !p.check(token.RPAREN) {
		for {
			if len(params) >= maxArgs {
				p.errorf(p.peek(), "can't have more than %d parameters", maxArgs)
			}
			params = append(params, p.consume(token.IDENT, "expect parameter name"))
			if !p.matchAny(token.COMMA) {
				break
			}
		}
	}
	p.consume(token.RPAREN, "expect ')' after parameters")
	p.consume(token.LBRACE, "expect '{' before "+kind+" body")
	body := p.block()

	return &ast.FnStmt{Token: tok, Name: name, Params: params, Body: body}
}

func (p *Parser) varDecl() ast.Stmt {
	tok := p.previous()
	name := p.consume(token.IDENT, "expect variable name")

	var init ast.Expr
	if p.matchAny(token.EQUAL) {
		init = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after variable declaration")
	return &ast.VarStmt{Token: tok, Name: name, Init: init}
}

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.matchAny(token.PRINT):
		return p.printStmt()
	case p.matchAny(token.LBRACE):
		tok := p.previous()
		return &ast.BlockStmt{Token: tok, Statements: p.block()}
	case p.matchAny(token.IF):
		return p.ifStmt()
	case p.matchAny(token.WHILE):
		return p.whileStmt()
	case p.matchAny(token.FOR):
		return p.forStmt()
	case p.matchAny(token.RETURN):
		return p.returnStmt()
	case p.matchAny(token.BREAK):
		tok := p.previous()
		p.consume(token.SEMICOLON, "expect ';' after 'break'")
		return &ast.BreakStmt{Keyword: tok}
	case p.matchAny(token.CONTINUE):
		tok := p.previous()
		p.consume(token.SEMICOLON, "expect ';' after 'continue'")
		return &ast.ContinueStmt{Keyword: tok}
	default:
		return p.exprStmt()
	}
}

func (p *Parser) block() []ast.Stmt {
	var stmts []ast.Stmt
	for !p.check(token.RBRACE) && !p.isAtEnd() {
		stmts = append(stmts, p.declaration())
	}
	p.consume(token.RBRACE, "expect '}' after block")
	return stmts
}

func (p *Parser) printStmt() ast.Stmt {
	tok := p.previous()
	value := p.expression()
	p.consume(token.SEMICOLON, "expect ';' after value")
	return &ast.PrintStmt{Token: tok, Expression: value}
}

func (p *Parser) exprStmt() ast.Stmt {
	expr := p.expression()
	tok := p.previous()
	p.consume(token.SEMICOLON, "expect ';' after expression")
	return &ast.ExpressionStmt{Token: tok, Expression: expr}
}

func (p *Parser) ifStmt() ast.Stmt {
	tok := p.previous()
	p.consume(token.LPAREN, "expect '(' after 'if'")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after if condition")

	then := p.statement()
	var elseBranch ast.Stmt
	// Greedy binding: `else` attaches to the nearest preceding `if`
	// (spec.md §4.E "Semantic rules").
	if p.matchAny(token.ELSE) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Token: tok, Condition: cond, Then: then, Else: elseBranch}
}

func (p *Parser) whileStmt() ast.Stmt {
	tok := p.previous()
	p.consume(token.LPAREN, "expect '(' after 'while'")
	cond := p.expression()
	p.consume(token.RPAREN, "expect ')' after while condition")
	body := p.statement()
	return &ast.WhileStmt{Token: tok, Condition: cond, Body: body}
}

// forStmt parses the C-style for-clause. Unlike the classic Crafting
// Interpreters desugaring into an immediate AST rewrite, the ForStmt node
// is kept intact and the interpreter performs the while-loop-with-
// increment semantics itself (see interp.(*Interpreter).execFor): a plain
// textual rewrite into "body; after" as one block would let a `continue`
// skip the increment, since block execution aborts on the first
// control-flow signal. Keeping ForStmt as its own node lets the loop
// execution catch Continue, still run after, and only then re-test cond —
// exactly the spec.md §4.E requirement that "the increment runs after the
// body each iteration, before re-testing the condition" even when the
// body continues early.
func (p *Parser) forStmt() ast.Stmt {
	tok := p.previous()
	p.consume(token.LPAREN, "expect '(' after 'for'")

	var init ast.Stmt
	switch {
	case p.matchAny(token.SEMICOLON):
		init = nil
	case p.matchAny(token.VAR):
		init = p.varDecl()
	default:
		init = p.exprStmt()
	}

	var cond ast.Expr
	if !p.check(token.SEMICOLON) {
		cond = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after loop condition")

	var after ast.Expr
	if !p.check(token.RPAREN) {
		after = p.expression()
	}
	p.consume(token.RPAREN, "expect ')' after for clauses")

	body := p.statement()

	return &ast.ForStmt{Token: tok, Init: init, Condition: cond, After: after, Body: body}
}

func (p *Parser) returnStmt() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.SEMICOLON) {
		value = p.expression()
	}
	p.consume(token.SEMICOLON, "expect ';' after return value")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}
