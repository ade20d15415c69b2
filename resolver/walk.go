package resolver

import "github.com/loxscript/loxscript/ast"

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		r.resolveExpr(s.Expression)

	case *ast.PrintStmt:
		r.resolveExpr(s.Expression)

	case *ast.VarStmt:
		r.declare(s.Name)
		if s.Init != nil {
			r.resolveExpr(s.Init)
		}
		r.define(s.Name)

	case *ast.BlockStmt:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()

	case *ast.IfStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Then)
		if s.Else != nil {
			r.resolveStmt(s.Else)
		}

	case *ast.WhileStmt:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)

	case *ast.ForStmt:
		// Resolved in the order the loop actually runs (spec.md §4.F "for
		// initializer, condition, increment, body all resolve in the
		// desugared order"). The initializer gets its own scope, the same
		// as the implicit block a textual desugaring would introduce.
		r.beginScope()
		if s.Init != nil {
			r.resolveStmt(s.Init)
		}
		if s.Condition != nil {
			r.resolveExpr(s.Condition)
		}
		r.resolveStmt(s.Body)
		if s.After != nil {
			r.resolveExpr(s.After)
		}
		r.endScope()

	case *ast.FnStmt:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, fnFunction)

	case *ast.ReturnStmt:
		if r.currentFunction == fnNone {
			r.errorf(s.Pos(), "can't return from top-level code")
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}

	case *ast.BreakStmt, *ast.ContinueStmt:
		// No scope effect (spec.md §4.F).

	case *ast.ClassStmt:
		r.resolveClass(s)

	default:
		panic("resolver: unhandled statement type")
	}
}

// resolveFunction opens a scope, declares+defines each parameter, then
// resolves the body (spec.md §4.F "On function declarations").
func (r *Resolver) resolveFunction(fn *ast.FnStmt, kind functionKind) {
	enclosing := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosing
}

// resolveClass declares the class name, opens a scope with `this` pre-bound
// to distance 0 within it (so method bodies see `this` at distance 1, per
// spec.md §9), and resolves each method as fnMethod.
func (r *Resolver) resolveClass(stmt *ast.ClassStmt) {
	r.declare(stmt.Name)
	r.define(stmt.Name)

	enclosingClass := r.inClass
	r.inClass = true

	r.beginScope()
	r.peekScope()["this"] = true

	for _, method := range stmt.Methods {
		r.resolveFunction(method, fnMethod)
	}

	r.endScope()
	r.inClass = enclosingClass
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Literal:
		// no subexpressions

	case *ast.Grouping:
		r.resolveExpr(e.Expression)

	case *ast.Unary:
		r.resolveExpr(e.Right)

	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)

	case *ast.Variable:
		if len(r.scopes) > 0 {
			if defined, ok := r.peekScope()[e.Name.Lexeme]; ok && !defined {
				r.errorf(e.Pos(), "can't read local variable %q in its own initializer", e.Name.Lexeme)
			}
		}
		r.resolveLocal(e.ID, e.Name.Lexeme)

	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e.ID, e.Name.Lexeme)

	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, arg := range e.Args {
			r.resolveExpr(arg)
		}

	case *ast.Get:
		r.resolveExpr(e.Object)

	case *ast.Set:
		r.resolveExpr(e.Value)
		r.resolveExpr(e.Object)

	case *ast.This:
		if !r.inClass {
			r.errorf(e.Pos(), "can't use 'this' outside of a class")
			return
		}
		r.resolveLocal(e.ID, "this")

	default:
		panic("resolver: unhandled expression type")
	}
}
