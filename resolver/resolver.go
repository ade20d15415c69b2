// Package resolver performs the static pre-pass described in spec.md §4.F:
// a scope-walk that fixes each variable use to the exact lexical frame that
// defines it, independent of the dynamic call stack, and records that
// distance in a side table the interpreter consults at evaluation time.
//
// The declare/define-then-walk-outward algorithm is grounded in the
// classic Lox resolver found in this pack's other_examples/ reference
// (iamsayantan/glox's resolver.go): a stack of `map[string]bool` scopes,
// "declared but not yet defined" used to catch self-referencing
// initializers, and a resolveLocal walk from the innermost scope out. It is
// adapted here to key its output by the AST's integer expr-id (ast.go's
// nextID()) instead of Go pointer/reflect identity, and restructured as a
// pair of type-switching functions (resolveStmt/resolveExpr in walk.go) in
// the teacher's (internal/interp) Eval-style dispatch rather than a
// Visitor-interface per node type.
package resolver

import (
	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/token"
)

type functionKind int

const (
	fnNone functionKind = iota
	fnFunction
	fnMethod
)

// Resolver walks a parsed program and produces a Distances map.
type Resolver struct {
	scopes          []map[string]bool
	currentFunction functionKind
	inClass         bool
	distances       map[int]int
	diags           []diag.Diagnostic
}

// New creates a Resolver ready to resolve a program.
func New() *Resolver {
	return &Resolver{distances: make(map[int]int)}
}

// Resolve runs the resolver over stmts and returns the resolve map plus any
// diagnostics (spec.md §4.F "Output": "The resolve map plus a list of
// resolver errors. The AST is not mutated.").
func Resolve(stmts []ast.Stmt) (map[int]int, []diag.Diagnostic) {
	r := New()
	r.resolveStmts(stmts)
	return r.distances, r.diags
}

func (r *Resolver) errorf(pos token.Position, format string, args ...any) {
	r.diags = append(r.diags, diag.New(diag.Resolver, pos, format, args...))
}

func (r *Resolver) beginScope() { r.scopes = append(r.scopes, map[string]bool{}) }
func (r *Resolver) endScope()   { r.scopes = r.scopes[:len(r.scopes)-1] }

func (r *Resolver) peekScope() map[string]bool {
	return r.scopes[len(r.scopes)-1]
}

// declare marks name as present but not yet initialized in the innermost
// scope (spec.md §4.F: "first declare (name→false)").
func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.peekScope()
	scope[name.Lexeme] = false
}

// define marks name as fully initialized in the innermost scope (spec.md
// §4.F: "then define (name→true)").
func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.peekScope()[name.Lexeme] = true
}

// resolveLocal walks the scope stack from innermost out, recording the
// distance at the first scope containing name. Not finding it is legal —
// the interpreter treats it as a global lookup (spec.md §4.F).
func (r *Resolver) resolveLocal(id int, name string) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name]; ok {
			r.distances[id] = len(r.scopes) - 1 - i
			return
		}
	}
}
