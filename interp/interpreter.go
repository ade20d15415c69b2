// Package interp's Interpreter walks the resolved AST (spec.md §4.H),
// evaluating expressions and executing statements against a chain of
// Environment frames. Structurally this is the teacher's single
// type-switching Eval/exec dispatch (internal/interp/interpreter.go,
// statements*.go, expressions*.go) rather than a Visitor-per-node-type
// design, generalized from DWScript's Variant-heavy value model down to
// this language's closed five/seven-way Value sum.
package interp

import (
	"fmt"
	"io"

	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/diag"
)

// sigKind distinguishes the non-local control-flow signals a statement can
// raise (spec.md §4.H "State = Return(Value) | Break | Continue |
// Error(RuntimeError)").
type sigKind int

const (
	sigNone sigKind = iota
	sigReturn
	sigBreak
	sigContinue
	sigError
)

// signal is the Result state exec() propagates upward. Go's nearest
// analogue to the spec's sum-type Result is this small tagged struct: the
// zero value (sigNone) means "ran to completion, keep going."
type signal struct {
	kind  sigKind
	value Value
	err   *RuntimeError
}

var normal = signal{kind: sigNone}

func errSignal(err *RuntimeError) signal { return signal{kind: sigError, err: err} }

// Interpreter evaluates a resolved program. One Interpreter corresponds to
// one REPL session or one file run; globals persist across REPL lines in
// the CLI's REPL loop by reusing the same Interpreter.
type Interpreter struct {
	globals   *Environment
	env       *Environment
	distances map[int]int
	stdout    io.Writer
	lastValue Value
}

// New creates an Interpreter. distances is the resolver's output (spec.md
// §4.F "Output"); stdout receives `print` output (spec.md §6).
func New(distances map[int]int, stdout io.Writer) *Interpreter {
	globals := NewEnvironment()
	return &Interpreter{globals: globals, env: globals, distances: distances, stdout: stdout}
}

// SetDistances replaces the resolve map an Interpreter consults. Used by
// pkg/loxscript.Engine, which keeps one Interpreter alive across multiple
// Run calls (REPL lines, each resolved independently) while the globals
// frame persists.
func (in *Interpreter) SetDistances(distances map[int]int) {
	in.distances = distances
}

// LastExpressionValue returns the stringified value of the most recently
// executed expression-statement, or "" if none has run yet. Exposed for
// pkg/loxscript's REPL convenience of echoing a bare expression's value.
func (in *Interpreter) LastExpressionValue() string {
	if in.lastValue == nil {
		return ""
	}
	return in.lastValue.String()
}

// Interpret runs stmts to completion or until a runtime error, returning
// that error as a single-element diagnostic slice (spec.md §7
// "Propagation": "The interpreter halts the current program on the first
// runtime error").
func (in *Interpreter) Interpret(stmts []ast.Stmt) []diag.Diagnostic {
	for _, stmt := range stmts {
		sig := in.exec(stmt)
		switch sig.kind {
		case sigError:
			return []diag.Diagnostic{sig.err.Diagnostic()}
		case sigReturn, sigBreak, sigContinue:
			// Spec.md §9 "Unused break/continue outside loops": a signal
			// that escapes every enclosing construct reaches here and is
			// reported as a runtime error.
			return []diag.Diagnostic{newRuntimeError(stmt.Pos(), "%s outside a loop or function", signalName(sig.kind)).Diagnostic()}
		}
	}
	return nil
}

func signalName(k sigKind) string {
	switch k {
	case sigReturn:
		return "return"
	case sigBreak:
		return "break"
	case sigContinue:
		return "continue"
	default:
		return "signal"
	}
}

// exec executes one statement, returning a non-sigNone signal if control
// flow must unwind past it.
func (in *Interpreter) exec(stmt ast.Stmt) signal {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return errSignal(err)
		}
		in.lastValue = v
		return normal

	case *ast.PrintStmt:
		v, err := in.eval(s.Expression)
		if err != nil {
			return errSignal(err)
		}
		fmt.Fprintln(in.stdout, v.String())
		return normal

	case *ast.VarStmt:
		var v Value = Nil
		if s.Init != nil {
			var err *RuntimeError
			v, err = in.eval(s.Init)
			if err != nil {
				return errSignal(err)
			}
		}
		in.env.DefineVar(s.Name.Lexeme, v)
		return normal

	case *ast.BlockStmt:
		return in.execBlock(s.Statements, NewEnclosedEnvironment(in.env))

	case *ast.IfStmt:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return errSignal(err)
		}
		if isTruthy(cond) {
			return in.exec(s.Then)
		} else if s.Else != nil {
			return in.exec(s.Else)
		}
		return normal

	case *ast.WhileStmt:
		return in.execWhile(s)

	case *ast.ForStmt:
		return in.execFor(s)

	case *ast.FnStmt:
		fn := &Function{decl: s, closure: in.env}
		in.env.DefineVar(s.Name.Lexeme, fn)
		return normal

	case *ast.ReturnStmt:
		var v Value = Nil
		if s.Value != nil {
			var err *RuntimeError
			v, err = in.eval(s.Value)
			if err != nil {
				return errSignal(err)
			}
		}
		return signal{kind: sigReturn, value: v}

	case *ast.BreakStmt:
		return signal{kind: sigBreak}

	case *ast.ContinueStmt:
		return signal{kind: sigContinue}

	case *ast.ClassStmt:
		return in.execClass(s)

	default:
		panic("interp: unhandled statement type")
	}
}

// execBlock runs stmts against env, restoring the interpreter's current
// frame on every exit path (spec.md §4.H "Block": "always pop, including
// on error paths").
func (in *Interpreter) execBlock(stmts []ast.Stmt, env *Environment) signal {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range stmts {
		if sig := in.exec(stmt); sig.kind != sigNone {
			return sig
		}
	}
	return normal
}

func (in *Interpreter) execWhile(s *ast.WhileStmt) signal {
	for {
		cond, err := in.eval(s.Condition)
		if err != nil {
			return errSignal(err)
		}
		if !isTruthy(cond) {
			return normal
		}
		sig := in.exec(s.Body)
		switch sig.kind {
		case sigBreak:
			return normal
		case sigContinue:
			continue
		case sigNone:
			continue
		default:
			return sig
		}
	}
}

// execFor runs the C-style loop directly (ast.ForStmt's doc comment
// explains why desugaring into a While+Block would break `continue`):
// After always runs before Condition is re-tested, even when the body
// signaled Continue.
func (in *Interpreter) execFor(s *ast.ForStmt) signal {
	env := NewEnclosedEnvironment(in.env)
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	if s.Init != nil {
		if sig := in.exec(s.Init); sig.kind != sigNone {
			return sig
		}
	}

	for {
		if s.Condition != nil {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return errSignal(err)
			}
			if !isTruthy(cond) {
				return normal
			}
		}

		sig := in.exec(s.Body)
		switch sig.kind {
		case sigBreak:
			return normal
		case sigReturn, sigError:
			return sig
		}
		// sigNone and sigContinue both fall through to the increment.

		if s.After != nil {
			if _, err := in.eval(s.After); err != nil {
				return errSignal(err)
			}
		}
	}
}

func (in *Interpreter) execClass(s *ast.ClassStmt) signal {
	methods := make(map[string]*Function, len(s.Methods))
	for _, m := range s.Methods {
		methods[m.Name.Lexeme] = &Function{decl: m, closure: in.env}
	}

	params := make([]string, len(s.InitParams))
	for i, p := range s.InitParams {
		params[i] = p.Lexeme
	}

	class := &Class{Name: s.Name.Lexeme, Methods: methods, InitParams: params}
	in.env.DefineClass(s.Name.Lexeme, class)
	// Classes are also callable by bare name lookup (spec.md §4.H "Calling
	// a class value constructs an Instance"), so a Variable reference to
	// the class name must resolve to something callable too.
	in.env.DefineVar(s.Name.Lexeme, class)
	return normal
}
