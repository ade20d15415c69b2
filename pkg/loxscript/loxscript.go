// Package loxscript is the embeddable facade over the scanner/parser/
// resolver/interp pipeline (SPEC_FULL.md "PUBLIC FACADE"), grounded in the
// teacher's pkg/dwscript: a functional-options constructor, an Engine that
// owns the pipeline wiring, and a Run method that returns a result value
// plus any diagnostics instead of writing straight to os.Stdout/os.Stderr.
package loxscript

import (
	"io"
	"os"

	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/interp"
	"github.com/loxscript/loxscript/parser"
	"github.com/loxscript/loxscript/resolver"
	"github.com/loxscript/loxscript/scanner"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithOutput redirects `print` output (spec.md §6 "Stdout"). Defaults to
// os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(e *Engine) { e.stdout = w }
}

// WithStderr sets the Engine's stderr writer. Defaults to os.Stderr. No
// Engine method writes to it: Run returns diagnostics rather than printing
// them.
func WithStderr(w io.Writer) Option {
	return func(e *Engine) { e.stderr = w }
}

// Engine owns one interpreter's global state. A single Engine corresponds
// to one REPL session or one file run (spec.md §4.H "one Interpreter
// corresponds to one REPL session or one file run"): reuse it across
// multiple Run calls to let top-level `var` declarations persist, the way
// the CLI's REPL does between lines.
type Engine struct {
	stdout io.Writer
	stderr io.Writer
	interp *interp.Interpreter
}

// New creates an Engine ready to run source text.
func New(opts ...Option) *Engine {
	e := &Engine{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(e)
	}
	e.interp = interp.New(nil, e.stdout)
	return e
}

// Result is the outcome of one Engine.Run call.
type Result struct {
	// Success is true iff scanning, parsing, resolving, and interpreting
	// all completed without error.
	Success bool
	// Value is the stringified result of the program's last
	// expression-statement, if the program ended in one and it succeeded.
	// Surfaced so the REPL can echo a bare expression's value the way an
	// interactive session conventionally does.
	Value string
}

// Run scans, parses, resolves, and interprets source against this
// Engine's persistent globals, implementing the phase gating of spec.md
// §4.H's "State machine for a single program": each phase's diagnostics
// are checked before the next phase runs.
func (e *Engine) Run(source string) (*Result, []diag.Diagnostic) {
	// Each Run call is a fresh parse/resolve pass even when the Engine is
	// reused across REPL lines, so the expr-id counter is restarted to keep
	// it from growing unboundedly over a long interactive session (ast.go
	// ResetIDs doc comment).
	ast.ResetIDs()

	tokens, scanErrs := scanner.Scan(source)
	if len(scanErrs) > 0 {
		return &Result{Success: false}, scanErrs
	}

	stmts, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		return &Result{Success: false}, parseErrs
	}

	distances, resolveErrs := resolver.Resolve(stmts)
	if len(resolveErrs) > 0 {
		return &Result{Success: false}, resolveErrs
	}

	e.interp.SetDistances(distances)
	runtimeErrs := e.interp.Interpret(stmts)
	if len(runtimeErrs) > 0 {
		return &Result{Success: false}, runtimeErrs
	}

	return &Result{Success: true, Value: lastExpressionValue(stmts, e.interp)}, nil
}

// lastExpressionValue re-evaluates nothing; it asks the interpreter for the
// value it cached while executing stmts, if the program's final statement
// was a bare expression-statement (spec.md treats print as the only
// user-visible output, so this is purely a REPL convenience, not used by
// `loxscript run <file>`).
func lastExpressionValue(stmts []ast.Stmt, in *interp.Interpreter) string {
	if len(stmts) == 0 {
		return ""
	}
	if _, ok := stmts[len(stmts)-1].(*ast.ExpressionStmt); !ok {
		return ""
	}
	return in.LastExpressionValue()
}

// ExitCode maps a Run outcome to the process exit code spec.md §6 defines:
// 0 on success, 65 on scan/parse/resolve error, 70 on runtime error.
func ExitCode(result *Result, diags []diag.Diagnostic) int {
	if result.Success {
		return 0
	}
	for _, d := range diags {
		if d.Phase == diag.Runtime {
			return 70
		}
	}
	return 65
}
