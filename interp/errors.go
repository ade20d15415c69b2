package interp

import (
	"fmt"

	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/token"
)

// RuntimeError is a runtime-phase diagnostic (spec.md §7 "Runtime:
// undefined variable, undefined property, arity mismatch, wrong operand
// types, calling a non-callable, field access on a non-instance").
type RuntimeError struct {
	Pos     token.Position
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(pos token.Position, format string, args ...any) *RuntimeError {
	return &RuntimeError{Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Diagnostic converts a RuntimeError to the shared diag.Diagnostic shape
// the driver renders (spec.md §4.B).
func (e *RuntimeError) Diagnostic() diag.Diagnostic {
	return diag.New(diag.Runtime, e.Pos, "%s", e.Message)
}
