// Package diag provides structured compiler/runtime diagnostics with source
// context, following the format the driver (cmd/loxscript) renders to
// stderr: a header, the offending source line, and a caret pointing at the
// column (spec.md §4.B, §6).
package diag

import (
	"fmt"
	"strings"

	"github.com/loxscript/loxscript/token"
)

// Phase identifies which stage of the pipeline produced a Diagnostic.
type Phase int

const (
	Scanner Phase = iota
	Parser
	Resolver
	Runtime
)

func (p Phase) String() string {
	switch p {
	case Scanner:
		return "scanner"
	case Parser:
		return "parser"
	case Resolver:
		return "resolver"
	case Runtime:
		return "runtime"
	default:
		return "unknown"
	}
}

// Diagnostic is a single error record: phase, position, and message. It is
// a value, never control flow — callers accumulate these and decide
// separately whether to halt (spec.md §4.B, §7).
type Diagnostic struct {
	Phase   Phase
	Pos     token.Position
	Message string
}

func New(phase Phase, pos token.Position, format string, args ...any) Diagnostic {
	return Diagnostic{Phase: phase, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Error implements the error interface so a Diagnostic can be returned or
// wrapped like any other Go error.
func (d Diagnostic) Error() string {
	return d.Format(nil, "", false)
}

// Format renders the diagnostic with one line of source context (if source
// is non-empty) and a caret under the offending column. color enables ANSI
// highlighting for terminal output; the driver is the only caller that
// passes true.
func (d Diagnostic) Format(lines []string, file string, color bool) string {
	var sb strings.Builder

	if file != "" {
		fmt.Fprintf(&sb, "Error in %s:%d:%d [%s]\n", file, d.Pos.Line, d.Pos.Column, d.Phase)
	} else {
		fmt.Fprintf(&sb, "Error at %d:%d [%s]\n", d.Pos.Line, d.Pos.Column, d.Phase)
	}

	if d.Pos.Line >= 0 && d.Pos.Line < len(lines) {
		gutter := fmt.Sprintf("%4d | ", d.Pos.Line+1)
		sb.WriteString(gutter)
		sb.WriteString(lines[d.Pos.Line])
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(gutter)+d.Pos.Column))
		if color {
			sb.WriteString("\033[1;31m")
		}
		sb.WriteString("^")
		if color {
			sb.WriteString("\033[0m")
		}
		sb.WriteString("\n")
	}

	if color {
		sb.WriteString("\033[1m")
	}
	sb.WriteString("Error: ")
	sb.WriteString(d.Message)
	if color {
		sb.WriteString("\033[0m")
	}

	return sb.String()
}

// FormatAll renders a batch of diagnostics, each separated by a blank line,
// the way the driver prints accumulated scanner/parser/resolver errors.
func FormatAll(diags []Diagnostic, source, file string, color bool) string {
	if len(diags) == 0 {
		return ""
	}
	lines := strings.Split(source, "\n")

	var sb strings.Builder
	for i, d := range diags {
		sb.WriteString(d.Format(lines, file, color))
		if i < len(diags)-1 {
			sb.WriteString("\n\n")
		}
	}
	return sb.String()
}
