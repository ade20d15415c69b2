// Package interp implements the tree-walking evaluator over a resolved AST
// (spec.md §4.H): it owns the runtime Value representation, the linked
// scope-frame environment, call mechanics for functions and classes, and
// the non-local control-flow protocol for return/break/continue.
package interp

import "strconv"

// Value represents a runtime value (spec.md §3: "Nil | Bool(b) | Number(f64)
// | String(s) | Callable(fn) | Instance(i) | Class(c)"). Every concrete type
// below implements Type()/String() directly rather than through a shared
// interface{} payload, so the switch in Interpreter.eval stays exhaustive
// and type-safe.
type Value interface {
	// Type returns the runtime type name, used in error messages.
	Type() string
	// String renders the value the way `print` emits it (spec.md §4.A).
	String() string
}

// NilValue is the sole nil value. There is exactly one instance, Nil.
type NilValue struct{}

func (NilValue) Type() string   { return "nil" }
func (NilValue) String() string { return "nil" }

// Nil is the shared Value representing the absence of a value.
var Nil Value = NilValue{}

// BoolValue is a boolean.
type BoolValue bool

func (b BoolValue) Type() string { return "bool" }
func (b BoolValue) String() string {
	if b {
		return "true"
	}
	return "false"
}

// NumberValue is an IEEE-754 double (spec.md §3: "Number is IEEE-754
// double").
type NumberValue float64

func (n NumberValue) Type() string { return "number" }

// String prints integral numbers without a trailing ".0" (spec.md §4.A).
func (n NumberValue) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// StringValue is an immutable string.
type StringValue string

func (s StringValue) Type() string   { return "string" }
func (s StringValue) String() string { return string(s) }

// isTruthy implements spec.md §4.H truthiness: only false and nil are
// false, everything else (including 0 and "") is true.
func isTruthy(v Value) bool {
	switch val := v.(type) {
	case NilValue:
		return false
	case BoolValue:
		return bool(val)
	default:
		return true
	}
}

// valuesEqual implements spec.md §3 equality: nil==nil, same-kind
// primitives by value, cross-kind unequal, Instance/Callable by reference
// identity (handled by the == below since they are always pointers).
func valuesEqual(a, b Value) bool {
	switch av := a.(type) {
	case NilValue:
		_, ok := b.(NilValue)
		return ok
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case NumberValue:
		bv, ok := b.(NumberValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && av == bv
	default:
		return a == b
	}
}
