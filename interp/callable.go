package interp

import "github.com/loxscript/loxscript/ast"

// Callable is anything invocable with `name(args...)`: a Function or a
// Class (spec.md §3 Value: "Callable(fn)"; calling a Class value
// constructs an Instance instead of running a body).
type Callable interface {
	Value
	Arity() int
	Call(in *Interpreter, args []Value) (Value, *RuntimeError)
}

// Function is a user-declared function or method bound to the frame chain
// in effect at its declaration (spec.md §4.G "A function's captured
// environment is the frame chain in effect at the point of its
// declaration").
type Function struct {
	decl    *ast.FnStmt
	closure *Environment
}

func (f *Function) Type() string   { return "function" }
func (f *Function) String() string { return "fun " + f.decl.Name.Lexeme }
func (f *Function) Arity() int     { return len(f.decl.Params) }

// Bind returns a copy of f whose captured environment has a one-entry
// frame binding `this` to instance (spec.md §4.H "Calling a method on an
// instance... opens a method-call frame whose enclosing chain has a
// one-entry frame binding `this` to the instance, then follows the class's
// captured chain").
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.DefineVar("this", instance)
	return &Function{decl: f.decl, closure: env}
}

// Call builds a new frame enclosed by the captured environment (not the
// caller's), binds parameters, and executes the body (spec.md §4.H
// "Call"). A Return signal unwinds to here and yields its value; running
// off the end yields Nil.
func (f *Function) Call(in *Interpreter, args []Value) (Value, *RuntimeError) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.decl.Params {
		env.DefineVar(param.Lexeme, args[i])
	}

	sig := in.execBlock(f.decl.Body, env)
	switch sig.kind {
	case sigReturn:
		return sig.value, nil
	case sigError:
		return nil, sig.err
	case sigBreak, sigContinue:
		// A break/continue that unwinds past the whole function body has no
		// enclosing loop to catch it (spec.md §9 "Unused break/continue
		// outside loops: treat as a runtime error").
		return nil, newRuntimeError(f.decl.Pos(), "%s outside a loop", signalName(sig.kind))
	default:
		return Nil, nil
	}
}
