package interp

import (
	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/token"
)

// eval evaluates expr against the current frame, returning a RuntimeError
// for any of spec.md §7's runtime-error cases.
func (in *Interpreter) eval(expr ast.Expr) (Value, *RuntimeError) {
	switch e := expr.(type) {
	case *ast.Literal:
		return literalValue(e), nil

	case *ast.Grouping:
		return in.eval(e.Expression)

	case *ast.Unary:
		return in.evalUnary(e)

	case *ast.Binary:
		return in.evalBinary(e)

	case *ast.Logical:
		return in.evalLogical(e)

	case *ast.Variable:
		return in.lookupVariable(e.ID, e.Name)

	case *ast.Assign:
		return in.evalAssign(e)

	case *ast.Call:
		return in.evalCall(e)

	case *ast.Get:
		return in.evalGet(e)

	case *ast.Set:
		return in.evalSet(e)

	case *ast.This:
		return in.lookupVariable(e.ID, e.Keyword)

	default:
		panic("interp: unhandled expression type")
	}
}

func literalValue(l *ast.Literal) Value {
	switch v := l.Value.(type) {
	case nil:
		return Nil
	case bool:
		return BoolValue(v)
	case float64:
		return NumberValue(v)
	case string:
		return StringValue(v)
	default:
		panic("interp: unexpected literal value type")
	}
}

// lookupVariable implements spec.md §4.H "Variable access": if the
// resolve map has an entry for id, use GetAt(distance); otherwise fall
// back to a dynamic walk from the current frame (effectively global
// lookup).
func (in *Interpreter) lookupVariable(id int, name token.Token) (Value, *RuntimeError) {
	if dist, ok := in.distances[id]; ok {
		if v, ok := in.env.GetAt(dist, name.Lexeme); ok {
			return v, nil
		}
		return nil, newRuntimeError(name.Pos, "undefined variable %q", name.Lexeme)
	}
	if v, ok := in.env.GetVar(name.Lexeme); ok {
		return v, nil
	}
	return nil, newRuntimeError(name.Pos, "undefined variable %q", name.Lexeme)
}

func (in *Interpreter) evalAssign(e *ast.Assign) (Value, *RuntimeError) {
	v, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if dist, ok := in.distances[e.ID]; ok {
		in.env.AssignAt(dist, e.Name.Lexeme, v)
		return v, nil
	}
	if assignErr := in.env.AssignVar(e.Name.Lexeme, v); assignErr != nil {
		return nil, newRuntimeError(e.Name.Pos, "undefined variable %q", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalUnary(e *ast.Unary) (Value, *RuntimeError) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.BANG:
		return BoolValue(!isTruthy(right)), nil
	case token.MINUS:
		n, ok := right.(NumberValue)
		if !ok {
			return nil, newRuntimeError(e.Operator.Pos, "operand of unary '-' must be a number, got %s", right.Type())
		}
		return -n, nil
	default:
		panic("interp: unhandled unary operator")
	}
}

// evalLogical implements spec.md §4.H's short-circuit rules, including the
// `and` quirk (§9 open question): `a or b` returns a if truthy else b;
// `a and b` returns b if a is truthy else the literal false, not a.
func (in *Interpreter) evalLogical(e *ast.Logical) (Value, *RuntimeError) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Type {
	case token.OR:
		if isTruthy(left) {
			return left, nil
		}
		return in.eval(e.Right)
	case token.AND:
		if !isTruthy(left) {
			return BoolValue(false), nil
		}
		return in.eval(e.Right)
	default:
		panic("interp: unhandled logical operator")
	}
}

func (in *Interpreter) evalBinary(e *ast.Binary) (Value, *RuntimeError) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case token.PLUS:
		return evalPlus(left, right, e.Operator.Pos)
	case token.MINUS:
		return numberBinary(left, right, e.Operator.Pos, func(a, b float64) float64 { return a - b })
	case token.STAR:
		return numberBinary(left, right, e.Operator.Pos, func(a, b float64) float64 { return a * b })
	case token.SLASH:
		return numberBinary(left, right, e.Operator.Pos, func(a, b float64) float64 { return a / b })
	case token.GREATER:
		return numberCompare(left, right, e.Operator.Pos, func(a, b float64) bool { return a > b })
	case token.GREATER_EQUAL:
		return numberCompare(left, right, e.Operator.Pos, func(a, b float64) bool { return a >= b })
	case token.LESS:
		return numberCompare(left, right, e.Operator.Pos, func(a, b float64) bool { return a < b })
	case token.LESS_EQUAL:
		return numberCompare(left, right, e.Operator.Pos, func(a, b float64) bool { return a <= b })
	case token.EQUAL_EQUAL:
		return BoolValue(valuesEqual(left, right)), nil
	case token.BANG_EQUAL:
		return BoolValue(!valuesEqual(left, right)), nil
	default:
		panic("interp: unhandled binary operator")
	}
}

// evalPlus implements spec.md §4.H: numeric addition if both operands are
// numbers, string concatenation if both are strings, otherwise a runtime
// error.
func evalPlus(left, right Value, pos token.Position) (Value, *RuntimeError) {
	ln, lok := left.(NumberValue)
	rn, rok := right.(NumberValue)
	if lok && rok {
		return ln + rn, nil
	}
	ls, lok := left.(StringValue)
	rs, rok := right.(StringValue)
	if lok && rok {
		return ls + rs, nil
	}
	return nil, newRuntimeError(pos, "operands of '+' must both be numbers or both be strings, got %s and %s", left.Type(), right.Type())
}

func numberBinary(left, right Value, pos token.Position, f func(a, b float64) float64) (Value, *RuntimeError) {
	ln, rn, err := bothNumbers(left, right, pos)
	if err != nil {
		return nil, err
	}
	return NumberValue(f(float64(ln), float64(rn))), nil
}

func numberCompare(left, right Value, pos token.Position, f func(a, b float64) bool) (Value, *RuntimeError) {
	ln, rn, err := bothNumbers(left, right, pos)
	if err != nil {
		return nil, err
	}
	return BoolValue(f(float64(ln), float64(rn))), nil
}

func bothNumbers(left, right Value, pos token.Position) (NumberValue, NumberValue, *RuntimeError) {
	ln, lok := left.(NumberValue)
	rn, rok := right.(NumberValue)
	if !lok || !rok {
		return 0, 0, newRuntimeError(pos, "operands must be numbers, got %s and %s", left.Type(), right.Type())
	}
	return ln, rn, nil
}

// evalCall implements spec.md §4.H "Call": evaluate the callee, then
// arguments left-to-right, check arity, and invoke.
func (in *Interpreter) evalCall(e *ast.Call) (Value, *RuntimeError) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]Value, len(e.Args))
	for i, argExpr := range e.Args {
		v, err := in.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, newRuntimeError(e.Paren.Pos, "%s is not callable", callee.Type())
	}
	if len(args) != fn.Arity() {
		return nil, newRuntimeError(e.Paren.Pos, "expected %d arguments but got %d", fn.Arity(), len(args))
	}
	return fn.Call(in, args)
}

// evalGet implements spec.md §4.H "Property access": fields before
// methods, method hits bound to the receiving instance.
func (in *Interpreter) evalGet(e *ast.Get) (Value, *RuntimeError) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Pos, "only instances have properties, got %s", obj.Type())
	}
	v, ok := inst.Get(e.Name.Lexeme)
	if !ok {
		return nil, newRuntimeError(e.Name.Pos, "undefined property %q", e.Name.Lexeme)
	}
	return v, nil
}

func (in *Interpreter) evalSet(e *ast.Set) (Value, *RuntimeError) {
	obj, err := in.eval(e.Object)
	if err != nil {
		return nil, err
	}
	inst, ok := obj.(*Instance)
	if !ok {
		return nil, newRuntimeError(e.Name.Pos, "only instances have fields, got %s", obj.Type())
	}
	v, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	inst.Set(e.Name.Lexeme, v)
	return v, nil
}
