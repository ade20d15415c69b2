package interp

import (
	"bytes"
	"testing"

	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/parser"
	"github.com/loxscript/loxscript/resolver"
	"github.com/loxscript/loxscript/scanner"
)

// run scans, parses, resolves, and interprets src end to end, returning the
// captured stdout and any diagnostics — the same four-phase pipeline
// pkg/loxscript.Engine.Run drives, inlined here so interp's own tests don't
// need to import the facade package.
func run(t *testing.T, src string) (string, []string) {
	t.Helper()
	ast.ResetIDs()
	toks, serrs := scanner.Scan(src)
	if len(serrs) != 0 {
		t.Fatalf("unexpected scan errors: %v", serrs)
	}
	stmts, perrs := parser.Parse(toks)
	if len(perrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	distances, rerrs := resolver.Resolve(stmts)
	if len(rerrs) != 0 {
		t.Fatalf("unexpected resolver errors: %v", rerrs)
	}

	var out bytes.Buffer
	in := New(distances, &out)
	diags := in.Interpret(stmts)

	var msgs []string
	for _, d := range diags {
		msgs = append(msgs, d.Message)
	}
	return out.String(), msgs
}

func TestInterpretArithmetic(t *testing.T) {
	out, errs := run(t, `print 1 + 2 * 3;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "7\n" {
		t.Errorf("expected %q, got %q", "7\n", out)
	}
}

func TestInterpretStringConcatenation(t *testing.T) {
	out, errs := run(t, `print "foo" + "bar";`)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "foobar\n" {
		t.Errorf("expected %q, got %q", "foobar\n", out)
	}
}

func TestInterpretNumberStringAdditionIsError(t *testing.T) {
	_, errs := run(t, `print 1 + "a";`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one runtime error, got %d: %v", len(errs), errs)
	}
}

func TestInterpretAndOrReducedReturnQuirk(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{`print nil or "default";`, "default\n"},
		{`print "first" and "second";`, "second\n"},
		{`print 0 and false;`, "false\n"},
		{`print false or nil;`, "nil\n"},
	}
	for i, tt := range tests {
		out, errs := run(t, tt.input)
		if len(errs) != 0 {
			t.Fatalf("tests[%d] - unexpected runtime errors: %v", i, errs)
		}
		if out != tt.expected {
			t.Errorf("tests[%d] - expected %q, got %q", i, tt.expected, out)
		}
	}
}

func TestInterpretBlockScoping(t *testing.T) {
	out, errs := run(t, `var a = 1; { var a = 2; print a; } print a;`)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "2\n1\n" {
		t.Errorf("expected %q, got %q", "2\n1\n", out)
	}
}

func TestInterpretWhileBreakAndContinue(t *testing.T) {
	src := `var i = 0;
while (i < 5) {
  i = i + 1;
  if (i == 2) continue;
  if (i == 4) break;
  print i;
}`
	out, errs := run(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "1\n3\n" {
		t.Errorf("expected %q, got %q", "1\n3\n", out)
	}
}

func TestInterpretForIncrementRunsAfterContinue(t *testing.T) {
	src := `for (var i = 0; i < 3; i = i + 1) {
  if (i == 1) continue;
  print i;
}`
	out, errs := run(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "0\n2\n" {
		t.Errorf("expected %q, got %q", "0\n2\n", out)
	}
}

func TestInterpretClosureCapturesDeclarationEnvironment(t *testing.T) {
	src := `fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}
var counter = makeCounter();
print counter();
print counter();
print counter();`
	out, errs := run(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "1\n2\n3\n" {
		t.Errorf("expected %q, got %q", "1\n2\n3\n", out)
	}
}

func TestInterpretRecursiveFunction(t *testing.T) {
	src := `fun fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
print fib(7);`
	out, errs := run(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "13\n" {
		t.Errorf("expected %q, got %q", "13\n", out)
	}
}

func TestInterpretClassFieldsAndMethods(t *testing.T) {
	src := `class Point(x, y) {
  dist() {
    return this.x * this.x + this.y * this.y;
  }
}
var p = Point(3, 4);
print p.dist();`
	out, errs := run(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "25\n" {
		t.Errorf("expected %q, got %q", "25\n", out)
	}
}

func TestInterpretThisBindsToReceiver(t *testing.T) {
	src := `class Box(v) {
  get() { return this.v; }
  set(n) { this.v = n; }
}
var b = Box(1);
print b.get();
b.set(9);
print b.get();`
	out, errs := run(t, src)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "1\n9\n" {
		t.Errorf("expected %q, got %q", "1\n9\n", out)
	}
}

func TestInterpretCallingNonCallableIsError(t *testing.T) {
	_, errs := run(t, `var a = 1; a();`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one runtime error, got %d: %v", len(errs), errs)
	}
}

func TestInterpretArityMismatchIsError(t *testing.T) {
	_, errs := run(t, `fun f(a, b) { return a; } f(1);`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one runtime error, got %d: %v", len(errs), errs)
	}
}

func TestInterpretUndefinedVariableIsError(t *testing.T) {
	_, errs := run(t, `print nope;`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one runtime error, got %d: %v", len(errs), errs)
	}
}

func TestInterpretPropertyAccessOnNonInstanceIsError(t *testing.T) {
	_, errs := run(t, `var a = 1; print a.b;`)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one runtime error, got %d: %v", len(errs), errs)
	}
}

func TestInterpretClosureReadsGlobalNotCallerShadow(t *testing.T) {
	out, errs := run(t, `var a = "global"; fun show() { print a; } { var a = "inner"; show(); }`)
	if len(errs) != 0 {
		t.Fatalf("unexpected runtime errors: %v", errs)
	}
	if out != "global\n" {
		t.Errorf("expected %q (closures bind over the declaration frame, not the call frame), got %q", "global\n", out)
	}
}

func TestEnvironmentGetAtAndAssignAt(t *testing.T) {
	root := NewEnvironment()
	root.DefineVar("a", NumberValue(1))
	child := NewEnclosedEnvironment(root)
	child.DefineVar("a", NumberValue(2))

	if v, ok := child.GetAt(0, "a"); !ok || v != NumberValue(2) {
		t.Errorf("GetAt(0) = %v, %v; want 2, true", v, ok)
	}
	if v, ok := child.GetAt(1, "a"); !ok || v != NumberValue(1) {
		t.Errorf("GetAt(1) = %v, %v; want 1, true", v, ok)
	}

	child.AssignAt(1, "a", NumberValue(99))
	if v, _ := root.GetVar("a"); v != NumberValue(99) {
		t.Errorf("expected AssignAt(1) to mutate the root frame, got %v", v)
	}
}

func TestEnvironmentAssignVarUndefinedIsError(t *testing.T) {
	env := NewEnvironment()
	if err := env.AssignVar("nope", NumberValue(1)); err == nil {
		t.Fatal("expected an error assigning to an undefined variable")
	}
}

func TestValueTruthiness(t *testing.T) {
	tests := []struct {
		value Value
		want  bool
	}{
		{Nil, false},
		{BoolValue(false), false},
		{BoolValue(true), true},
		{NumberValue(0), true},
		{StringValue(""), true},
	}
	for i, tt := range tests {
		if got := isTruthy(tt.value); got != tt.want {
			t.Errorf("tests[%d] - isTruthy(%v) = %v, want %v", i, tt.value, got, tt.want)
		}
	}
}

func TestNumberValueStringDropsTrailingZero(t *testing.T) {
	tests := []struct {
		value NumberValue
		want  string
	}{
		{NumberValue(5), "5"},
		{NumberValue(5.5), "5.5"},
		{NumberValue(-2), "-2"},
	}
	for i, tt := range tests {
		if got := tt.value.String(); got != tt.want {
			t.Errorf("tests[%d] - String() = %q, want %q", i, got, tt.want)
		}
	}
}
