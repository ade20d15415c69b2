package parser

import (
	"testing"

	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/scanner"
)

func parseSource(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	ast.ResetIDs()
	toks, errs := scanner.Scan(src)
	if len(errs) != 0 {
		t.Fatalf("unexpected scan errors: %v", errs)
	}
	stmts, perrs := Parse(toks)
	if len(perrs) != 0 {
		t.Fatalf("unexpected parse errors: %v", perrs)
	}
	return stmts
}

func TestParseExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1 + 2 * 3;", "(+ 1 (* 2 3));"},
		{"(1 + 2) * 3;", "(* (group (+ 1 2)) 3);"},
		{"-1 + 2;", "(+ (- 1) 2);"},
		{"!true == false;", "(== (! true) false);"},
		{"1 < 2 == 3 < 4;", "(== (< 1 2) (< 3 4));"},
	}

	for i, tt := range tests {
		stmts := parseSource(t, tt.input)
		if len(stmts) != 1 {
			t.Fatalf("tests[%d] - expected 1 statement, got %d", i, len(stmts))
		}
		if got := stmts[0].String(); got != tt.expected {
			t.Errorf("tests[%d] - expected=%q, got=%q", i, tt.expected, got)
		}
	}
}

func TestParseLogicalOperatorsStayDistinctFromBinary(t *testing.T) {
	stmts := parseSource(t, `a and b or c;`)
	stmt, ok := stmts[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("expected ExpressionStmt, got %T", stmts[0])
	}
	logical, ok := stmt.Expression.(*ast.Logical)
	if !ok {
		t.Fatalf("expected top-level *ast.Logical (or), got %T", stmt.Expression)
	}
	if logical.Operator.Lexeme != "or" {
		t.Errorf("expected top-level operator 'or', got %q", logical.Operator.Lexeme)
	}
	if _, ok := logical.Left.(*ast.Logical); !ok {
		t.Errorf("expected left operand to be the nested 'and', got %T", logical.Left)
	}
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parseSource(t, `var x = 1;`)
	v, ok := stmts[0].(*ast.VarStmt)
	if !ok {
		t.Fatalf("expected VarStmt, got %T", stmts[0])
	}
	if v.Name.Lexeme != "x" {
		t.Errorf("expected name 'x', got %q", v.Name.Lexeme)
	}
	if v.Init == nil {
		t.Fatal("expected non-nil initializer")
	}
}

func TestParseVarDeclarationWithoutInitializer(t *testing.T) {
	stmts := parseSource(t, `var x;`)
	v, ok := stmts[0].(*ast.VarStmt)
	if !ok {
		t.Fatalf("expected VarStmt, got %T", stmts[0])
	}
	if v.Init != nil {
		t.Errorf("expected nil initializer, got %v", v.Init)
	}
}

func TestParseIfElse(t *testing.T) {
	stmts := parseSource(t, `if (true) print 1; else print 2;`)
	ifStmt, ok := stmts[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected IfStmt, got %T", stmts[0])
	}
	if ifStmt.Then == nil || ifStmt.Else == nil {
		t.Fatal("expected both branches to be present")
	}
}

func TestParseForDesugarsNothingKeepsAllClauses(t *testing.T) {
	stmts := parseSource(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	forStmt, ok := stmts[0].(*ast.ForStmt)
	if !ok {
		t.Fatalf("expected ForStmt, got %T", stmts[0])
	}
	if forStmt.Init == nil {
		t.Error("expected Init clause to be preserved")
	}
	if forStmt.Condition == nil {
		t.Error("expected Condition clause to be preserved")
	}
	if forStmt.After == nil {
		t.Error("expected After clause to be preserved")
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parseSource(t, `fun add(a, b) { return a + b; }`)
	fn, ok := stmts[0].(*ast.FnStmt)
	if !ok {
		t.Fatalf("expected FnStmt, got %T", stmts[0])
	}
	if fn.Name.Lexeme != "add" {
		t.Errorf("expected name 'add', got %q", fn.Name.Lexeme)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 params, got %d", len(fn.Params))
	}
	if fn.Params[0].Lexeme != "a" || fn.Params[1].Lexeme != "b" {
		t.Errorf("expected params [a b], got %v", fn.Params)
	}
}

func TestParseClassDeclaration(t *testing.T) {
	stmts := parseSource(t, `class Point(x, y) { dist() { return x; } }`)
	class, ok := stmts[0].(*ast.ClassStmt)
	if !ok {
		t.Fatalf("expected ClassStmt, got %T", stmts[0])
	}
	if class.Name.Lexeme != "Point" {
		t.Errorf("expected name 'Point', got %q", class.Name.Lexeme)
	}
	if len(class.InitParams) != 2 {
		t.Fatalf("expected 2 constructor params, got %d", len(class.InitParams))
	}
	if len(class.Methods) != 1 || class.Methods[0].Name.Lexeme != "dist" {
		t.Fatalf("expected a single 'dist' method, got %v", class.Methods)
	}
}

func TestParseGetAndSet(t *testing.T) {
	stmts := parseSource(t, `a.b.c = 1;`)
	stmt, ok := stmts[0].(*ast.ExpressionStmt)
	if !ok {
		t.Fatalf("expected ExpressionStmt, got %T", stmts[0])
	}
	set, ok := stmt.Expression.(*ast.Set)
	if !ok {
		t.Fatalf("expected top-level *ast.Set, got %T", stmt.Expression)
	}
	if set.Name.Lexeme != "c" {
		t.Errorf("expected field name 'c', got %q", set.Name.Lexeme)
	}
	if _, ok := set.Object.(*ast.Get); !ok {
		t.Errorf("expected object to be a nested Get, got %T", set.Object)
	}
}

func TestParseAssignTargetMustBeVariable(t *testing.T) {
	toks, _ := scanner.Scan(`1 = 2;`)
	_, errs := Parse(toks)
	if len(errs) == 0 {
		t.Fatal("expected a parse error for an invalid assignment target")
	}
}

func TestParseBreakAndContinue(t *testing.T) {
	stmts := parseSource(t, `while (true) { break; continue; }`)
	while, ok := stmts[0].(*ast.WhileStmt)
	if !ok {
		t.Fatalf("expected WhileStmt, got %T", stmts[0])
	}
	block, ok := while.Body.(*ast.BlockStmt)
	if !ok {
		t.Fatalf("expected BlockStmt body, got %T", while.Body)
	}
	if len(block.Statements) != 2 {
		t.Fatalf("expected 2 statements in block, got %d", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.BreakStmt); !ok {
		t.Errorf("expected BreakStmt, got %T", block.Statements[0])
	}
	if _, ok := block.Statements[1].(*ast.ContinueStmt); !ok {
		t.Errorf("expected ContinueStmt, got %T", block.Statements[1])
	}
}

func TestParseErrorRecoveryContinuesAfterSynchronize(t *testing.T) {
	toks, _ := scanner.Scan(`var = 1; var y = 2;`)
	stmts, errs := Parse(toks)
	if len(errs) == 0 {
		t.Fatal("expected at least one parse error from the malformed first statement")
	}
	found := false
	for _, s := range stmts {
		if v, ok := s.(*ast.VarStmt); ok && v.Name.Lexeme == "y" {
			found = true
		}
	}
	if !found {
		t.Error("expected synchronize() to recover and still parse the second declaration")
	}
}

func TestParseMissingSemicolonIsError(t *testing.T) {
	toks, _ := scanner.Scan(`var x = 1`)
	_, errs := Parse(toks)
	if len(errs) == 0 {
		t.Fatal("expected a parse error for a missing semicolon")
	}
}
