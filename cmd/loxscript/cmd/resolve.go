package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/loxscript/loxscript/ast"
	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/parser"
	"github.com/loxscript/loxscript/resolver"
	"github.com/loxscript/loxscript/scanner"
	"github.com/spf13/cobra"
)

// resolveCmd dumps the resolver's expr-id -> distance side table (spec.md
// §4.F "Output"), labeled with the name and source position of the node
// each id belongs to. Grounded in nenuphar's internal/maincmd `resolve`
// debug subcommand (SPEC_FULL.md DOMAIN STACK), which exposes the same
// pipeline stage for its own resolver.
var resolveCmd = &cobra.Command{
	Use:   "resolve [file]",
	Short: "Dump the resolver's expr-id -> distance map",
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func runResolve(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		printErr("Error: failed to read file %s: %v\n", args[0], err)
		return fail(65)
	}
	source := string(content)

	tokens, scanErrs := scanner.Scan(source)
	if len(scanErrs) > 0 {
		printErr("%s\n", diag.FormatAll(scanErrs, source, args[0], true))
		return fail(65)
	}

	stmts, parseErrs := parser.Parse(tokens)
	if len(parseErrs) > 0 {
		printErr("%s\n", diag.FormatAll(parseErrs, source, args[0], true))
		return fail(65)
	}

	distances, resolveErrs := resolver.Resolve(stmts)
	labels := labelExprIDs(stmts)

	ids := make([]int, 0, len(distances))
	for id := range distances {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		fmt.Printf("%s -> %d\n", labels[id], distances[id])
	}

	if len(resolveErrs) > 0 {
		printErr("%s\n", diag.FormatAll(resolveErrs, source, args[0], true))
		return fail(65)
	}
	return nil
}

// labelExprIDs walks the tree once to give each Variable/Assign/This
// expr-id a human-readable "name@line:col" label, purely for this debug
// dump — the resolver itself never needs node identity beyond the id.
func labelExprIDs(stmts []ast.Stmt) map[int]string {
	labels := make(map[int]string)
	var walkStmt func(ast.Stmt)
	var walkExpr func(ast.Expr)

	walkExpr = func(e ast.Expr) {
		if e == nil {
			return
		}
		switch n := e.(type) {
		case *ast.Variable:
			labels[n.ID] = fmt.Sprintf("%s@%s", n.Name.Lexeme, n.Pos())
		case *ast.Assign:
			labels[n.ID] = fmt.Sprintf("%s@%s", n.Name.Lexeme, n.Pos())
			walkExpr(n.Value)
		case *ast.This:
			labels[n.ID] = fmt.Sprintf("this@%s", n.Pos())
		case *ast.Grouping:
			walkExpr(n.Expression)
		case *ast.Unary:
			walkExpr(n.Right)
		case *ast.Binary:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.Logical:
			walkExpr(n.Left)
			walkExpr(n.Right)
		case *ast.Call:
			walkExpr(n.Callee)
			for _, a := range n.Args {
				walkExpr(a)
			}
		case *ast.Get:
			walkExpr(n.Object)
		case *ast.Set:
			walkExpr(n.Object)
			walkExpr(n.Value)
		}
	}

	walkStmt = func(s ast.Stmt) {
		switch n := s.(type) {
		case *ast.ExpressionStmt:
			walkExpr(n.Expression)
		case *ast.PrintStmt:
			walkExpr(n.Expression)
		case *ast.VarStmt:
			walkExpr(n.Init)
		case *ast.BlockStmt:
			for _, st := range n.Statements {
				walkStmt(st)
			}
		case *ast.IfStmt:
			walkExpr(n.Condition)
			walkStmt(n.Then)
			if n.Else != nil {
				walkStmt(n.Else)
			}
		case *ast.WhileStmt:
			walkExpr(n.Condition)
			walkStmt(n.Body)
		case *ast.ForStmt:
			if n.Init != nil {
				walkStmt(n.Init)
			}
			walkExpr(n.Condition)
			walkExpr(n.After)
			walkStmt(n.Body)
		case *ast.FnStmt:
			for _, st := range n.Body {
				walkStmt(st)
			}
		case *ast.ReturnStmt:
			walkExpr(n.Value)
		case *ast.ClassStmt:
			for _, m := range n.Methods {
				walkStmt(m)
			}
		}
	}

	for _, s := range stmts {
		walkStmt(s)
	}
	return labels
}
