package cmd

import (
	"fmt"
	"os"

	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/parser"
	"github.com/loxscript/loxscript/scanner"
	"github.com/spf13/cobra"
)

// parseCmd dumps the parenthesized AST form, the same debugging aid the
// teacher's `dwscript run --dump-ast` flag provides as a run-time option;
// here it's its own subcommand (SPEC_FULL.md CLI section) so scripts that
// fail to resolve or run can still have their parse tree inspected.
var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Dump the parsed AST in parenthesized form",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
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
	for _, stmt := range stmts {
		fmt.Println(stmt.String())
	}

	if len(parseErrs) > 0 {
		printErr("%s\n", diag.FormatAll(parseErrs, source, args[0], true))
		return fail(65)
	}
	return nil
}
