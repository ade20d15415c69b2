package cmd

import (
	"fmt"
	"os"

	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/scanner"
	"github.com/spf13/cobra"
)

// tokenizeCmd dumps the scanner's token stream. Grounded in the teacher's
// `dwscript lex` subcommand and in nenuphar's internal/maincmd `tokenize`
// debug command (SPEC_FULL.md DOMAIN STACK), folded into one command since
// this language's token set is small enough not to need lex's --show-type/
// --show-pos/--only-errors flag surface.
var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [file]",
	Short: "Dump the scanner's token stream",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		printErr("Error: failed to read file %s: %v\n", args[0], err)
		return fail(65)
	}
	source := string(content)

	tokens, errs := scanner.Scan(source)
	for _, tok := range tokens {
		fmt.Printf("%-12s %q %s\n", tok.Type, tok.Lexeme, tok.Pos)
	}

	if len(errs) > 0 {
		printErr("%s\n", diag.FormatAll(errs, source, args[0], true))
		return fail(65)
	}
	return nil
}
