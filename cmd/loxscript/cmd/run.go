package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/loxscript/loxscript/diag"
	"github.com/loxscript/loxscript/pkg/loxscript"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a loxscript file, or start the REPL with no arguments",
	Long: `Run executes a loxscript program from a file, from an inline
expression (-e), or interactively.

With no file and no -e, run starts a REPL: prompt "> ", one line per
iteration, error state cleared between lines, EOF exits 0 (spec.md §6).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "run inline code instead of reading from a file")
}

func runScript(_ *cobra.Command, args []string) error {
	switch {
	case evalExpr != "":
		return runSource(evalExpr, "<eval>")
	case len(args) == 1:
		content, err := os.ReadFile(args[0])
		if err != nil {
			printErr("Error: failed to read file %s: %v\n", args[0], err)
			return fail(65)
		}
		return runSource(string(content), args[0])
	default:
		repl()
		return nil
	}
}

// runSource drives one full program through the engine and maps its
// outcome to the spec's exit codes (spec.md §6).
func runSource(source, filename string) error {
	engine := loxscript.New()
	result, diags := engine.Run(source)
	if len(diags) > 0 {
		printErr("%s\n", diag.FormatAll(diags, source, filename, true))
		return fail(loxscript.ExitCode(result, diags))
	}
	return nil
}

// repl implements spec.md §6 "REPL": prompt "> ", read one line, execute
// as a full program, clear error state, loop; EOF exits 0. A single Engine
// is reused across lines so top-level `var`/`fun`/`class` declarations
// persist, the way a real interactive session needs them to.
func repl() {
	engine := loxscript.New()
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return // EOF: exit 0.
		}
		line := scanner.Text()

		result, diags := engine.Run(line)
		if len(diags) > 0 {
			printErr("%s\n", diag.FormatAll(diags, line, "", true))
			continue // Error state clears between lines; REPL keeps running.
		}
		if result.Value != "" {
			fmt.Println(result.Value)
		}
	}
}
