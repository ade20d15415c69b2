package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information, set by build flags the way the teacher's
// cmd/dwscript/cmd/root.go does.
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "loxscript",
	Short: "loxscript interpreter",
	Long: `loxscript is a tree-walking interpreter for a small, dynamically
typed, lexically scoped scripting language: numbers, strings, booleans
and nil; arithmetic/comparison/logical/unary operators; variables and
block scoping; if/while/for with break/continue; first-class closures;
and single-level classes with constructor-by-parameter-list.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

// Execute runs the root command and returns the process exit code (spec.md
// §6: 0 success, 65 scan/parse/resolve error, 70 runtime error). Unlike the
// teacher's Execute (which returns an error for cobra's own default exit
// handling), this returns an int directly so run/tokenize/parse/resolve can
// report the exact phase-specific code the spec requires.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		return exitFromError(err)
	}
	return lastExitCode
}

// lastExitCode is set by subcommands that need a code other than 0/1 (cobra
// itself has no notion of custom exit codes, so RunE's error path alone
// can't distinguish 65 from 70 — see run.go's runScript).
var lastExitCode int

// exitFromError maps a generic cobra/RunE error (bad flags, missing file,
// etc.) to 65, the spec's blanket "non-runtime failure" code.
func exitFromError(err error) int {
	if code, ok := err.(exitCodeError); ok {
		return int(code)
	}
	return 65
}

// exitCodeError lets a subcommand's RunE carry a specific exit code through
// cobra's error-returning convention without printing an extra error line
// (cobra prints RunE's error to stderr, so this type's Error() is empty).
type exitCodeError int

func (e exitCodeError) Error() string { return "" }

func fail(code int) error {
	lastExitCode = code
	return exitCodeError(code)
}

func printErr(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
