// Command loxscript is the CLI driver spec.md §1 treats as an external
// collaborator: it wires the scanner/parser/resolver/interp pipeline
// (via pkg/loxscript) behind a cobra command tree, the same split the
// teacher's cmd/dwscript keeps between main.go and cmd/dwscript/cmd.
package main

import (
	"os"

	"github.com/loxscript/loxscript/cmd/loxscript/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
