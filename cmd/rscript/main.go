// Command rscript is the reference CLI for the rscript embeddable
// scripting engine: lex, parse, run and format scripts from the shell.
package main

import (
	"os"

	"github.com/cwbudde/rscript/cmd/rscript/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
