// Command hilbert checks formulas of implicational logic against axiom
// schemas, prior theorems and modus ponens.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/hilbert/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
