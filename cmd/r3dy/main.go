// Command r3dy renames .NEV files to .R3D (or back with --invert)
// across a directory tree.
package main

import (
	"os"

	"github.com/joabzzz/r3dy/internal/cli"
)

func main() {
	// The command itself reports errors together with the usage text;
	// only the exit code is decided here.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
