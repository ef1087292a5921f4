// Command csja creates a simple JavaScript app. Errors are printed by the
// command tree; main only maps them to exit status 1.
package main

import (
	"os"

	"github.com/csja-dev/csja/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
