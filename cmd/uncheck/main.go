// Command uncheck evaluates Uncertainty Numbers and checks the laws of their
// algebra. See internal/cli for the command tree.
package main

import (
	"os"

	"github.com/katalvlaran/unalgebra/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(cli.GetExitCode(err))
	}
}
