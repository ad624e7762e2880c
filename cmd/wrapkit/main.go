// Command wrapkit inspects date and list wrappers and runs wrapper
// scenarios.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/wrapkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
