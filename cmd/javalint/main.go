// Command javalint reads a JSON-encoded concrete-tree fixture, builds its
// typed AST, runs the bundled checks against it, and prints any issues
// found. It exists to exercise the check harness end-to-end in a runnable
// binary, not as a general-purpose lint tool.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-javalint/cmd/javalint/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
