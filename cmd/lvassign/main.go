// SPDX-License-Identifier: MIT

// Command lvassign solves a rectangular assignment problem read from a YAML
// or JSON document and prints the optimal worker-to-job matching.
package main

import (
	"os"

	"github.com/katalvlaran/lvassign/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
