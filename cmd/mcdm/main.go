// SPDX-License-Identifier: MIT

// Command mcdm ranks decision problems from YAML or TOML files.
package main

import (
	"os"

	"github.com/katalvlaran/mcdm/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
