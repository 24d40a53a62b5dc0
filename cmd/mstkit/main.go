// SPDX-License-Identifier: MIT

// Command mstkit computes and verifies minimum spanning trees of graphs in
// edge-list format, and generates such graphs.
//
//	mstkit gen grid -n 3 --cols 4 --max-weight 10 | mstkit mst --verify
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/katalvlaran/mstkit/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("mstkit: %v", err))
		os.Exit(1)
	}
}
