// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/katalvlaran/mstkit/core"
	"github.com/katalvlaran/mstkit/prim_kruskal"
	"github.com/katalvlaran/mstkit/verify"
	"github.com/spf13/cobra"
)

// NewMSTCommand returns the "mst" command. It reads an edge list from the
// named file (or stdin), prints one MST edge per line and then the total
// weight. With --verify the result is checked and a failed verdict becomes
// the command's error.
func NewMSTCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mst [file]",
		Short: "Compute a minimum spanning tree (or forest) of an edge-list graph",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			method, _ := cmd.Flags().GetString("method")
			root, _ := cmd.Flags().GetInt("root")
			connected, _ := cmd.Flags().GetBool("require-connected")
			loops, _ := cmd.Flags().GetBool("loops")
			check, _ := cmd.Flags().GetBool("verify")

			var gopts []core.GraphOption
			if loops {
				gopts = append(gopts, core.WithLoops())
			}
			g, err := readGraph(cmd, args, gopts)
			if err != nil {
				return err
			}

			opts := []prim_kruskal.Option{prim_kruskal.WithMethod(method), prim_kruskal.WithRoot(root)}
			if connected {
				opts = append(opts, prim_kruskal.WithRequireConnected())
			}
			mst, err := prim_kruskal.Compute(g, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, e := range mst.Edges {
				fmt.Fprintln(out, e)
			}
			fmt.Fprintf(out, "%.5f\n", mst.Weight)

			if !check {
				return nil
			}
			verdict, err := verify.Check(g, mst.Edges, mst.Weight)
			if err != nil {
				return err
			}
			if verdict.Passed {
				fmt.Fprintln(out, color.GreenString("verify: ok"))
				return nil
			}
			fmt.Fprintln(out, color.RedString("verify: %s: %s", verdict.Failed, verdict.Reason))

			return verdict.Err()
		},
	}

	cmd.Flags().StringP("method", "m", prim_kruskal.MethodPrim, "MST method (prim, lazy-prim, kruskal)")
	cmd.Flags().IntP("root", "r", 0, "start vertex for the Prim variants")
	cmd.Flags().Bool("require-connected", false, "fail if the graph has more than one component")
	cmd.Flags().Bool("loops", false, "accept self-loops in the input")
	cmd.Flags().Bool("verify", false, "check the result with the MST verifier")

	return cmd
}

// readGraph parses the graph from args[0], or from the command's input when
// no file (or "-") is given.
func readGraph(cmd *cobra.Command, args []string, gopts []core.GraphOption) (*core.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "<stdin>"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r, name = f, args[0]
	}

	g, err := core.ReadGraph(r, gopts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return g, nil
}
