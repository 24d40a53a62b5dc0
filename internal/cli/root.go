// SPDX-License-Identifier: MIT

// Package cli wires the mstkit packages into a cobra command tree.
package cli

import (
	"github.com/fatih/color"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

// NewRootCommand returns the mstkit command with all subcommands attached.
func NewRootCommand() *cobra.Command {
	c := &cobra.Command{
		Use:           "mstkit",
		Short:         "Minimum spanning trees of edge-weighted graphs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
				color.NoColor = true
			}
			level, _ := cmd.Flags().GetString("trace")
			if level != "" {
				setupTracing(cmd, level)
			}
			return nil
		},
	}

	c.PersistentFlags().String("trace", "", "trace level for the algorithms (error, info, debug)")
	c.PersistentFlags().Bool("no-color", false, "disable colored output")

	c.AddCommand(NewMSTCommand())
	c.AddCommand(NewGenCommand())

	return c
}

// setupTracing routes the "mstkit" tracer to the command's error stream.
func setupTracing(cmd *cobra.Command, level string) {
	t := gologadapter.New()
	t.SetOutput(cmd.ErrOrStderr())
	t.SetTraceLevel(tracing.TraceLevelFromString(level))
	tracing.SetTraceSelector(tracing.SelectorForAdapter(func() tracing.Trace { return t }))
}
