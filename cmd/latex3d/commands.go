// SPDX-License-Identifier: MIT
// Package: latex3d/cmd/latex3d
//
// commands.go — substitute, render, list and dump.

package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latex3d/catalog"
)

func (a *app) substituteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substitute",
		Short: "Replace placeholder codes on stdin and write the result to stdout",
		Args:  cobra.NoArgs,
		RunE:  a.runSubstitute,
	}
}

// runSubstitute renders every catalog item once, then filters stdin.
func (a *app) runSubstitute(cmd *cobra.Command, _ []string) error {
	start := time.Now()
	frags, err := a.catalog.Fragments(a.frame)
	if err != nil {
		return err
	}
	a.log.Debug("fragments rendered", "count", len(frags), "elapsed", time.Since(start))

	st, err := catalog.NewSubstituter(frags).Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}
	a.log.Info("substitution done", "lines", st.Lines, "substituted", st.Substituted)
	return nil
}

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <code>",
		Short: "Print the fragment of one placeholder code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			it, err := a.catalog.Lookup(args[0])
			if err != nil {
				return err
			}
			f, err := it.Fragment(a.frame)
			if err != nil {
				return fmt.Errorf("render %s: %w", it.Code, err)
			}
			a.log.Debug("rendered", "code", it.Code, "width", f.Width, "height", f.Height, "unit", f.Unit)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f.HTML())
			return err
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List placeholder codes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, it := range a.catalog.Items {
				fmt.Fprintf(tw, "%s\t%s\n", it.Code, it.Describe())
			}
			return tw.Flush()
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Write the active catalog as YAML or TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.catalog.Encode(cmd.OutOrStdout(), catalog.Format(format))
		},
	}
	cmd.Flags().StringVar(&format, "format", string(catalog.FormatYAML), "output format: yaml or toml")
	return cmd
}
