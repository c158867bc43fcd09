// SPDX-License-Identifier: MIT
// Package: latex3d/cmd/latex3d
//
// root.go — command tree, shared flags, logger and catalog loading.

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/latex3d/catalog"
	"github.com/katalvlaran/latex3d/geom"
)

// app carries the state shared by every subcommand.
type app struct {
	catalogPath string
	logLevel    string

	log     *slog.Logger
	frame   geom.Frame
	catalog catalog.Catalog
}

// newRootCmd builds the command tree. The root command substitutes stdin.
func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "latex3d",
		Short:         "Render figurate-number solids into HTML placeholders",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: a.runSubstitute,
	}
	root.PersistentFlags().StringVar(&a.catalogPath, "catalog", "", "catalog file (.yaml, .yml or .toml); built-in table when empty")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level: debug, info, warn or error")

	root.AddCommand(
		a.substituteCmd(),
		a.renderCmd(),
		a.listCmd(),
		a.dumpCmd(),
	)
	return root
}

// setup configures logging and loads the catalog.
func (a *app) setup(cmd *cobra.Command) error {
	var level slog.Level
	if err := level.UnmarshalText([]byte(a.logLevel)); err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.frame = geom.NewFrame()

	if a.catalogPath == "" {
		a.catalog = catalog.Default()
		a.log.Debug("using built-in catalog", "items", len(a.catalog.Items))
		return nil
	}
	c, err := catalog.Load(a.catalogPath)
	if err != nil {
		return err
	}
	a.catalog = c
	a.log.Info("catalog loaded", "path", a.catalogPath, "items", len(c.Items))
	return nil
}
