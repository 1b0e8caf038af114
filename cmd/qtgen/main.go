// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command qtgen fills a quadtree with random rectangles and writes a
// snapshot of its structure, or inspects a snapshot written earlier.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "qtgen",
		Short:         "Build random quadtrees and inspect their snapshots",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringP(configFlag, "c", "", "path to YAML config file")
	cmd.PersistentFlags().String(logLevelFlag, defaultLogLevel, "log level (debug, info, warn, error)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newInspectCmd())

	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
