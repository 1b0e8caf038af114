// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gogama/quadtree/snapshot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file>",
		Short: "Print summary statistics of a snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := loadLogLevel(cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(level)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runInspect(args[0], cmd.OutOrStdout(), logger)
		},
	}
}

func runInspect(path string, w io.Writer, logger *zap.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open snapshot: %w", err)
	}
	defer func() { _ = f.Close() }()

	s, format, err := readSnapshot(f)
	if err != nil {
		return fmt.Errorf("read %s snapshot: %w", format, err)
	}

	logger.Debug("snapshot read", zap.String("path", path), zap.String("format", format))

	st := s.Stats()
	_, err = fmt.Fprintf(w, "format:     %s\nbounds:     %s\nnodes:      %d\nleaves:     %d\nmax level:  %d\nobjects:    %d\n",
		format, s.Bounds, st.NumNodes, st.NumLeaves, st.MaxLevel, st.NumObjects)
	return err
}

// readSnapshot decodes a binary snapshot if rs starts with the snapshot
// magic number, and a JSON snapshot otherwise.
func readSnapshot(rs io.ReadSeeker) (*snapshot.Node, string, error) {
	_, magicErr := snapshot.Magic(rs)
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("rewind: %w", err)
	}

	if magicErr == nil {
		s, err := snapshot.Unmarshal(rs)
		return s, formatFlat, err
	}

	s, err := snapshot.ReadJSON(rs)
	return s, formatJSON, err
}
