// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gogama/quadtree"
	"github.com/gogama/quadtree/internal/randrect"
	"github.com/gogama/quadtree/snapshot"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Insert random rectangles into a quadtree and write a snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return runGenerate(cfg, logger)
		},
	}

	cmd.Flags().IntP(countFlag, "n", 500, "number of rectangles to insert")
	cmd.Flags().Int64(seedFlag, 0, "random seed, 0 picks one from the clock")
	cmd.Flags().Int64(widthFlag, 600, "width of the root bounds")
	cmd.Flags().Int64(heightFlag, 600, "height of the root bounds")
	cmd.Flags().Int64(minSizeFlag, 4, "minimum rectangle side length")
	cmd.Flags().Int64(maxSizeFlag, 32, "maximum rectangle side length, exclusive")
	cmd.Flags().StringP(outputFlag, "o", "output.json", "snapshot output path")
	cmd.Flags().StringP(formatFlag, "f", formatJSON, "snapshot format (json, flat)")

	return cmd
}

func runGenerate(cfg *config, logger *zap.Logger) (err error) {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	bounds := cfg.Bounds.rect()
	gen, err := randrect.New(bounds, cfg.MinSize, cfg.MaxSize, seed)
	if err != nil {
		return fmt.Errorf("new generator: %w", err)
	}

	logger.Debug("building tree",
		zap.Stringer("bounds", bounds),
		zap.Int("count", cfg.Count),
		zap.Int64("seed", seed))

	start := time.Now()
	root := quadtree.New(0, bounds)
	for i := 0; i < cfg.Count; i++ {
		r := gen.Next()
		if err = root.Insert(r); err != nil {
			return fmt.Errorf("insert rectangle %d %s: %w", i, r, err)
		}
	}
	elapsed := time.Since(start)

	s := snapshot.Take(root)

	f, err := os.Create(cfg.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close output: %w", closeErr)
		}
	}()

	switch cfg.Format {
	case formatJSON:
		err = s.WriteJSON(f)
	case formatFlat:
		_, err = s.Marshal(f)
	default:
		err = fmt.Errorf("unknown format %q", cfg.Format)
	}
	if err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	st := s.Stats()
	logger.Info("snapshot written",
		zap.String("path", cfg.Output),
		zap.String("format", cfg.Format),
		zap.Int64("seed", seed),
		zap.Int("inserted", cfg.Count),
		zap.Int("stored", st.NumObjects),
		zap.Int("nodes", st.NumNodes),
		zap.Int("leaves", st.NumLeaves),
		zap.Int("max_level", st.MaxLevel),
		zap.Duration("elapsed", elapsed))

	return nil
}
