// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package randrect generates random rectangles inside a bounding region,
// for filling quadtrees in tools and benchmarks.
package randrect

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/gogama/quadtree"
)

const packageName = "randrect: "

// A Generator produces rectangles whose top-left corner lies inside
// Bounds, keeping a margin of MaxSize from the right and bottom edges,
// and whose width and height lie in [MinSize, MaxSize).
type Generator struct {
	bounds           quadtree.Rect
	minSize, maxSize int64
	rng              *rand.Rand
}

// New returns a Generator for the given region and size range, seeded
// with seed. Two generators with the same arguments yield the same
// sequence.
func New(bounds quadtree.Rect, minSize, maxSize int64, seed int64) (*Generator, error) {
	if minSize <= 0 {
		return nil, fmt.Errorf(packageName+"min size must be positive, got %d", minSize)
	}
	if maxSize <= minSize {
		return nil, fmt.Errorf(packageName+"max size %d must be greater than min size %d", maxSize, minSize)
	}
	if bounds.W <= maxSize || bounds.H <= maxSize {
		return nil, errors.New(packageName + "bounds must be larger than max size on both axes")
	}
	return &Generator{
		bounds:  bounds,
		minSize: minSize,
		maxSize: maxSize,
		rng:     rand.New(rand.NewSource(seed)),
	}, nil
}

// Next returns the next random rectangle.
func (g *Generator) Next() quadtree.Rect {
	return quadtree.Rect{
		X: g.bounds.X + g.rng.Int63n(g.bounds.W-g.maxSize),
		Y: g.bounds.Y + g.rng.Int63n(g.bounds.H-g.maxSize),
		W: g.minSize + g.rng.Int63n(g.maxSize-g.minSize),
		H: g.minSize + g.rng.Int63n(g.maxSize-g.minSize),
	}
}
