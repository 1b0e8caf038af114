// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package quadtree provides a region quadtree over axis-aligned integer
// rectangles. Rectangles are inserted one at a time into the deepest
// node whose quadrant fully contains them, and can later be retrieved as
// candidates that might overlap a query region.
//
// The tree follows the classic "likely collisions" game development
// quadtree: a node holds up to MaxObjects rectangles before it splits
// into four quadrants, and no node deeper than MaxLevels ever splits.
// A rectangle that straddles or touches a quadrant midline is never
// pushed below the node whose midline it crosses.
//
// Node is not safe for concurrent use. Both Insert and Retrieve mutate
// the tree.
package quadtree
