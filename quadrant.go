// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "strconv"

// A Quadrant identifies one of the four quadrants of a rectangle. The
// value of a valid Quadrant is also the index of the corresponding child
// in a subdivided Node.
type Quadrant int

const (
	// NoQuadrant is the result of classifying a rectangle that does not
	// fit strictly inside any single quadrant.
	NoQuadrant Quadrant = -1
	// EastNorth is the top-right quadrant.
	EastNorth Quadrant = 0
	// WestNorth is the top-left quadrant.
	WestNorth Quadrant = 1
	// WestSouth is the bottom-left quadrant.
	WestSouth Quadrant = 2
	// EastSouth is the bottom-right quadrant.
	EastSouth Quadrant = 3
)

// numQuadrants is the number of children of a subdivided node.
const numQuadrants = 4

// Valid reports whether q is one of the four real quadrants.
func (q Quadrant) Valid() bool {
	return q >= 0 && q < numQuadrants
}

// String returns the name of the quadrant.
func (q Quadrant) String() string {
	switch q {
	case NoQuadrant:
		return "NoQuadrant"
	case EastNorth:
		return "EastNorth"
	case WestNorth:
		return "WestNorth"
	case WestSouth:
		return "WestSouth"
	case EastSouth:
		return "EastSouth"
	default:
		return "Quadrant(" + strconv.Itoa(int(q)) + ")"
	}
}
