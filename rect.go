// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "strconv"

// Rect is an axis-aligned rectangle with an integer top-left corner
// (X, Y) and integer width and height (W, H). The Y axis grows
// southward, so "north" means smaller Y.
//
// Rect is a comparable value type: two Rect values are equal when all
// four fields are equal, and Rect can be used as a map key. Rect does
// not validate its size; a negative width or height is the caller's
// problem.
type Rect struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
	W int64 `json:"w"`
	H int64 `json:"h"`
}

// HalfDimensions returns the width and height of one quadrant of the
// rectangle, computed with truncating integer division.
//
// When W or H is odd, the four quadrants together cover one unit less
// than the rectangle on that axis. Truncating on both axes keeps every
// quadrant the same size at every depth, so no rounding drift builds up
// as the tree is subdivided.
func (r Rect) HalfDimensions() (halfW, halfH int64) {
	return r.W / 2, r.H / 2
}

// Origin returns the top-left corner of the rectangle.
func (r Rect) Origin() (x, y int64) {
	return r.X, r.Y
}

func (r Rect) midX() int64 {
	return r.X + r.W/2
}

func (r Rect) midY() int64 {
	return r.Y + r.H/2
}

// Classify returns the quadrant of r that entirely contains other, or
// NoQuadrant if other does not fit strictly inside a single quadrant.
//
// Both midlines belong to neither side: a rectangle which touches or
// crosses the vertical midline at X+W/2, or the horizontal midline at
// Y+H/2, is unclassifiable.
func (r Rect) Classify(other Rect) Quadrant {
	midX, midY := r.midX(), r.midY()

	west := other.X < midX && other.X+other.W < midX
	east := other.X > midX
	north := other.Y < midY && other.Y+other.H < midY
	south := other.Y > midY

	switch {
	case east && north:
		return EastNorth
	case west && north:
		return WestNorth
	case west && south:
		return WestSouth
	case east && south:
		return EastSouth
	default:
		return NoQuadrant
	}
}

// quadrant returns the bounds of quadrant q of r. The caller must pass
// a valid quadrant.
func (r Rect) quadrant(q Quadrant) Rect {
	halfW, halfH := r.HalfDimensions()
	x, y := r.Origin()
	switch q {
	case EastNorth:
		return Rect{x + halfW, y, halfW, halfH}
	case WestNorth:
		return Rect{x, y, halfW, halfH}
	case WestSouth:
		return Rect{x, y + halfH, halfW, halfH}
	case EastSouth:
		return Rect{x + halfW, y + halfH, halfW, halfH}
	default:
		textPanic("invalid quadrant " + strconv.Itoa(int(q)))
		return Rect{}
	}
}

// String returns a compact representation of the rectangle in the form
// [X,Y,W,H].
func (r Rect) String() string {
	b := make([]byte, 0, 32)
	b = append(b, '[')
	b = strconv.AppendInt(b, r.X, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, r.Y, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, r.W, 10)
	b = append(b, ',')
	b = strconv.AppendInt(b, r.H, 10)
	b = append(b, ']')
	return string(b)
}
