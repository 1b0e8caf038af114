// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/gogama/quadtree"
)

// WriteJSON writes a JSON snapshot of the tree rooted at n to w.
//
// Each node is an object with the keys "level", "bounds", "objects" and
// "nodes". Rectangles are objects with the keys "x", "y", "w" and "h".
// The value of "nodes" is null for a leaf and an array of four nodes,
// in quadtree.Quadrant order, otherwise.
func WriteJSON(w io.Writer, n *quadtree.Node) error {
	if w == nil {
		textPanic("nil writer")
	}
	return Take(n).WriteJSON(w)
}

// WriteJSON writes the snapshot to w as JSON. See the package-level
// WriteJSON for the format.
func (s *Node) WriteJSON(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(s); err != nil {
		return wrapErr("failed to encode JSON", err)
	}
	return nil
}

// ReadJSON reads a JSON snapshot written by WriteJSON.
func ReadJSON(r io.Reader) (*Node, error) {
	if r == nil {
		textPanic("nil reader")
	}
	var s Node
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return nil, wrapErr("failed to decode JSON", err)
	}
	s.Walk(func(n *Node) {
		if n.Objects == nil {
			n.Objects = []quadtree.Rect{}
		}
	})
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
