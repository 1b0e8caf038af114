// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package snapshot exports the structure of a quadtree to external
// representations, for visualization or persistence.
//
// A snapshot is a plain tree of Node values taken through the read-only
// accessors of quadtree.Node. It can be written as JSON, or in a compact
// binary format consisting of a magic number followed by a
// size-prefixed FlatBuffers table (see package flat for the schema).
package snapshot

import (
	"fmt"

	"github.com/gogama/quadtree"
)

// Node is the snapshot of one quadtree node and, recursively, of all its
// descendants.
type Node struct {
	// Level is the depth of the node, 0 for the root.
	Level int `json:"level"`
	// Bounds is the region the node is responsible for.
	Bounds quadtree.Rect `json:"bounds"`
	// Objects are the rectangles stored directly at the node. Never nil
	// in a snapshot produced by this package.
	Objects []quadtree.Rect `json:"objects"`
	// Children is nil for a leaf, and otherwise holds exactly four
	// children indexed by quadtree.Quadrant.
	Children []Node `json:"nodes"`
}

// Take returns a snapshot of the tree rooted at n. The tree is not
// modified, and the snapshot shares no memory with it.
func Take(n *quadtree.Node) *Node {
	if n == nil {
		textPanic("nil node")
	}
	s := take(n)
	return &s
}

func take(n *quadtree.Node) Node {
	s := Node{
		Level:   n.Level(),
		Bounds:  n.Bounds(),
		Objects: n.Objects(),
	}
	if s.Objects == nil {
		s.Objects = []quadtree.Rect{}
	}
	if children := n.Children(); children != nil {
		s.Children = make([]Node, len(children))
		for i, c := range children {
			s.Children[i] = take(c)
		}
	}
	return s
}

// validate checks that the tree rooted at s has the shape of a
// quadtree: every node has zero or four children, and every child is
// one level deeper than its parent.
func (s *Node) validate() error {
	if s.Level < 0 {
		return invalidErr("negative level %d", s.Level)
	}
	if len(s.Children) != 0 && len(s.Children) != 4 {
		return invalidErr("node at level %d has %d children", s.Level, len(s.Children))
	}
	for i := range s.Children {
		c := &s.Children[i]
		if c.Level != s.Level+1 {
			return invalidErr("child %d of node at level %d has level %d", i, s.Level, c.Level)
		}
		if err := c.validate(); err != nil {
			return err
		}
	}
	return nil
}

// Walk calls fn for s and each of its descendants in depth-first
// pre-order.
func (s *Node) Walk(fn func(*Node)) {
	fn(s)
	for i := range s.Children {
		s.Children[i].Walk(fn)
	}
}

// Stats summarizes the shape and content of a snapshot.
type Stats struct {
	// NumNodes is the total number of nodes, including the root.
	NumNodes int
	// NumLeaves is the number of nodes without children.
	NumLeaves int
	// MaxLevel is the deepest level of any node.
	MaxLevel int
	// NumObjects is the total number of rectangles stored in all nodes.
	NumObjects int
}

// Stats walks the snapshot and returns its summary statistics.
func (s *Node) Stats() Stats {
	var st Stats
	s.Walk(func(n *Node) {
		st.NumNodes++
		if len(n.Children) == 0 {
			st.NumLeaves++
		}
		if n.Level > st.MaxLevel {
			st.MaxLevel = n.Level
		}
		st.NumObjects += len(n.Objects)
	})
	return st
}

// String returns a summary description of the snapshot.
func (s *Node) String() string {
	st := s.Stats()
	return fmt.Sprintf("Snapshot{Bounds:%s,NumNodes:%d,NumLeaves:%d,MaxLevel:%d,NumObjects:%d}", s.Bounds, st.NumNodes, st.NumLeaves, st.MaxLevel, st.NumObjects)
}
