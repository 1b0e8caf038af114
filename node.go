// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import "fmt"

const (
	// MaxObjects is the number of rectangles a node may hold directly
	// before it tries to subdivide and push them down a level.
	MaxObjects = 4
	// MaxLevels is the depth budget. Only nodes whose level is below
	// MaxLevels subdivide, so no node is deeper than MaxLevels.
	MaxLevels = 4
)

// A Node is one node of a quadtree. A Node is responsible for a
// rectangular region, its bounds, and holds zero or more rectangles
// directly. Once subdivided, a node owns exactly four child nodes that
// cover the four quadrants of its bounds, indexed by Quadrant.
//
// The root of a tree is a Node created by New with level 0.
type Node struct {
	// level is the depth of the node: 0 for the root, parent level + 1
	// for children.
	level int
	// bounds is the region the node is responsible for.
	bounds Rect
	// objects are the rectangles stored directly at this node, in
	// insertion order.
	objects []Rect
	// children is nil while the node is a leaf. Once the node is
	// subdivided, it holds one child per quadrant.
	children *[numQuadrants]Node
}

// New creates a new leaf node with the given level and bounds. To create
// the root of a tree, pass level 0 and the full region to be indexed.
func New(level int, bounds Rect) *Node {
	return &Node{
		level:  level,
		bounds: bounds,
	}
}

// Level returns the depth of the node, which is 0 for the root.
func (n *Node) Level() int {
	return n.level
}

// Bounds returns the region the node is responsible for.
func (n *Node) Bounds() Rect {
	return n.bounds
}

// Objects returns a copy of the rectangles stored directly at this
// node, in insertion order. It does not include rectangles stored in
// descendant nodes.
func (n *Node) Objects() []Rect {
	if len(n.objects) == 0 {
		return nil
	}
	objects := make([]Rect, len(n.objects))
	copy(objects, n.objects)
	return objects
}

// IsLeaf reports whether the node has not been subdivided.
func (n *Node) IsLeaf() bool {
	return n.children == nil
}

// Children returns the four children of the node, indexed by Quadrant,
// or nil if the node is a leaf. The returned nodes are owned by n.
func (n *Node) Children() []*Node {
	if n.children == nil {
		return nil
	}
	children := make([]*Node, numQuadrants)
	for i := range n.children {
		children[i] = &n.children[i]
	}
	return children
}

// Child returns the child covering quadrant q, or nil if the node is a
// leaf. Panics if q is not a valid quadrant.
func (n *Node) Child(q Quadrant) *Node {
	if !q.Valid() {
		textPanic("invalid quadrant " + q.String())
	}
	if n.children == nil {
		return nil
	}
	return &n.children[q]
}

// child returns the child node that a rectangle classified into
// quadrant q must be routed to.
func (n *Node) child(q Quadrant) (*Node, error) {
	if n.children == nil || !q.Valid() {
		return nil, routingErr(q)
	}
	return &n.children[q], nil
}

// Subdivide splits the node into four child nodes, one level deeper,
// each covering one quadrant of the node's bounds. Rectangles already
// stored at the node are not moved.
//
// Subdivide does not check whether the node is already subdivided.
// Calling it on a subdivided node replaces the existing children and
// discards every rectangle stored in them.
func (n *Node) Subdivide() {
	level := n.level + 1
	n.children = &[numQuadrants]Node{
		{level: level, bounds: n.bounds.quadrant(EastNorth)},
		{level: level, bounds: n.bounds.quadrant(WestNorth)},
		{level: level, bounds: n.bounds.quadrant(WestSouth)},
		{level: level, bounds: n.bounds.quadrant(EastSouth)},
	}
}

// Insert adds a rectangle to the tree rooted at n.
//
// If n is subdivided and r fits strictly inside one of its quadrants,
// r is inserted into the corresponding child. Otherwise r is stored at
// n. If n then holds more than MaxObjects rectangles and is above
// MaxLevels, n is subdivided (if it is not already) and every stored
// rectangle that fits a quadrant is inserted into the matching child.
// After this redistribution pass the node's own storage is emptied.
//
// Emptying the node after redistribution has two consequences:
//
//   - A stored rectangle that fits no quadrant when the pass runs is
//     dropped from the tree.
//   - If inserting into a child fails, the pass stops at the first
//     failure and the rectangles not yet redistributed are dropped too.
//
// The only error Insert returns wraps ErrRouting, and it is returned
// unchanged from however deep in the tree it occurred.
func (n *Node) Insert(r Rect) error {
	if n.children != nil {
		if q := n.bounds.Classify(r); q != NoQuadrant {
			c, err := n.child(q)
			if err != nil {
				return err
			}
			return c.Insert(r)
		}
	}

	n.objects = append(n.objects, r)

	if len(n.objects) > MaxObjects && n.level < MaxLevels {
		if n.children == nil {
			n.Subdivide()
		}
		err := n.redistribute()
		n.objects = nil
		return err
	}

	return nil
}

// redistribute inserts every stored rectangle that fits a quadrant into
// the matching child, stopping at the first failure. It leaves the
// node's own storage untouched.
func (n *Node) redistribute() error {
	for _, o := range n.objects {
		q := n.bounds.Classify(o)
		if q == NoQuadrant {
			continue
		}
		c, err := n.child(q)
		if err != nil {
			return err
		}
		if err = c.Insert(o); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every rectangle from the tree rooted at n. The shape of
// the tree is kept: subdivided nodes stay subdivided, so the tree can be
// refilled without reallocating its nodes.
func (n *Node) Clear() {
	n.objects = nil
	if n.children != nil {
		for i := range n.children {
			n.children[i].Clear()
		}
	}
}

// Retrieve appends to acc the rectangles that might overlap query and
// returns the extended slice.
//
// Retrieve follows the single path of quadrants that fully contain
// query, deepest node first, and collects the rectangles stored directly
// at each node on the path. Rectangles in sibling quadrants are never
// visited; a rectangle crossing a midline relevant to query lives at a
// node on the path, so it is still found.
//
// Retrieve moves rather than copies: the collected rectangles are
// removed from the tree. A second Retrieve with the same query finds
// nothing that the first one already returned.
func (n *Node) Retrieve(acc []Rect, query Rect) []Rect {
	if n.children != nil {
		if q := n.bounds.Classify(query); q != NoQuadrant {
			acc = n.children[q].Retrieve(acc, query)
		}
	}

	acc = append(acc, n.objects...)
	n.objects = nil

	return acc
}

// Walk calls fn for n and each of its descendants in depth-first
// pre-order, visiting children in Quadrant order. If fn returns false,
// the children of that node are skipped.
func (n *Node) Walk(fn func(*Node) bool) {
	if !fn(n) || n.children == nil {
		return
	}
	for i := range n.children {
		n.children[i].Walk(fn)
	}
}

// Len returns the total number of rectangles stored in the tree rooted
// at n.
func (n *Node) Len() int {
	var count int
	n.Walk(func(m *Node) bool {
		count += len(m.objects)
		return true
	})
	return count
}

// String returns a summary description of the node.
func (n *Node) String() string {
	return fmt.Sprintf("Node{Level:%d,Bounds:%s,NumObjects:%d,Leaf:%t}", n.level, n.bounds, len(n.objects), n.children == nil)
}
