// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var root600 = Rect{0, 0, 600, 600}

// randomRects returns n rectangles inside bounds the same way the qtgen
// tool generates them.
func randomRects(seed int64, n int, bounds Rect) []Rect {
	rng := rand.New(rand.NewSource(seed))
	rects := make([]Rect, n)
	for i := range rects {
		rects[i] = Rect{
			X: bounds.X + rng.Int63n(bounds.W-32),
			Y: bounds.Y + rng.Int63n(bounds.H-32),
			W: 4 + rng.Int63n(28),
			H: 4 + rng.Int63n(28),
		}
	}
	return rects
}

func mustInsert(t *testing.T, n *Node, rects ...Rect) {
	t.Helper()
	for _, r := range rects {
		require.NoError(t, n.Insert(r))
	}
}

func overlapArea(a, b Rect) int64 {
	w := min64(a.X+a.W, b.X+b.W) - max64(a.X, b.X)
	h := min64(a.Y+a.H, b.Y+b.H) - max64(a.Y, b.Y)
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

func min64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func max64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

type shape struct {
	level  int
	bounds Rect
	leaf   bool
}

func shapeOf(n *Node) []shape {
	var s []shape
	n.Walk(func(m *Node) bool {
		s = append(s, shape{m.Level(), m.Bounds(), m.IsLeaf()})
		return true
	})
	return s
}

func TestNew(t *testing.T) {
	n := New(0, root600)

	assert.Equal(t, 0, n.Level())
	assert.Equal(t, root600, n.Bounds())
	assert.True(t, n.IsLeaf())
	assert.Nil(t, n.Objects())
	assert.Nil(t, n.Children())
	assert.Nil(t, n.Child(WestNorth))
	assert.Equal(t, 0, n.Len())
}

func TestNode_String(t *testing.T) {
	n := New(0, root600)
	mustInsert(t, n, Rect{10, 10, 5, 5})

	assert.Equal(t, "Node{Level:0,Bounds:[0,0,600,600],NumObjects:1,Leaf:true}", n.String())
}

func TestNode_Child(t *testing.T) {
	t.Run("Panic", func(t *testing.T) {
		n := New(0, root600)

		assert.PanicsWithValue(t, "quadtree: invalid quadrant NoQuadrant", func() {
			n.Child(NoQuadrant)
		})
		assert.PanicsWithValue(t, "quadtree: invalid quadrant Quadrant(4)", func() {
			n.Child(Quadrant(4))
		})
	})

	t.Run("MatchesChildren", func(t *testing.T) {
		n := New(0, root600)
		n.Subdivide()

		children := n.Children()

		require.Len(t, children, 4)
		for q := EastNorth; q <= EastSouth; q++ {
			assert.Same(t, children[q], n.Child(q))
		}
	})
}

func TestNode_Subdivide(t *testing.T) {
	t.Run("Quadrants", func(t *testing.T) {
		n := New(2, root600)

		n.Subdivide()

		require.False(t, n.IsLeaf())
		assert.Equal(t, Rect{300, 0, 300, 300}, n.Child(EastNorth).Bounds())
		assert.Equal(t, Rect{0, 0, 300, 300}, n.Child(WestNorth).Bounds())
		assert.Equal(t, Rect{0, 300, 300, 300}, n.Child(WestSouth).Bounds())
		assert.Equal(t, Rect{300, 300, 300, 300}, n.Child(EastSouth).Bounds())
		for _, c := range n.Children() {
			assert.Equal(t, 3, c.Level())
			assert.True(t, c.IsLeaf())
			assert.Nil(t, c.Objects())
		}
	})

	t.Run("KeepsOwnObjects", func(t *testing.T) {
		n := New(0, root600)
		mustInsert(t, n, Rect{10, 10, 5, 5})

		n.Subdivide()

		assert.Equal(t, []Rect{{10, 10, 5, 5}}, n.Objects())
		assert.Equal(t, 0, n.Child(WestNorth).Len())
	})

	t.Run("Tiling", func(t *testing.T) {
		testCases := []struct {
			name   string
			bounds Rect
		}{
			{"Square", root600},
			{"OddWidth", Rect{0, 0, 601, 600}},
			{"OddHeight", Rect{0, 0, 600, 601}},
			{"OddBoth", Rect{-5, 7, 37, 37}},
			{"Tiny", Rect{0, 0, 3, 3}},
			{"Negative", Rect{-600, -600, 600, 600}},
		}

		for _, testCase := range testCases {
			t.Run(testCase.name, func(t *testing.T) {
				b := testCase.bounds
				n := New(0, b)

				n.Subdivide()

				children := n.Children()
				var area int64
				for i := range children {
					c := children[i].Bounds()
					area += c.W * c.H
					assert.Equal(t, c, overlapRect(b, c), "child %d must lie inside parent", i)
					for j := i + 1; j < len(children); j++ {
						assert.Zero(t, overlapArea(c, children[j].Bounds()), "children %d and %d overlap", i, j)
					}
				}
				halfW, halfH := b.HalfDimensions()
				remW, remH := b.W-2*halfW, b.H-2*halfH
				assert.Contains(t, []int64{0, 1}, remW)
				assert.Contains(t, []int64{0, 1}, remH)
				assert.Equal(t, (b.W-remW)*(b.H-remH), area)
			})
		}
	})

	t.Run("Twice", func(t *testing.T) {
		n := New(0, root600)
		n.Subdivide()
		mustInsert(t, n, Rect{10, 10, 5, 5})
		require.Equal(t, 1, n.Child(WestNorth).Len())

		n.Subdivide()

		assert.Equal(t, 0, n.Len())
		assert.Equal(t, Rect{0, 0, 300, 300}, n.Child(WestNorth).Bounds())
	})
}

// overlapRect returns the intersection of a and b, or the zero Rect.
func overlapRect(a, b Rect) Rect {
	if overlapArea(a, b) == 0 {
		return Rect{}
	}
	x, y := max64(a.X, b.X), max64(a.Y, b.Y)
	return Rect{x, y, min64(a.X+a.W, b.X+b.W) - x, min64(a.Y+a.H, b.Y+b.H) - y}
}

func TestNode_child(t *testing.T) {
	t.Run("Leaf", func(t *testing.T) {
		n := New(0, root600)

		c, err := n.child(WestNorth)

		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrRouting)
		assert.EqualError(t, err, "quadtree: no child node for quadrant 1")
	})

	t.Run("InvalidQuadrant", func(t *testing.T) {
		n := New(0, root600)
		n.Subdivide()

		for _, q := range []Quadrant{NoQuadrant, Quadrant(4), Quadrant(100)} {
			c, err := n.child(q)

			assert.Nil(t, c)
			assert.ErrorIs(t, err, ErrRouting)
		}
	})

	t.Run("EveryClassificationRoutes", func(t *testing.T) {
		n := New(0, root600)
		n.Subdivide()

		for _, r := range randomRects(1, 1000, root600) {
			q := root600.Classify(r)
			if q == NoQuadrant {
				continue
			}

			c, err := n.child(q)

			require.NoError(t, err)
			assert.Equal(t, q, root600.Classify(r))
			assert.Equal(t, root600.quadrant(q), c.Bounds())
		}
	})
}

func TestNode_Insert(t *testing.T) {
	t.Run("BelowCapacity", func(t *testing.T) {
		n := New(0, root600)
		rects := []Rect{{10, 10, 5, 5}, {310, 10, 5, 5}, {295, 295, 10, 10}, {10, 310, 5, 5}}

		mustInsert(t, n, rects...)

		assert.True(t, n.IsLeaf())
		assert.Equal(t, rects, n.Objects())
	})

	t.Run("CapacityTrigger", func(t *testing.T) {
		n := New(0, root600)
		for i := int64(0); i < MaxObjects; i++ {
			mustInsert(t, n, Rect{290 + i, 290 + i, 20, 20})
		}
		require.True(t, n.IsLeaf())
		require.Len(t, n.Objects(), MaxObjects)

		mustInsert(t, n, Rect{295, 295, 10, 10})

		assert.False(t, n.IsLeaf(), "exceeding capacity must subdivide")
		assert.Nil(t, n.Objects(), "storage is emptied after redistribution")
		assert.Equal(t, 0, n.Len(), "unclassifiable rectangles are dropped")
	})

	t.Run("RoutesIntoChild", func(t *testing.T) {
		n := New(0, root600)
		n.Subdivide()

		mustInsert(t, n, Rect{310, 310, 5, 5})

		assert.Nil(t, n.Objects())
		assert.Equal(t, []Rect{{310, 310, 5, 5}}, n.Child(EastSouth).Objects())
	})

	t.Run("StraddlerStaysAtParent", func(t *testing.T) {
		n := New(0, root600)
		mustInsert(t, n,
			Rect{10, 10, 5, 5},
			Rect{310, 10, 5, 5},
			Rect{10, 310, 5, 5},
			Rect{310, 310, 5, 5},
			Rect{20, 20, 5, 5},
		)
		require.False(t, n.IsLeaf())
		require.Nil(t, n.Objects())

		mustInsert(t, n, Rect{295, 295, 10, 10})

		assert.Equal(t, []Rect{{295, 295, 10, 10}}, n.Objects())
		assert.Equal(t, 1, n.Child(EastNorth).Len())
		assert.Equal(t, 2, n.Child(WestNorth).Len())
		assert.Equal(t, 1, n.Child(WestSouth).Len())
		assert.Equal(t, 1, n.Child(EastSouth).Len())
	})

	t.Run("StraddlerInOverflowIsDropped", func(t *testing.T) {
		n := New(0, root600)

		mustInsert(t, n,
			Rect{10, 10, 5, 5},
			Rect{310, 10, 5, 5},
			Rect{10, 310, 5, 5},
			Rect{310, 310, 5, 5},
			Rect{295, 295, 10, 10},
		)

		assert.False(t, n.IsLeaf())
		assert.Nil(t, n.Objects())
		assert.Equal(t, 4, n.Len())
	})

	t.Run("PromotionToWestNorth", func(t *testing.T) {
		n := New(0, root600)
		r := Rect{10, 10, 5, 5}

		mustInsert(t, n, r, r, r, r, r)

		assert.False(t, n.IsLeaf())
		assert.Nil(t, n.Objects())
		assert.Equal(t, 5, n.Child(WestNorth).Len())
		assert.Equal(t, 0, n.Child(EastNorth).Len())
		assert.Equal(t, 0, n.Child(WestSouth).Len())
		assert.Equal(t, 0, n.Child(EastSouth).Len())
		// The overflow cascades down the west-north chain until the depth
		// budget stops it.
		deepest := n
		for deepest.Level() < MaxLevels {
			assert.Nil(t, deepest.Objects())
			deepest = deepest.Child(WestNorth)
			require.NotNil(t, deepest)
		}
		assert.Equal(t, Rect{0, 0, 37, 37}, deepest.Bounds())
		assert.True(t, deepest.IsLeaf())
		assert.Equal(t, []Rect{r, r, r, r, r}, deepest.Objects())
	})

	t.Run("DepthCap", func(t *testing.T) {
		n := New(0, root600)
		r := Rect{1, 1, 1, 1}
		for i := 0; i < 50; i++ {
			mustInsert(t, n, r)
		}

		n.Walk(func(m *Node) bool {
			assert.LessOrEqual(t, m.Level(), MaxLevels)
			if m.Level() == MaxLevels {
				assert.True(t, m.IsLeaf())
			}
			return true
		})
		deepest := n.Child(WestNorth).Child(WestNorth).Child(WestNorth).Child(WestNorth)
		assert.Equal(t, MaxLevels, deepest.Level())
		assert.Len(t, deepest.Objects(), 50)
		assert.Equal(t, 50, n.Len())
	})

	t.Run("Random", func(t *testing.T) {
		n := New(0, root600)
		rects := randomRects(42, 500, root600)

		mustInsert(t, n, rects...)

		assert.LessOrEqual(t, n.Len(), len(rects))
		n.Walk(func(m *Node) bool {
			assert.LessOrEqual(t, m.Level(), MaxLevels)
			if children := m.Children(); children != nil {
				for _, c := range children {
					assert.Equal(t, m.Level()+1, c.Level())
				}
			}
			for _, o := range m.Objects() {
				if m.Level() < MaxLevels && !m.IsLeaf() {
					assert.Equal(t, NoQuadrant, m.Bounds().Classify(o), "%s at %s should have been routed down", o, m)
				}
			}
			return true
		})
	})
}

func TestNode_Clear(t *testing.T) {
	n := New(0, root600)
	mustInsert(t, n, randomRects(7, 300, root600)...)
	mustInsert(t, n, Rect{295, 295, 10, 10})
	before := shapeOf(n)
	require.NotZero(t, n.Len())

	n.Clear()

	assert.Equal(t, before, shapeOf(n))
	n.Walk(func(m *Node) bool {
		assert.Nil(t, m.Objects())
		return true
	})
	assert.Equal(t, 0, n.Len())

	t.Run("Reuse", func(t *testing.T) {
		mustInsert(t, n, Rect{310, 310, 5, 5})

		assert.Equal(t, 1, n.Len())
		assert.Equal(t, before, shapeOf(n))
	})
}

func TestNode_Retrieve(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		n := New(0, root600)

		assert.Empty(t, n.Retrieve(nil, Rect{10, 10, 5, 5}))
	})

	t.Run("PathDeepestFirst", func(t *testing.T) {
		n := New(0, root600)
		r := Rect{10, 10, 5, 5}
		mustInsert(t, n, r, r, r, r, r, Rect{295, 295, 10, 10})

		actual := n.Retrieve(nil, Rect{12, 12, 1, 1})

		assert.Equal(t, []Rect{r, r, r, r, r, {295, 295, 10, 10}}, actual)
	})

	t.Run("SiblingsNotVisited", func(t *testing.T) {
		n := New(0, root600)
		mustInsert(t, n,
			Rect{10, 10, 5, 5},
			Rect{20, 20, 5, 5},
			Rect{30, 30, 5, 5},
			Rect{310, 310, 5, 5},
			Rect{320, 320, 5, 5},
		)

		actual := n.Retrieve(nil, Rect{12, 12, 1, 1})

		assert.ElementsMatch(t, []Rect{{10, 10, 5, 5}, {20, 20, 5, 5}, {30, 30, 5, 5}}, actual)
		assert.Equal(t, 2, n.Child(EastSouth).Len())
	})

	t.Run("AppendsToAccumulator", func(t *testing.T) {
		n := New(0, root600)
		mustInsert(t, n, Rect{10, 10, 5, 5})
		acc := []Rect{{1, 2, 3, 4}}

		actual := n.Retrieve(acc, root600)

		assert.Equal(t, []Rect{{1, 2, 3, 4}, {10, 10, 5, 5}}, actual)
	})

	t.Run("Drains", func(t *testing.T) {
		n := New(0, root600)
		mustInsert(t, n, randomRects(3, 200, root600)...)
		total := n.Len()
		atRoot := len(n.Objects())

		first := n.Retrieve(nil, root600)
		second := n.Retrieve(nil, root600)

		assert.Len(t, first, atRoot)
		assert.Empty(t, second)
		assert.Equal(t, total-atRoot, n.Len())
	})

	t.Run("DrainsAlongPath", func(t *testing.T) {
		n := New(0, root600)
		r := Rect{10, 10, 5, 5}
		mustInsert(t, n, r, r, r, r, r)
		query := Rect{12, 12, 1, 1}

		first := n.Retrieve(nil, query)
		second := n.Retrieve(nil, query)

		assert.Len(t, first, 5)
		assert.Empty(t, second)
		assert.Equal(t, 0, n.Len())
		assert.False(t, n.IsLeaf(), "retrieval keeps the tree's shape")
	})
}

func TestNode_Walk(t *testing.T) {
	t.Run("PreOrder", func(t *testing.T) {
		n := New(0, root600)
		n.Subdivide()
		n.Child(WestSouth).Subdivide()
		var levels []int

		n.Walk(func(m *Node) bool {
			levels = append(levels, m.Level())
			return true
		})

		assert.Equal(t, []int{0, 1, 1, 1, 2, 2, 2, 2, 1}, levels)
	})

	t.Run("Prune", func(t *testing.T) {
		n := New(0, root600)
		n.Subdivide()
		var count int

		n.Walk(func(m *Node) bool {
			count++
			return false
		})

		assert.Equal(t, 1, count)
	})
}
