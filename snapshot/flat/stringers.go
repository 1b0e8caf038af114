// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	"fmt"
	"strings"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// String returns the Rect in the form [X,Y,W,H].
func (rcv *Rect) String() string {
	var b strings.Builder
	if err := safeFlatBuffersInteraction(func() error {
		stringRect(&b, rcv)
		return nil
	}); err != nil {
		return "error: " + err.Error()
	}
	return b.String()
}

// String returns a string summarizing the Node table. The returned
// value is a summary and not meant to be exhaustive: children are
// counted, not descended into.
func (rcv *Node) String() string {
	var b strings.Builder
	b.WriteString("Node{")
	if err := safeFlatBuffersInteraction(func() error {
		fmt.Fprintf(&b, "Level:%d,Bounds:", rcv.Level())
		var r Rect
		if rcv.Bounds(&r) != nil {
			stringRect(&b, &r)
		} else {
			b.WriteString("<nil>")
		}
		fmt.Fprintf(&b, ",NumObjects:%d,NumChildren:%d", rcv.ObjectsLength(), rcv.ChildrenLength())
		return nil
	}); err != nil {
		return "error: " + err.Error()
	}
	b.WriteByte('}')
	return b.String()
}

func stringRect(b *strings.Builder, r *Rect) {
	fmt.Fprintf(b, "[%d,%d,%d,%d]", r.X(), r.Y(), r.W(), r.H())
}
