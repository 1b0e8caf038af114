// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	flatbuffers "github.com/google/flatbuffers/go"
)

// RectSize is the encoded size in bytes of a Rect struct.
const RectSize = 32

// Rect is the FlatBuffers struct QuadTree.Rect.
type Rect struct {
	_tab flatbuffers.Struct
}

func (rcv *Rect) Init(buf []byte, i flatbuffers.UOffsetT) {
	rcv._tab.Bytes = buf
	rcv._tab.Pos = i
}

func (rcv *Rect) Table() flatbuffers.Table {
	return rcv._tab.Table
}

func (rcv *Rect) X() int64 {
	return rcv._tab.GetInt64(rcv._tab.Pos + flatbuffers.UOffsetT(0))
}

func (rcv *Rect) Y() int64 {
	return rcv._tab.GetInt64(rcv._tab.Pos + flatbuffers.UOffsetT(8))
}

func (rcv *Rect) W() int64 {
	return rcv._tab.GetInt64(rcv._tab.Pos + flatbuffers.UOffsetT(16))
}

func (rcv *Rect) H() int64 {
	return rcv._tab.GetInt64(rcv._tab.Pos + flatbuffers.UOffsetT(24))
}

func CreateRect(builder *flatbuffers.Builder, x int64, y int64, w int64, h int64) flatbuffers.UOffsetT {
	builder.Prep(8, RectSize)
	builder.PrependInt64(h)
	builder.PrependInt64(w)
	builder.PrependInt64(y)
	builder.PrependInt64(x)
	return builder.Offset()
}
