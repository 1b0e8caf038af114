// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"errors"
	"io"
	"math"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/gogama/quadtree"
	"github.com/gogama/quadtree/littleendian"
	"github.com/gogama/quadtree/snapshot/flat"
)

const (
	// magicLen is the length of the snapshot magic number in bytes.
	magicLen = 8
	// FormatMajorVersion is the major version of the binary snapshot
	// format written, and the only one read, by this package.
	FormatMajorVersion = 0x01
	// bodyMaxLen is an artificial limit on the size of the FlatBuffers
	// body this package will read, to prevent a corrupted size prefix
	// from causing a huge and pointless memory allocation.
	bodyMaxLen = 1 << 30
)

// magic contains the snapshot magic number.
//
// The fourth byte is the format major version of data written by this
// package, and the last byte is the format patch version.
var magic = [magicLen]byte{0x71, 0x74, 0x73, FormatMajorVersion, 0x71, 0x74, 0x73, 0x00}

// FormatVersion is a version of the binary snapshot format.
type FormatVersion struct {
	// Major is the major version of the format.
	Major uint8
	// Patch is the patch version of the format.
	Patch uint8
}

// Magic reads the snapshot magic number from a stream and if it is
// valid, returns the format version. It does not read beyond the magic
// number, so it can be used to test whether a file looks like a binary
// snapshot.
func Magic(r io.Reader) (FormatVersion, error) {
	m := make([]byte, magicLen)
	_, err := io.ReadFull(r, m)
	if err != nil {
		return FormatVersion{}, err
	}
	if m[0] == magic[0] &&
		m[1] == magic[1] &&
		m[2] == magic[2] &&
		m[4] == magic[4] &&
		m[5] == magic[5] &&
		m[6] == magic[6] {
		return FormatVersion{m[3], m[7]}, nil
	}
	return FormatVersion{}, ErrMagic
}

// Marshal writes a binary snapshot of the tree rooted at n to w,
// returning the number of bytes written.
func Marshal(w io.Writer, n *quadtree.Node) (int, error) {
	if w == nil {
		textPanic("nil writer")
	}
	return Take(n).Marshal(w)
}

// Marshal writes the snapshot to w in the binary format, returning the
// number of bytes written.
func (s *Node) Marshal(w io.Writer) (n int, err error) {
	b := flatbuffers.NewBuilder(1024)
	b.FinishSizePrefixed(s.build(b))

	if n, err = w.Write(magic[:]); err != nil {
		return
	}
	var m int
	m, err = writeSizePrefixed(w, b.FinishedBytes())
	n += m
	return
}

// build serializes s into b bottom-up, since FlatBuffers requires every
// child table and vector to be complete before its parent is started.
func (s *Node) build(b *flatbuffers.Builder) flatbuffers.UOffsetT {
	var children flatbuffers.UOffsetT
	if len(s.Children) > 0 {
		offsets := make([]flatbuffers.UOffsetT, len(s.Children))
		for i := range s.Children {
			offsets[i] = s.Children[i].build(b)
		}
		flat.NodeStartChildrenVector(b, len(offsets))
		for i := len(offsets) - 1; i >= 0; i-- {
			b.PrependUOffsetT(offsets[i])
		}
		children = b.EndVector(len(offsets))
	}

	var objects flatbuffers.UOffsetT
	if len(s.Objects) > 0 {
		flat.NodeStartObjectsVector(b, len(s.Objects))
		for i := len(s.Objects) - 1; i >= 0; i-- {
			o := &s.Objects[i]
			flat.CreateRect(b, o.X, o.Y, o.W, o.H)
		}
		objects = b.EndVector(len(s.Objects))
	}

	flat.NodeStart(b)
	flat.NodeAddLevel(b, uint32(s.Level))
	flat.NodeAddBounds(b, flat.CreateRect(b, s.Bounds.X, s.Bounds.Y, s.Bounds.W, s.Bounds.H))
	if objects != 0 {
		flat.NodeAddObjects(b, objects)
	}
	if children != 0 {
		flat.NodeAddChildren(b, children)
	}
	return flat.NodeEnd(b)
}

// Unmarshal reads a binary snapshot written by Marshal. The reader
// should be positioned at the first byte of the magic number. If
// Unmarshal returns without error, the reader is positioned just past
// the end of the snapshot.
func Unmarshal(r io.Reader) (*Node, error) {
	if r == nil {
		textPanic("nil reader")
	}

	v, err := Magic(r)
	if err != nil {
		return nil, err
	}
	if v.Major != FormatMajorVersion {
		return nil, fmtErr("unsupported format version %d.%d", v.Major, v.Patch)
	}

	prefix := make([]byte, flatbuffers.SizeUint32)
	if _, err = io.ReadFull(r, prefix); err != nil {
		return nil, wrapErr("failed to read size prefix", err)
	}
	size := littleendian.Uint32(prefix)
	if size > bodyMaxLen {
		return nil, fmtErr("snapshot body size %d exceeds limit %d", size, bodyMaxLen)
	}
	buf := make([]byte, flatbuffers.SizeUint32+int(size))
	copy(buf, prefix)
	if _, err = io.ReadFull(r, buf[flatbuffers.SizeUint32:]); err != nil {
		return nil, wrapErr("failed to read snapshot body", err)
	}

	var s Node
	err = safeFlatBuffersInteraction(func() error {
		return decode(flat.GetSizePrefixedRootAsNode(buf, 0), &s)
	})
	if errors.Is(err, ErrInvalid) {
		return nil, err
	} else if err != nil {
		return nil, wrapErr("failed to decode snapshot", err)
	}
	if err = s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func decode(t *flat.Node, s *Node) error {
	level := t.Level()
	if level > math.MaxInt32 {
		return invalidErr("level %d out of range", level)
	}
	s.Level = int(level)

	var r flat.Rect
	if t.Bounds(&r) == nil {
		return invalidErr("node at level %d has no bounds", level)
	}
	s.Bounds = quadtree.Rect{X: r.X(), Y: r.Y(), W: r.W(), H: r.H()}

	numObjects := t.ObjectsLength()
	if numObjects > 0 {
		t.Objects(&r, 0)
		start := int(r.Table().Pos)
		if remaining := len(t.Table().Bytes) - start; remaining < 0 || numObjects > remaining/flat.RectSize {
			return invalidErr("node at level %d claims %d objects", level, numObjects)
		}
	}
	s.Objects = make([]quadtree.Rect, numObjects)
	for i := range s.Objects {
		t.Objects(&r, i)
		s.Objects[i] = quadtree.Rect{X: r.X(), Y: r.Y(), W: r.W(), H: r.H()}
	}

	if n := t.ChildrenLength(); n > 4 {
		return invalidErr("node at level %d has %d children", level, n)
	} else if n > 0 {
		s.Children = make([]Node, n)
		var c flat.Node
		for i := range s.Children {
			t.Children(&c, i)
			if err := decode(&c, &s.Children[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
