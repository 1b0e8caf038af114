// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"fmt"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/gogama/quadtree/littleendian"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// This function exists because FlatBuffer's Go code doesn't use
// standard Go error handling, and consequently any attempt to read
// corrupt FlatBuffer data may trigger a panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// writeSizePrefixed writes a finished, size-prefixed FlatBuffers buffer
// to an output stream. Only the prefix and the number of bytes it
// declares are written.
func writeSizePrefixed(w io.Writer, buf []byte) (n int, err error) {
	if len(buf) < flatbuffers.SizeUint32 {
		err = fmtErr("FlatBuffers buffer is too short for a size prefix (Len=%d)", len(buf))
		return
	}
	size := littleendian.Uint32(buf)
	if uint64(size) > uint64(len(buf)-flatbuffers.SizeUint32) {
		err = fmtErr("FlatBuffers buffer is smaller than the size prefix (Len=%d, size=%d)", len(buf), size)
		return
	}
	n, err = w.Write(buf[0 : flatbuffers.SizeUint32+int(size)])
	return
}
