// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package littleendian decodes the little-endian integers used by the
// quadtree snapshot format's framing.
package littleendian

// Uint32 decodes the first four bytes of b as a little-endian uint32.
// Panics if b is shorter than four bytes.
func Uint32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler: see golang.org/issue/14808
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}
