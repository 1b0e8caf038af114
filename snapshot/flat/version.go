// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package flat contains the FlatBuffers accessors and builders for the
// quadtree snapshot schema in snapshot.fbs.
package flat

import (
	_ "embed"
)

var (
	//go:embed "snapshot.fbs"
	schema string
	// Version documents the schema used to build package flat.
	Version = struct {
		// Schema contains the FlatBuffers schema text that the
		// accessors in package flat implement.
		Schema string
	}{
		Schema: schema,
	}
)
