// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package quadtree

import (
	"errors"
	"fmt"
)

var (
	// ErrRouting is returned by Insert when a rectangle classifies into
	// a quadrant that has no corresponding child node. A correctly
	// subdivided node always has a child for every quadrant, so this
	// error indicates a broken tree invariant.
	ErrRouting = textErr("no child node for quadrant")
)

const packageName = "quadtree: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func routingErr(q Quadrant) error {
	return fmt.Errorf("%w %d", ErrRouting, int(q))
}

func textPanic(text string) {
	panic(packageName + text)
}
