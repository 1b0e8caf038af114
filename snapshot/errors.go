// Copyright 2023 The quadtree (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrMagic is returned when a stream does not start with the
	// quadtree snapshot magic number.
	ErrMagic = textErr("invalid magic number")
	// ErrInvalid is returned when a snapshot decodes successfully but
	// does not describe a well-formed quadtree.
	ErrInvalid = textErr("invalid snapshot")
)

const packageName = "snapshot: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf(packageName+format, a...)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func invalidErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrInvalid}, a...)...)
}

func textPanic(text string) {
	panic(packageName + text)
}
