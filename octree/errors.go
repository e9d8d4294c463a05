// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package octree

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned, wrapped, when an Octree is
// constructed with an invalid parameter. Use errors.Is to test for it.
var ErrInvalidArgument = errors.New("invalid argument")

const packageName = "octree: "

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}

func fmtPanic(format string, a ...interface{}) {
	panic(fmt.Sprintf(packageName+format, a...))
}
