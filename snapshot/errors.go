// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion is returned when reading a snapshot whose
	// major version this package cannot read.
	ErrUnsupportedVersion = textErr("unsupported version")
	// ErrTooLarge is returned when a snapshot is larger than this
	// package is willing to read or write.
	ErrTooLarge = textErr("too large")
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

func textPanic(text string) {
	panic(packageName + text)
}
