// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"fmt"
)

// ErrInvalid is returned, wrapped, when a scene fails validation.
var ErrInvalid = errors.New("invalid scene")

const packageName = "scene: "

func textErr(text string) error {
	return errors.New(packageName + text)
}

func wrapErr(text string, err error, a ...interface{}) error {
	return fmt.Errorf(packageName+text+": %w", append(a, err)...)
}
