// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Command svo builds sparse voxel octrees from YAML scene files, writes
// and inspects their snapshots, and converts Morton codes.
//
// Usage:
//
//	svo blocked SCENE
//	svo snapshot SCENE [-o FILE]
//	svo inspect FILE
//	svo morton encode X Y Z
//	svo morton decode CODE
//
// Logging goes to stderr and is controlled by the persistent
// --log-level and --log-json flags.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
