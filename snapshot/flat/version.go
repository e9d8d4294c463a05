// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	_ "embed"
)

var (
	//go:embed "snapshot.fbs"
	schema string
	// Schema contains the FlatBuffers schema from which package flat
	// was generated.
	Schema = schema
)
