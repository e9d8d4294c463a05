// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package snapshot reads and writes a compact binary encoding of the
// occupied cells of an octree.
//
// A snapshot starts with an 8-byte magic number carrying the format
// version, followed by a size-prefixed FlatBuffers table (see
// flat.Schema) listing the tree bounds, the maximum depth and every
// Blocked cell with its depth and Morton locational code. The cells
// are stored in the order returned by octree.Octree.BlockedCells.
//
// Snapshots are the out-of-process form of Octree.BlockedBounds, meant
// for visualization and debugging tools. They are read-only: a
// snapshot records occupancy but not payloads.
package snapshot
