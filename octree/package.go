// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package octree provides a generic, mutable sparse octree for
// axis-aligned occupancy tracking.
//
// Space is subdivided lazily, only where occupancy requires detail, and
// uniform subtrees are merged back into a single node as soon as all
// eight children agree. The set of maximal occupied regions can be read
// back at any time with Octree.BlockedBounds.
//
// An Octree is not safe for concurrent mutation. Read-only methods may
// run concurrently with each other, but never with a mutating method.
package octree
