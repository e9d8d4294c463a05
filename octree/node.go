// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package octree

import "strconv"

// Flag is the occupancy state of a Node.
type Flag uint8

const (
	// Empty means no part of the node's region is occupied.
	Empty Flag = iota
	// Blocked means the node's entire region is occupied. Only leaf
	// nodes are Blocked.
	Blocked
	// Mixed means the node is internal and its children disagree.
	Mixed
)

// String returns the name of the flag.
func (f Flag) String() string {
	switch f {
	case Empty:
		return "Empty"
	case Blocked:
		return "Blocked"
	case Mixed:
		return "Mixed"
	default:
		return "Flag(" + strconv.Itoa(int(f)) + ")"
	}
}

// A Node is one cell of an Octree. A node is either a leaf, which has
// no children, or internal, which has exactly eight.
//
// Nodes are created and destroyed only by their Octree. The accessors
// are read-only: a *Node obtained from Octree.Walk must not be retained
// across a mutation of the tree.
type Node[T any] struct {
	// depth is zero at the root and grows by one per level.
	depth int
	// bounds is the region covered by this node.
	bounds Box
	// flag is never Mixed on a leaf and always Mixed on an internal
	// node.
	flag Flag
	// value is the payload of a Blocked leaf, otherwise the zero value.
	value T
	// children is nil for a leaf. Child i covers bounds.Octant(i).
	children *[8]Node[T]
}

// Depth returns the depth of the node. The root has depth zero.
func (n *Node[T]) Depth() int {
	return n.depth
}

// Bounds returns the region covered by the node.
func (n *Node[T]) Bounds() Box {
	return n.bounds
}

// Flag returns the occupancy state of the node.
func (n *Node[T]) Flag() Flag {
	return n.flag
}

// Value returns the payload stored on the node. Only Blocked leaves
// carry a payload; every other node returns the zero value of T.
func (n *Node[T]) Value() T {
	return n.value
}

// IsLeaf reports whether the node has no children.
func (n *Node[T]) IsLeaf() bool {
	return n.children == nil
}

// Child returns the i-th child of the node, or nil if the node is a
// leaf. Panics if i is not in the range [0, 8).
func (n *Node[T]) Child(i int) *Node[T] {
	if i < 0 || i >= 8 {
		fmtPanic("child index %d out of range", i)
	}
	if n.children == nil {
		return nil
	}
	return &n.children[i]
}
