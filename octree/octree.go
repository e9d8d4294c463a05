// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package octree

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Octree is a sparse octree with a fixed maximum depth whose leaves
// carry an optional payload of type T.
//
// The tree starts as a single Empty root leaf. Inserting a point marks
// the finest cell (the cell at the maximum depth) containing it as
// Blocked, subdividing on the way down. Inserting a box marks every
// finest cell it overlaps, stopping early at any node the box fully
// covers. Whenever all eight children of a node end up with the same
// flag, they are discarded and the node takes their flag, so the tree
// always holds the coarsest representation of its occupancy.
//
// Subdividing a leaf gives all eight new children the leaf's flag and
// payload, so no occupancy is lost when a Blocked region is later
// refined by Remove.
type Octree[T any] struct {
	root     Node[T]
	maxDepth int
}

// New creates an empty Octree covering bounds whose finest cells are
// at depth maxDepth. Returns an error wrapping ErrInvalidArgument if
// maxDepth is not positive.
//
// Depths beyond 21 cannot be fully represented by a 64-bit Morton code
// and depths beyond 32 by the uint32 cell coordinates of CellAt and
// BlockedCells, but the tree itself does not enforce either limit.
func New[T any](bounds Box, maxDepth int) (*Octree[T], error) {
	if maxDepth <= 0 {
		return nil, wrapErr("max depth %d must be greater than 0", ErrInvalidArgument, maxDepth)
	}
	return &Octree[T]{
		root:     Node[T]{bounds: bounds},
		maxDepth: maxDepth,
	}, nil
}

// Bounds returns the region covered by the tree.
func (t *Octree[T]) Bounds() Box {
	return t.root.bounds
}

// MaxDepth returns the depth of the finest cells in the tree.
func (t *Octree[T]) MaxDepth() int {
	return t.maxDepth
}

// CellSize returns the full size, on each axis, of a cell at the
// maximum depth.
func (t *Octree[T]) CellSize() r3.Vector {
	return t.root.bounds.Size().Mul(math.Ldexp(1, -t.maxDepth))
}

// Insert marks the finest cell containing p as Blocked, without a
// payload. Returns true if the tree changed, and false if p is outside
// the tree or already lies in a Blocked cell.
//
// If p lies on the boundary between cells, the cell with the lowest
// octant index at each level receives it.
func (t *Octree[T]) Insert(p r3.Vector) bool {
	if !t.root.bounds.ContainsPoint(p) {
		return false
	}
	var zero T
	return t.insertPoint(&t.root, p, zero, false)
}

// InsertValue behaves like Insert but also stores v as the payload of
// the newly Blocked cell. A cell which is already Blocked keeps its
// payload and InsertValue returns false.
func (t *Octree[T]) InsertValue(v T, p r3.Vector) bool {
	if !t.root.bounds.ContainsPoint(p) {
		return false
	}
	return t.insertPoint(&t.root, p, v, true)
}

// insertPoint requires p to lie in n.
func (t *Octree[T]) insertPoint(n *Node[T], p r3.Vector, v T, withValue bool) bool {
	if n.depth >= t.maxDepth {
		if n.flag == Blocked {
			return false
		}
		n.flag = Blocked
		if withValue {
			n.value = v
		}
		return true
	}

	// A Blocked leaf above the finest level already covers p.
	if n.flag == Blocked {
		return false
	}

	split := n.IsLeaf()
	if split {
		t.subdivide(n)
	}
	changed := t.insertPoint(&n.children[n.bounds.octantOf(p)], p, v, withValue)
	if changed || split {
		t.merge(n)
	}
	return changed
}

// InsertBox marks every finest cell overlapping region as Blocked.
// Nodes whose bounds region fully contains are collapsed to a single
// Blocked leaf without descending further. Returns true if the tree
// changed.
//
// Cells which only touch region along a face, edge or corner count as
// overlapping.
func (t *Octree[T]) InsertBox(region Box) bool {
	return t.insertBox(&t.root, region)
}

func (t *Octree[T]) insertBox(n *Node[T], region Box) bool {
	if !n.bounds.Intersects(region) {
		return false
	}

	if region.ContainsBox(n.bounds) {
		if n.flag == Blocked {
			return false
		}
		collapse(n, Blocked)
		return true
	}

	// Partial overlap of a Blocked leaf: nothing left to mark.
	if n.flag == Blocked {
		return false
	}

	if n.depth >= t.maxDepth {
		n.flag = Blocked
		return true
	}

	split := n.IsLeaf()
	if split {
		t.subdivide(n)
	}
	changed := false
	for i := range n.children {
		if t.insertBox(&n.children[i], region) {
			changed = true
		}
	}
	if changed || split {
		t.merge(n)
	}
	return changed
}

// Remove clears every finest cell containing p, resetting its payload
// to the zero value of T. A coarser Blocked leaf containing p is
// refined down to the finest level first, so only the cells containing
// p are cleared. Returns true if the tree changed, and false if p is
// outside the tree or not in a Blocked cell.
func (t *Octree[T]) Remove(p r3.Vector) bool {
	if !t.root.bounds.ContainsPoint(p) {
		return false
	}
	return t.remove(&t.root, p)
}

// remove requires p to lie in n.
func (t *Octree[T]) remove(n *Node[T], p r3.Vector) bool {
	split := false
	if n.IsLeaf() {
		if n.flag != Blocked {
			return false
		}
		if n.depth >= t.maxDepth {
			collapse(n, Empty)
			return true
		}
		t.subdivide(n)
		split = true
	}

	removed := false
	own := n.bounds.octantOf(p)
	for i := range n.children {
		if i == own || n.children[i].bounds.ContainsPoint(p) {
			if t.remove(&n.children[i], p) {
				removed = true
			}
		}
	}
	if removed || split {
		t.merge(n)
	}
	return removed
}

// Clear discards every node below the root and resets the root to an
// Empty leaf covering the original bounds.
func (t *Octree[T]) Clear() {
	collapse(&t.root, Empty)
}

// subdivide gives the leaf n eight children, each inheriting the flag
// and payload n had, and marks n as Mixed.
func (t *Octree[T]) subdivide(n *Node[T]) {
	children := new([8]Node[T])
	for i := range children {
		children[i] = Node[T]{
			depth:  n.depth + 1,
			bounds: n.bounds.Octant(i),
			flag:   n.flag,
			value:  n.value,
		}
	}
	var zero T
	n.children = children
	n.flag = Mixed
	n.value = zero
}

// merge re-derives the flag of the internal node n from its children.
// If all eight children are Blocked, or all eight are Empty, n
// collapses into a leaf with that flag. Otherwise n is Mixed.
func (t *Octree[T]) merge(n *Node[T]) {
	if n.IsLeaf() {
		return
	}
	var blocked, empty int
	for i := range n.children {
		switch n.children[i].flag {
		case Blocked:
			blocked++
		case Empty:
			empty++
		}
	}
	switch {
	case blocked == len(n.children):
		collapse(n, Blocked)
	case empty == len(n.children):
		collapse(n, Empty)
	default:
		n.flag = Mixed
	}
}

// collapse turns n into a leaf with flag f and no payload.
func collapse[T any](n *Node[T], f Flag) {
	var zero T
	n.children = nil
	n.flag = f
	n.value = zero
}

// BlockedBounds returns the bounds of every Blocked node. Since a
// Blocked node is always a leaf, the boxes do not overlap except along
// shared faces, and together they cover exactly the occupied space.
//
// The boxes are listed in pre-order, depth-first, by ascending child
// index. The order is stable for a given tree state, but two trees with
// equal occupancy built by different operations may list their boxes in
// different orders. The returned slice is a copy owned by the caller.
func (t *Octree[T]) BlockedBounds() []Box {
	r := make([]Box, 0)
	t.Walk(func(n *Node[T]) bool {
		if n.flag == Blocked {
			r = append(r, n.bounds)
			return false
		}
		return true
	})
	return r
}

// A Cell describes one Blocked node of an Octree.
type Cell struct {
	// Box is the region covered by the node.
	Box Box
	// Depth is the depth of the node.
	Depth int
	// X, Y and Z are the integer coordinates of the node's minimum
	// corner on the grid of finest cells, which has 2^MaxDepth cells
	// per axis. They are exact only for MaxDepth <= 32.
	X, Y, Z uint32
}

// BlockedCells returns the same nodes as BlockedBounds, in the same
// order, together with their depth and grid coordinates.
func (t *Octree[T]) BlockedCells() []Cell {
	r := make([]Cell, 0)
	t.blockedCells(&t.root, 0, 0, 0, &r)
	return r
}

func (t *Octree[T]) blockedCells(n *Node[T], x, y, z uint64, r *[]Cell) {
	if n.flag == Blocked {
		shift := uint(t.maxDepth - n.depth)
		*r = append(*r, Cell{
			Box:   n.bounds,
			Depth: n.depth,
			X:     uint32(x << shift),
			Y:     uint32(y << shift),
			Z:     uint32(z << shift),
		})
		return
	}
	if n.children == nil {
		return
	}
	for i := range n.children {
		t.blockedCells(&n.children[i],
			x<<1|uint64(i&1),
			y<<1|uint64(i>>1&1),
			z<<1|uint64(i>>2&1),
			r)
	}
}

// Blocked reports whether p lies in a Blocked cell.
func (t *Octree[T]) Blocked(p r3.Vector) bool {
	return t.find(p) != nil
}

// Value returns the payload of the Blocked cell containing p. The
// boolean is false if p does not lie in a Blocked cell. If p lies on
// the boundary of several Blocked cells, the one with the lowest octant
// index at each level is used.
func (t *Octree[T]) Value(p r3.Vector) (T, bool) {
	if n := t.find(p); n != nil {
		return n.value, true
	}
	var zero T
	return zero, false
}

func (t *Octree[T]) find(p r3.Vector) *Node[T] {
	if !t.root.bounds.ContainsPoint(p) {
		return nil
	}
	return find(&t.root, p)
}

// find returns the first Blocked leaf below n which contains p. It
// requires p to lie in n.
func find[T any](n *Node[T], p r3.Vector) *Node[T] {
	if n.flag == Blocked {
		return n
	}
	if n.children == nil {
		return nil
	}
	own := n.bounds.octantOf(p)
	for i := range n.children {
		if i == own || n.children[i].bounds.ContainsPoint(p) {
			if m := find(&n.children[i], p); m != nil {
				return m
			}
		}
	}
	return nil
}

// CellAt returns the integer grid coordinates of the finest cell that
// Insert would mark for p. The boolean is false if p is outside the
// tree. The grid has 2^MaxDepth cells per axis; for MaxDepth > 32 only
// the low 32 bits of each coordinate are kept, as in BlockedCells.
func (t *Octree[T]) CellAt(p r3.Vector) (x, y, z uint32, ok bool) {
	b := t.root.bounds
	if !b.ContainsPoint(p) {
		return
	}
	for d := 0; d < t.maxDepth; d++ {
		i := b.octantOf(p)
		x = x<<1 | uint32(i&1)
		y = y<<1 | uint32(i>>1&1)
		z = z<<1 | uint32(i>>2&1)
		b = b.Octant(i)
	}
	ok = true
	return
}

// Walk calls fn for each node of the tree in pre-order, depth-first, by
// ascending child index. If fn returns false, the children of that node
// are skipped. The tree must not be mutated during the walk.
func (t *Octree[T]) Walk(fn func(n *Node[T]) bool) {
	walk(&t.root, fn)
}

func walk[T any](n *Node[T], fn func(n *Node[T]) bool) {
	if !fn(n) || n.children == nil {
		return
	}
	for i := range n.children {
		walk(&n.children[i], fn)
	}
}

// NodeCount returns the number of nodes in the tree, including the
// root.
func (t *Octree[T]) NodeCount() int {
	var count int
	t.Walk(func(*Node[T]) bool {
		count++
		return true
	})
	return count
}

// LeafCount returns the number of leaf nodes in the tree.
func (t *Octree[T]) LeafCount() int {
	var count int
	t.Walk(func(n *Node[T]) bool {
		if n.IsLeaf() {
			count++
		}
		return true
	})
	return count
}

// String returns a summary description of the tree.
func (t *Octree[T]) String() string {
	return fmt.Sprintf("Octree{Bounds:%s,MaxDepth:%d,Nodes:%d}", t.root.bounds, t.maxDepth, t.NodeCount())
}
