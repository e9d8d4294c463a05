// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogama/svo/morton"
	"github.com/gogama/svo/octree"
	"github.com/gogama/svo/snapshot/flat"
	"github.com/golang/geo/r3"
	flatbuffers "github.com/google/flatbuffers/go"
)

// Source is the read-only view of an octree needed to take a snapshot.
// Every *octree.Octree satisfies it, regardless of payload type.
type Source interface {
	Bounds() octree.Box
	MaxDepth() int
	BlockedCells() []octree.Cell
}

// Cell is one Blocked cell recorded in a Snapshot.
type Cell struct {
	// Box is the region covered by the cell.
	Box octree.Box
	// Depth is the depth of the cell in the tree.
	Depth int
	// Code is the Morton code of the cell's minimum corner on the grid
	// of finest cells. Only the low 21 bits of each grid coordinate
	// are represented.
	Code uint64
}

// Snapshot is the decoded form of a snapshot stream.
type Snapshot struct {
	// Version is the format version read from the magic number.
	Version Version
	// Bounds is the region covered by the tree.
	Bounds octree.Box
	// MaxDepth is the depth of the finest cells in the tree.
	MaxDepth int
	// Cells lists the Blocked cells, in the order they were written.
	Cells []Cell
}

// Volume returns the total volume of the cells.
func (s *Snapshot) Volume() float64 {
	var v float64
	for i := range s.Cells {
		size := s.Cells[i].Box.Size()
		v += size.X * size.Y * size.Z
	}
	return v
}

// String returns a summary description of the snapshot.
func (s *Snapshot) String() string {
	return fmt.Sprintf("Snapshot{Version:%d.%d,Bounds:%s,MaxDepth:%d,NumCells:%d}",
		s.Version.Major, s.Version.Patch, s.Bounds, s.MaxDepth, len(s.Cells))
}

// Marshal writes a snapshot of src to w, returning the number of bytes
// written.
//
// Returns an error if the maximum depth of src does not fit in a byte,
// since cell depths are stored as one byte each.
func Marshal(w io.Writer, src Source) (n int, err error) {
	if w == nil {
		textPanic("nil writer")
	}
	maxDepth := src.MaxDepth()
	if maxDepth < 1 || maxDepth > math.MaxUint8 {
		return 0, fmtErr("max depth %d out of range [1, %d]", maxDepth, math.MaxUint8)
	}

	cells := src.BlockedCells()
	bldr := flatbuffers.NewBuilder(64 + 80*len(cells))
	offsets := make([]flatbuffers.UOffsetT, len(cells))
	for i := range cells {
		c := &cells[i]
		flat.CellStart(bldr)
		flat.CellAddCode(bldr, morton.Encode3D(c.X, c.Y, c.Z))
		flat.CellAddBox(bldr, createBox(bldr, c.Box))
		flat.CellAddDepth(bldr, byte(c.Depth))
		offsets[i] = flat.CellEnd(bldr)
	}
	flat.SnapshotStartCellsVector(bldr, len(offsets))
	for i := len(offsets) - 1; i >= 0; i-- {
		bldr.PrependUOffsetT(offsets[i])
	}
	cellsVec := bldr.EndVector(len(offsets))

	flat.SnapshotStart(bldr)
	flat.SnapshotAddCells(bldr, cellsVec)
	flat.SnapshotAddMaxDepth(bldr, uint32(maxDepth))
	flat.SnapshotAddBounds(bldr, createBox(bldr, src.Bounds()))
	flat.FinishSizePrefixedSnapshotBuffer(bldr, flat.SnapshotEnd(bldr))

	if n, err = w.Write(magic[:]); err != nil {
		return
	}
	var m int
	m, err = writeSizePrefixed(w, bldr.FinishedBytes())
	n += m
	return
}

func createBox(bldr *flatbuffers.Builder, b octree.Box) flatbuffers.UOffsetT {
	return flat.CreateBox(bldr, b.Center.X, b.Center.Y, b.Center.Z, b.Extent.X, b.Extent.Y, b.Extent.Z)
}

// Unmarshal reads a snapshot from r.
//
// The magic number is checked first, and an error wrapping
// ErrUnsupportedVersion is returned if this package cannot read the
// format version. Malformed FlatBuffers data is reported as an error
// rather than a panic.
func Unmarshal(r io.Reader) (*Snapshot, error) {
	if r == nil {
		textPanic("nil reader")
	}
	v, err := Magic(r)
	if err != nil {
		return nil, err
	}
	if v.Major < MinMajorVersion || v.Major > MaxMajorVersion {
		return nil, wrapErr("version %d.%d", ErrUnsupportedVersion, v.Major, v.Patch)
	}

	b, err := readSizePrefixed(r)
	if err != nil {
		return nil, err
	}

	s := &Snapshot{Version: v}
	if err = safeFlatBuffersInteraction(func() error {
		return decode(flat.GetSizePrefixedRootAsSnapshot(b, 0), s)
	}); err != nil {
		return nil, wrapErr("failed to decode table", err)
	}
	return s, nil
}

func decode(t *flat.Snapshot, s *Snapshot) error {
	var box flat.Box
	if t.Bounds(&box) == nil {
		return errors.New("missing bounds")
	}
	s.Bounds = fromFlatBox(&box)
	s.MaxDepth = int(t.MaxDepth())
	if s.MaxDepth < 1 {
		return fmt.Errorf("max depth %d must be greater than 0", s.MaxDepth)
	}

	n := t.CellsLength()
	if n > len(t.Table().Bytes)/flatbuffers.SizeUOffsetT {
		return fmt.Errorf("cell count %d exceeds buffer length %d", n, len(t.Table().Bytes))
	}
	s.Cells = make([]Cell, n)
	var c flat.Cell
	for i := 0; i < n; i++ {
		t.Cells(&c, i)
		if c.Box(&box) == nil {
			return fmt.Errorf("cell %d missing box", i)
		}
		depth := int(c.Depth())
		if depth > s.MaxDepth {
			return fmt.Errorf("cell %d depth %d exceeds max depth %d", i, depth, s.MaxDepth)
		}
		s.Cells[i] = Cell{
			Box:   fromFlatBox(&box),
			Depth: depth,
			Code:  c.Code(),
		}
	}
	return nil
}

func fromFlatBox(b *flat.Box) octree.Box {
	var v flat.Vec3
	b.Center(&v)
	center := r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
	b.Extent(&v)
	extent := r3.Vector{X: v.X(), Y: v.Y(), Z: v.Z()}
	return octree.Box{Center: center, Extent: extent}
}
