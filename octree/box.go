// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package octree

import (
	"strconv"
	"strings"

	"github.com/golang/geo/r3"
)

// A Box is an axis-aligned bounding box given by its Center and its
// half-size on each axis, Extent.
//
// All predicates treat the box as closed: points and faces lying on
// the boundary are inside. A box with zero Extent on every axis is a
// point and the predicates reduce to point tests.
type Box struct {
	Center r3.Vector
	Extent r3.Vector
}

// BoxFromMinMax returns the Box whose minimum corner is lo and whose
// maximum corner is hi.
func BoxFromMinMax(lo, hi r3.Vector) Box {
	return Box{
		Center: lo.Add(hi).Mul(0.5),
		Extent: hi.Sub(lo).Mul(0.5),
	}
}

// Min returns the corner of the box with the smallest coordinates.
func (b Box) Min() r3.Vector {
	return b.Center.Sub(b.Extent)
}

// Max returns the corner of the box with the largest coordinates.
func (b Box) Max() r3.Vector {
	return b.Center.Add(b.Extent)
}

// Size returns the full size of the box on each axis.
func (b Box) Size() r3.Vector {
	return b.Extent.Mul(2)
}

// ContainsPoint reports whether p lies within the closed box.
func (b Box) ContainsPoint(p r3.Vector) bool {
	lo, hi := b.Min(), b.Max()
	return p.X >= lo.X && p.X <= hi.X &&
		p.Y >= lo.Y && p.Y <= hi.Y &&
		p.Z >= lo.Z && p.Z <= hi.Z
}

// ContainsBox reports whether o is fully enclosed by b. Faces of o
// lying on the boundary of b count as enclosed.
func (b Box) ContainsBox(o Box) bool {
	lo, hi := b.Min(), b.Max()
	olo, ohi := o.Min(), o.Max()
	return lo.X <= olo.X && hi.X >= ohi.X &&
		lo.Y <= olo.Y && hi.Y >= ohi.Y &&
		lo.Z <= olo.Z && hi.Z >= ohi.Z
}

// Intersects reports whether b and o overlap. Boxes which only touch
// along a face, edge or corner intersect.
func (b Box) Intersects(o Box) bool {
	lo, hi := b.Min(), b.Max()
	olo, ohi := o.Min(), o.Max()
	return lo.X <= ohi.X && hi.X >= olo.X &&
		lo.Y <= ohi.Y && hi.Y >= olo.Y &&
		lo.Z <= ohi.Z && hi.Z >= olo.Z
}

// Octant returns the i-th of the eight equal sub-boxes of b.
//
// Bit 0 of i selects the X side, bit 1 the Y side and bit 2 the Z side
// of the octant: a clear bit selects the negative side and a set bit
// the positive side. Panics if i is not in the range [0, 8).
func (b Box) Octant(i int) Box {
	if i < 0 || i >= 8 {
		fmtPanic("octant index %d out of range", i)
	}
	e := b.Extent.Mul(0.5)
	c := b.Center
	c.X += sign(i&1) * e.X
	c.Y += sign(i&2) * e.Y
	c.Z += sign(i&4) * e.Z
	return Box{Center: c, Extent: e}
}

// octantOf returns the index of the octant of b that p belongs to,
// comparing p with the center on each axis. A point on a face shared by
// two octants belongs to the one on the negative side. The result does
// not depend on the rounded faces of the octant boxes, so every point
// of b belongs to exactly one octant.
func (b Box) octantOf(p r3.Vector) int {
	i := 0
	if p.X > b.Center.X {
		i |= 1
	}
	if p.Y > b.Center.Y {
		i |= 2
	}
	if p.Z > b.Center.Z {
		i |= 4
	}
	return i
}

func sign(bit int) float64 {
	if bit == 0 {
		return -1
	}
	return 1
}

// String returns the box in the form [xmin,ymin,zmin,xmax,ymax,zmax].
func (b Box) String() string {
	lo, hi := b.Min(), b.Max()
	var s strings.Builder
	s.WriteByte('[')
	for i, f := range [6]float64{lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z} {
		if i > 0 {
			s.WriteByte(',')
		}
		s.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	}
	s.WriteByte(']')
	return s.String()
}
