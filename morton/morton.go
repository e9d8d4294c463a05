// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package morton encodes three-dimensional integer coordinates as Morton
// codes, also known as Z-order curve indices.
//
// A Morton code interleaves the bits of its X-, Y- and Z-coordinates so
// that points which are close together in space tend to have codes that
// are close together numerically. Each coordinate contributes its low
// Bits bits, so a code occupies the low 63 bits of a uint64. Coordinate
// bits above Bits are silently discarded.
package morton

import "math/bits"

const (
	// Bits is the number of bits of each coordinate that are kept in a
	// Morton code.
	Bits = 21
	// Mask selects the bits of a coordinate that are kept in a Morton
	// code.
	Mask = 1<<Bits - 1
	// Max is the largest valid Morton code: every coordinate equal to
	// Mask.
	Max uint64 = 1<<(3*Bits) - 1
)

// Encode3D interleaves the low Bits bits of x, y and z into a Morton
// code. Bit i of x becomes bit 3i of the code, bit i of y becomes bit
// 3i+1 and bit i of z becomes bit 3i+2.
func Encode3D(x, y, z uint32) uint64 {
	return split(x) | split(y)<<1 | split(z)<<2
}

// Decode3D is the inverse of Encode3D. Bit 63 of code is ignored.
func Decode3D(code uint64) (x, y, z uint32) {
	x = compact(code)
	y = compact(code >> 1)
	z = compact(code >> 2)
	return
}

// split spreads the low Bits bits of v out so that two zero bits follow
// each of them.
func split(v uint32) uint64 {
	x := uint64(v) & Mask
	x = (x | x<<32) & 0x1f00000000ffff
	x = (x | x<<16) & 0x1f0000ff0000ff
	x = (x | x<<8) & 0x100f00f00f00f00f
	x = (x | x<<4) & 0x10c30c30c30c30c3
	x = (x | x<<2) & 0x1249249249249249
	return x
}

// compact gathers every third bit of x, starting at bit zero.
func compact(x uint64) uint32 {
	x &= 0x1249249249249249
	x = (x | x>>2) & 0x10c30c30c30c30c3
	x = (x | x>>4) & 0x100f00f00f00f00f
	x = (x | x>>8) & 0x1f0000ff0000ff
	x = (x | x>>16) & 0x1f00000000ffff
	x = (x | x>>32) & Mask
	return uint32(x)
}

// CommonPrefixLen returns the number of leading bits a and b share,
// counting from bit 62, the most significant bit a valid code can use.
// Two equal codes share all 63 bits. Bit 63 is ignored.
//
// CommonPrefixLen divided by three is the number of octree levels,
// counted down from the root of a Bits-deep grid, that contain both
// cells.
func CommonPrefixLen(a, b uint64) int {
	d := (a ^ b) & Max
	if d == 0 {
		return 3 * Bits
	}
	return bits.LeadingZeros64(d) - 1
}

// Parent returns the code of the ancestor of code which is levels
// octree levels above it, expressed on the same grid: the lowest
// 3*levels bits are cleared. A levels value of zero or less returns code
// unchanged, and a value of Bits or more returns zero.
func Parent(code uint64, levels int) uint64 {
	if levels <= 0 {
		return code
	}
	if levels >= Bits {
		return 0
	}
	return code &^ (1<<(3*uint(levels)) - 1)
}
