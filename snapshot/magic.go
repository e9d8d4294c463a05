// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"bytes"
	"io"
)

const (
	// magicLen is the length of the snapshot magic number in bytes.
	magicLen = 8
	// MinMajorVersion is the minimum major version of the snapshot
	// format that this package can read.
	MinMajorVersion = 0x01
	// MaxMajorVersion is the maximum major version of the snapshot
	// format that this package can read.
	MaxMajorVersion = 0x01
	// tableMaxLen is the largest FlatBuffers table, in bytes, that
	// this package will read. It keeps a corrupted size prefix from
	// causing a huge allocation.
	tableMaxLen = 256 * 1024 * 1024
)

// magic contains the snapshot magic number.
//
// The fourth byte is the major version of data written by this
// package, and the last byte is the patch version.
var magic = [magicLen]byte{0x73, 0x76, 0x6f, 0x01, 0x73, 0x76, 0x6f, 0x00}

// Version is a version of the snapshot format.
type Version struct {
	// Major is the major version of the format. Readers reject major
	// versions they do not know.
	Major uint8
	// Patch is the patch version of the format.
	Patch uint8
}

// Magic reads the snapshot magic number from a stream and if it is
// valid, returns the format version. It does not check whether this
// package can read that version, and it does not read beyond the magic
// number.
//
// Calling this function will result in 8 bytes being read from the
// stream reader (unless there were fewer than 8 bytes available, in
// which case all available bytes in the stream are consumed).
func Magic(r io.Reader) (Version, error) {
	var m [magicLen]byte
	if _, err := io.ReadFull(r, m[:]); err != nil {
		return Version{}, err
	}
	if !bytes.Equal(m[0:3], magic[0:3]) || !bytes.Equal(m[4:7], magic[4:7]) {
		return Version{}, textErr("invalid magic number")
	}
	return Version{Major: m[3], Patch: m[7]}, nil
}
