// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot

import (
	"fmt"
	"io"

	flatbuffers "github.com/google/flatbuffers/go"
)

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
//
// This function exists because FlatBuffer's Go code doesn't use
// standard Go error handling, and consequently any invalid attempt to
// interact with FlatBuffer data may trigger a panic.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}

// writeSizePrefixed writes a finished, size-prefixed FlatBuffers
// buffer to an output stream, after checking that the size prefix
// agrees with the buffer length.
func writeSizePrefixed(w io.Writer, b []byte) (n int, err error) {
	var size uint32
	if size, err = sizePrefix(b); err != nil {
		return
	} else if uint64(size) != uint64(len(b)-flatbuffers.SizeUint32) {
		err = fmtErr("FlatBuffers size prefix does not match buffer (Len=%d, size=%d)", len(b), size)
		return
	} else if size > tableMaxLen {
		err = wrapErr("table size %d exceeds limit %d", ErrTooLarge, size, tableMaxLen)
		return
	}
	return w.Write(b)
}

// readSizePrefixed reads a size-prefixed FlatBuffers buffer from a
// stream. The returned slice includes the size prefix.
func readSizePrefixed(r io.Reader) ([]byte, error) {
	prefix := make([]byte, flatbuffers.SizeUint32)
	if _, err := io.ReadFull(r, prefix); err != nil {
		return nil, wrapErr("failed to read size prefix", err)
	}
	size, _ := sizePrefix(prefix)
	if size > tableMaxLen {
		return nil, wrapErr("table size %d exceeds limit %d", ErrTooLarge, size, tableMaxLen)
	}
	b := make([]byte, flatbuffers.SizeUint32+int(size))
	copy(b, prefix)
	if _, err := io.ReadFull(r, b[flatbuffers.SizeUint32:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, wrapErr("failed to read %d-byte table", err, size)
	}
	return b, nil
}

func sizePrefix(b []byte) (size uint32, err error) {
	if len(b) < flatbuffers.SizeUint32 {
		err = fmtErr("buffer too short for size prefix (Len=%d)", len(b))
		return
	}
	size = flatbuffers.GetUint32(b)
	return
}
