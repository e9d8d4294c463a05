// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package flat

import (
	"fmt"
	"strings"
)

// String returns a string summarizing the Snapshot fields. The cells
// are counted, not listed.
func (s *Snapshot) String() string {
	var b strings.Builder
	b.WriteString("Snapshot{")
	if err := safeFlatBuffersInteraction(func() error {
		stringKey(&b, "Bounds")
		stringBox(&b, s.Bounds(nil))
		stringUint64(&b, ",MaxDepth", uint64(s.MaxDepth()))
		stringUint64(&b, ",NumCells", uint64(s.CellsLength()))
		return nil
	}); err != nil {
		return "error: " + err.Error()
	}
	b.WriteByte('}')
	return b.String()
}

// String returns a string describing the Cell fields.
func (c *Cell) String() string {
	var b strings.Builder
	b.WriteString("Cell{")
	if err := safeFlatBuffersInteraction(func() error {
		stringKey(&b, "Box")
		stringBox(&b, c.Box(nil))
		stringUint64(&b, ",Depth", uint64(c.Depth()))
		stringKey(&b, ",Code")
		fmt.Fprintf(&b, "%#x", c.Code())
		return nil
	}); err != nil {
		return "error: " + err.Error()
	}
	b.WriteByte('}')
	return b.String()
}

// String returns the Box as a center and extent pair.
func (box *Box) String() string {
	var b strings.Builder
	if err := safeFlatBuffersInteraction(func() error {
		stringBox(&b, box)
		return nil
	}); err != nil {
		return "error: " + err.Error()
	}
	return b.String()
}

func stringKey(b *strings.Builder, key string) {
	b.WriteString(key)
	b.WriteByte(':')
}

func stringUint64(b *strings.Builder, key string, value uint64) {
	stringKey(b, key)
	fmt.Fprintf(b, "%d", value)
}

func stringVec3(b *strings.Builder, v *Vec3) {
	fmt.Fprintf(b, "(%.8g,%.8g,%.8g)", v.X(), v.Y(), v.Z())
}

func stringBox(b *strings.Builder, box *Box) {
	if box == nil {
		b.WriteString("<nil>")
		return
	}
	var v Vec3
	stringVec3(b, box.Center(&v))
	b.WriteString("±")
	stringVec3(b, box.Extent(&v))
}

// safeFlatBuffersInteraction runs a function that interacts with
// FlatBuffers, trapping any panic that occurs and converting it to a
// normal Go error.
func safeFlatBuffersInteraction(f func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic: flatbuffers: %v", r)
		}
	}()
	err = f()
	return
}
