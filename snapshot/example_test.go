// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package snapshot_test

import (
	"bytes"
	"fmt"

	"github.com/gogama/svo/octree"
	"github.com/gogama/svo/snapshot"
	"github.com/golang/geo/r3"
)

func ExampleMarshal() {
	tree, _ := octree.New[string](octree.Box{Extent: r3.Vector{X: 8, Y: 8, Z: 8}}, 3) // Ignore error ONLY to keep example simple.
	tree.Insert(r3.Vector{X: 1, Y: 1, Z: 1})
	tree.Insert(r3.Vector{X: -1, Y: -1, Z: -1})

	var b bytes.Buffer
	_, _ = snapshot.Marshal(&b, tree) // Ignore error ONLY to keep example simple.

	v, _ := snapshot.Magic(bytes.NewReader(b.Bytes()))
	fmt.Printf("%+v\n", v)
	// Output: {Major:1 Patch:0}
}

func ExampleUnmarshal() {
	// Marshal a tree to bytes so that we can Unmarshal it.
	tree, _ := octree.New[string](octree.Box{Extent: r3.Vector{X: 8, Y: 8, Z: 8}}, 3) // Ignore error ONLY to keep example simple.
	tree.Insert(r3.Vector{X: 1, Y: 1, Z: 1})
	tree.Insert(r3.Vector{X: -1, Y: -1, Z: -1})
	var b bytes.Buffer
	_, _ = snapshot.Marshal(&b, tree)

	// Unmarshal from bytes.
	s, _ := snapshot.Unmarshal(&b)
	fmt.Println(s)
	for _, c := range s.Cells {
		fmt.Printf("%s depth=%d code=%d\n", c.Box, c.Depth, c.Code)
	}
	// Output: Snapshot{Version:1.0,Bounds:[-8,-8,-8,8,8,8],MaxDepth:3,NumCells:2}
	// [-2,-2,-2,0,0,0] depth=3 code=63
	// [0,0,0,2,2,2] depth=3 code=448
}
