// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package octree_test

import (
	"fmt"

	"github.com/gogama/svo/octree"
	"github.com/golang/geo/r3"
)

// A 16x16x16 world centered on the origin, with 2x2x2 finest cells.
var world = octree.Box{Extent: r3.Vector{X: 8, Y: 8, Z: 8}}

func ExampleNew() {
	tree, _ := octree.New[string](world, 3) // Ignore error ONLY to keep example simple.

	fmt.Println(tree)
	fmt.Println(tree.CellSize().X)
	// Output: Octree{Bounds:[-8,-8,-8,8,8,8],MaxDepth:3,Nodes:1}
	// 2
}

func ExampleOctree_Insert() {
	tree, _ := octree.New[string](world, 3) // Ignore error ONLY to keep example simple.

	fmt.Println(tree.Insert(r3.Vector{X: 1, Y: 1, Z: 1}))
	fmt.Println(tree.Insert(r3.Vector{X: 1.5, Y: 1.5, Z: 1.5})) // Same cell.
	fmt.Println(tree.Insert(r3.Vector{X: -1, Y: -1, Z: -1}))
	fmt.Println(tree.BlockedBounds())
	// Output: true
	// false
	// true
	// [[-2,-2,-2,0,0,0] [0,0,0,2,2,2]]
}

func ExampleOctree_InsertValue() {
	tree, _ := octree.New[string](world, 3) // Ignore error ONLY to keep example simple.

	tree.InsertValue("crate", r3.Vector{X: 5, Y: -5, Z: 1})

	v, ok := tree.Value(r3.Vector{X: 5.5, Y: -4.5, Z: 1.5})
	fmt.Printf("%q %t\n", v, ok)
	v, ok = tree.Value(r3.Vector{X: -5, Y: 5, Z: -1})
	fmt.Printf("%q %t\n", v, ok)
	// Output: "crate" true
	// "" false
}

func ExampleOctree_InsertBox() {
	tree, _ := octree.New[string](world, 3) // Ignore error ONLY to keep example simple.

	region := octree.BoxFromMinMax(r3.Vector{X: -7, Y: -7, Z: -7}, r3.Vector{X: -1, Y: -1, Z: -1})
	tree.InsertBox(region)

	fmt.Println(tree.BlockedBounds())
	fmt.Println(tree)
	// Output: [[-8,-8,-8,0,0,0]]
	// Octree{Bounds:[-8,-8,-8,8,8,8],MaxDepth:3,Nodes:9}
}

func ExampleOctree_Remove() {
	tree, _ := octree.New[string](world, 3) // Ignore error ONLY to keep example simple.
	tree.InsertBox(world)

	tree.Remove(r3.Vector{X: 1, Y: 1, Z: 1})

	fmt.Println(len(tree.BlockedBounds()), tree.Blocked(r3.Vector{X: 1, Y: 1, Z: 1}))
	fmt.Println(tree)
	// Output: 21 false
	// Octree{Bounds:[-8,-8,-8,8,8,8],MaxDepth:3,Nodes:25}
}

func ExampleOctree_BlockedCells() {
	tree, _ := octree.New[string](world, 3) // Ignore error ONLY to keep example simple.
	tree.Insert(r3.Vector{X: 7, Y: 1, Z: -1})

	for _, c := range tree.BlockedCells() {
		fmt.Printf("%s depth=%d grid=(%d,%d,%d)\n", c.Box, c.Depth, c.X, c.Y, c.Z)
	}
	// Output: [6,0,-2,8,2,0] depth=3 grid=(7,4,3)
}

func ExampleOctree_Walk() {
	tree, _ := octree.New[string](world, 2) // Ignore error ONLY to keep example simple.
	tree.Insert(r3.Vector{X: 1, Y: 1, Z: 1})

	tree.Walk(func(n *octree.Node[string]) bool {
		if !n.IsLeaf() || n.Flag() == octree.Blocked {
			fmt.Println(n.Depth(), n.Flag(), n.Bounds())
		}
		return true
	})
	// Output: 0 Mixed [-8,-8,-8,8,8,8]
	// 1 Mixed [0,0,0,8,8,8]
	// 2 Blocked [0,0,0,4,4,4]
}
