// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package octree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlag_String(t *testing.T) {
	testCases := []struct {
		input    Flag
		expected string
	}{
		{Empty, "Empty"},
		{Blocked, "Blocked"},
		{Mixed, "Mixed"},
		{Flag(9), "Flag(9)"},
	}

	for _, testCase := range testCases {
		t.Run(testCase.expected, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.input.String())
		})
	}
}

func TestNode(t *testing.T) {
	t.Run("Leaf", func(t *testing.T) {
		n := Node[string]{depth: 2, bounds: cube(0, 1), flag: Blocked, value: "foo"}

		assert.True(t, n.IsLeaf())
		assert.Equal(t, 2, n.Depth())
		assert.Equal(t, cube(0, 1), n.Bounds())
		assert.Equal(t, Blocked, n.Flag())
		assert.Equal(t, "foo", n.Value())
		assert.Nil(t, n.Child(0))
	})

	t.Run("Internal", func(t *testing.T) {
		n := Node[string]{bounds: cube(0, 1), flag: Mixed, children: new([8]Node[string])}
		n.children[5].depth = 1

		assert.False(t, n.IsLeaf())
		assert.Same(t, &n.children[5], n.Child(5))
		assert.Equal(t, 1, n.Child(5).Depth())
	})

	t.Run("ChildOutOfRange", func(t *testing.T) {
		var n Node[int]

		assert.PanicsWithValue(t, "octree: child index 8 out of range", func() {
			n.Child(8)
		})
	})
}
