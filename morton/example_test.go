// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package morton_test

import (
	"fmt"

	"github.com/gogama/svo/morton"
)

func ExampleEncode3D() {
	code := morton.Encode3D(1, 2, 3)

	fmt.Printf("%d %#b\n", code, code)
	// Output: 53 0b110101
}

func ExampleDecode3D() {
	fmt.Println(morton.Decode3D(53))
	fmt.Println(morton.Decode3D(morton.Encode3D(morton.Mask+5, 7, 9))) // X is truncated to 21 bits.
	// Output: 1 2 3
	// 4 7 9
}

func ExampleParent() {
	code := morton.Encode3D(5, 6, 7)

	fmt.Println(morton.Decode3D(morton.Parent(code, 1)))
	// Output: 4 6 6
}
