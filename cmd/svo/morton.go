// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strconv"

	"github.com/gogama/svo/morton"
	"github.com/spf13/cobra"
)

func newMortonCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "morton",
		Short: "Convert between grid coordinates and Morton codes",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "encode X Y Z",
		Short: "Print the Morton code of three grid coordinates",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			var xyz [3]uint32
			for i, arg := range args {
				v, err := strconv.ParseUint(arg, 0, 32)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", arg, err)
				}
				if v > morton.Mask {
					a.logger.Warn().Str("coordinate", arg).Int("bits", morton.Bits).Msg("Coordinate truncated")
				}
				xyz[i] = uint32(v)
			}
			fmt.Fprintln(cmd.OutOrStdout(), morton.Encode3D(xyz[0], xyz[1], xyz[2]))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "decode CODE",
		Short: "Print the grid coordinates of a Morton code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := strconv.ParseUint(args[0], 0, 64)
			if err != nil {
				return fmt.Errorf("invalid code %q: %w", args[0], err)
			}
			if code > morton.Max {
				a.logger.Warn().Str("code", args[0]).Msg("Bit 63 ignored")
			}
			x, y, z := morton.Decode3D(code)
			fmt.Fprintln(cmd.OutOrStdout(), x, y, z)
			return nil
		},
	})
	return cmd
}
