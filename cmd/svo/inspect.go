// Copyright 2026 The svo (Go) Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gogama/svo/snapshot"
	"github.com/spf13/cobra"
)

func newInspectCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect FILE",
		Short: "Print the contents of a snapshot file (- for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				r = f
			}

			s, err := snapshot.Unmarshal(r)
			if err != nil {
				return err
			}
			a.logger.Debug().Str("input", args[0]).Int("cells", len(s.Cells)).Msg("Read snapshot")

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "version: %d.%d\n", s.Version.Major, s.Version.Patch)
			fmt.Fprintf(w, "bounds: %s\n", s.Bounds)
			fmt.Fprintf(w, "max_depth: %d\n", s.MaxDepth)
			fmt.Fprintf(w, "cells: %d\n", len(s.Cells))
			fmt.Fprintf(w, "volume: %g\n", s.Volume())
			for _, c := range s.Cells {
				fmt.Fprintf(w, "  depth=%d code=%d box=%s\n", c.Depth, c.Code, c.Box)
			}
			return nil
		},
	}
}
